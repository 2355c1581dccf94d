package sections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func issueCodes(result *CheckResult) []string {
	codes := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		codes = append(codes, issue.Code)
	}
	return codes
}

func TestCheckIndexCleanDocument(t *testing.T) {
	t.Parallel()

	result := CheckIndex(BuildIndex(sampleDocument()))
	require.True(t, result.Valid)
	require.Empty(t, result.Issues)
}

func TestCheckIndexSlugCollision(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Title:       "Guide",
		Description: "desc",
		Sections: []Section{
			{Slug: "foo-bar", Title: "Foo Bar", Order: 0, Content: "## Foo Bar\nfirst"},
			{Slug: "foo-bar", Title: "foo-bar", Order: 1, Content: "## foo-bar\nsecond"},
		},
	}

	result := CheckIndex(BuildIndex(doc))
	require.False(t, result.Valid)
	require.Contains(t, issueCodes(result), CodeSlugCollision)
	require.Equal(t, SeverityError, result.Issues[0].Severity)
	require.Equal(t, "foo-bar", result.Issues[0].Slug)
}

func TestCheckIndexEmptySection(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Title:       "Guide",
		Description: "desc",
		Sections: []Section{
			{Slug: "empty", Title: "Empty", Order: 0, Content: "## Empty"},
			{Slug: "full", Title: "Full", Order: 1, Content: "## Full\nBody."},
		},
	}

	result := CheckIndex(BuildIndex(doc))
	require.True(t, result.Valid) // warnings don't invalidate
	require.Equal(t, []string{CodeEmptySection}, issueCodes(result))
	require.Equal(t, "empty", result.Issues[0].Slug)
}

func TestCheckIndexMissingMetadata(t *testing.T) {
	t.Parallel()

	result := CheckIndex(&GuideIndex{})
	require.True(t, result.Valid)

	codes := issueCodes(result)
	require.Contains(t, codes, CodeMissingTitle)
	require.Contains(t, codes, CodeMissingDescription)
	require.Contains(t, codes, CodeNoSections)
}
