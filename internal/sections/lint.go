package sections

import (
	"fmt"
	"strings"
)

// Issue severities. Errors make the document invalid; warnings don't.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue codes reported by CheckIndex.
const (
	CodeSlugCollision      = "slug-collision"
	CodeEmptySection       = "empty-section"
	CodeMissingTitle       = "missing-title"
	CodeMissingDescription = "missing-description"
	CodeNoSections         = "no-sections"
)

// Issue is a single finding from a document check.
type Issue struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Slug     string `json:"slug,omitempty"`
}

// CheckResult reports the health of a scanned document. Valid is false only
// when at least one error-severity issue is present.
type CheckResult struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues"`
}

// CheckIndex inspects a guide index for problems that the splitter itself
// tolerates: slug collisions (which silently lose a section file), sections
// with no body beyond their heading, and missing document metadata. It never
// modifies the index or changes what explode writes.
func CheckIndex(idx *GuideIndex) *CheckResult {
	result := &CheckResult{Valid: true}

	for _, collision := range Collisions(idx.Sections) {
		result.Valid = false
		result.Issues = append(result.Issues, Issue{
			Severity: SeverityError,
			Code:     CodeSlugCollision,
			Message: fmt.Sprintf("sections %q and %q both slugify to %q; only the later section's file survives",
				collision.FirstTitle, collision.LastTitle, collision.Slug),
			Slug: collision.Slug,
		})
	}

	for _, section := range idx.Sections {
		if hasBody(section) {
			continue
		}
		result.Issues = append(result.Issues, Issue{
			Severity: SeverityWarning,
			Code:     CodeEmptySection,
			Message:  fmt.Sprintf("section %q has no content beyond its heading", section.Title),
			Slug:     section.Slug,
		})
	}

	if idx.Title == "" {
		result.Issues = append(result.Issues, Issue{
			Severity: SeverityWarning,
			Code:     CodeMissingTitle,
			Message:  fmt.Sprintf("document has no top-level heading; index will use %q", FallbackTitle),
		})
	}

	if idx.Description == "" {
		result.Issues = append(result.Issues, Issue{
			Severity: SeverityWarning,
			Code:     CodeMissingDescription,
			Message:  "document has no blockquote description",
		})
	}

	if len(idx.Sections) == 0 {
		result.Issues = append(result.Issues, Issue{
			Severity: SeverityWarning,
			Code:     CodeNoSections,
			Message:  "document contains no second-level headings; nothing to split",
		})
	}

	return result
}

// hasBody reports whether anything follows the section's heading line.
func hasBody(section Section) bool {
	if i := strings.Index(section.Content, "\n"); i >= 0 {
		return strings.TrimSpace(section.Content[i+1:]) != ""
	}
	return false
}
