package sections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"Section One", "section-one"},
		{"Foo Bar", "foo-bar"},
		{"foo-bar", "foo-bar"},
		{"Error Handling & Recovery!", "error-handling-recovery"},
		{"  Spaces   Around  ", "spaces-around"},
		{"C++", "c"},
		{"--Weird--Dashes--", "weird-dashes"},
		{"snake_case stays", "snake_case-stays"},
		{"Numbers 123", "numbers-123"},
		{"!!!", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Slugify(tc.title), "Slugify(%q)", tc.title)
	}
}

func TestSlugifyCollision(t *testing.T) {
	t.Parallel()

	// Distinct titles can reduce to the same slug; uniqueness is not guaranteed.
	require.Equal(t, Slugify("Foo Bar"), Slugify("foo-bar"))
}

func TestCollisions(t *testing.T) {
	t.Parallel()

	secs := []Section{
		{Slug: "foo-bar", Title: "Foo Bar", Order: 0},
		{Slug: "unique", Title: "Unique", Order: 1},
		{Slug: "foo-bar", Title: "foo-bar", Order: 2},
	}

	collisions := Collisions(secs)
	require.Len(t, collisions, 1)
	require.Equal(t, "foo-bar", collisions[0].Slug)
	require.Equal(t, "Foo Bar", collisions[0].FirstTitle)
	require.Equal(t, "foo-bar", collisions[0].LastTitle)
}

func TestCollisionsNone(t *testing.T) {
	t.Parallel()

	secs := []Section{
		{Slug: "one", Title: "One"},
		{Slug: "two", Title: "Two"},
	}

	require.Empty(t, Collisions(secs))
}
