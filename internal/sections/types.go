// Package sections provides types and utilities for splitting a markdown
// guide into its second-level-heading sections and indexing the result.
package sections

// FallbackTitle is used by consumers when a document carries no top-level
// heading and no frontmatter title.
const FallbackTitle = "Documentation"

// Section represents one contiguous run of lines in the source document,
// starting at a second-level heading and ending just before the next one.
type Section struct {
	// Slug is the URL-safe identifier derived from the title (e.g., "getting-started")
	Slug string `json:"slug"`

	// Title is the heading text with the "##" marker stripped and trimmed
	Title string `json:"title"`

	// Order is the zero-based position of the section in document order
	Order int `json:"order"`

	// Content is the section body including its own heading line,
	// trimmed of leading and trailing whitespace
	Content string `json:"content"`
}

// File returns the output filename for the section.
func (s *Section) File() string {
	return s.Slug + ".md"
}

// Document is the immutable result of scanning a source document.
// Title is empty when the source has no top-level heading; consumers
// substitute FallbackTitle at presentation time.
type Document struct {
	Title       string
	Description string
	Sections    []Section
}

// Collision records two distinct section titles that derive the same slug.
// On disk the later section's file silently overwrites the earlier one's;
// collisions are surfaced through logging and document checks instead of
// changing that behavior.
type Collision struct {
	Slug       string `json:"slug"`
	FirstTitle string `json:"first_title"`
	LastTitle  string `json:"last_title"`
}

// Collisions returns one entry per slug shared by two or more sections,
// in first-occurrence order.
func Collisions(secs []Section) []Collision {
	first := make(map[string]int, len(secs))
	last := make(map[string]int, len(secs))
	var order []string

	for i, sec := range secs {
		if _, ok := first[sec.Slug]; !ok {
			first[sec.Slug] = i
			order = append(order, sec.Slug)
		}
		last[sec.Slug] = i
	}

	var collisions []Collision
	for _, slug := range order {
		if first[slug] == last[slug] {
			continue
		}
		collisions = append(collisions, Collision{
			Slug:       slug,
			FirstTitle: secs[first[slug]].Title,
			LastTitle:  secs[last[slug]].Title,
		})
	}

	return collisions
}

// GuideIndex is the serialized index of an exploded guide, written to
// sections.json alongside the per-section files.
type GuideIndex struct {
	// Title is the guide title captured from the source document
	// (may be empty, see DisplayTitle)
	Title string `json:"title"`

	// Description is the guide description captured from the source document
	Description string `json:"description"`

	// Sections is the list of all sections in document order
	Sections []Section `json:"sections"`

	// BySlug is a runtime index for fast slug lookups (not serialized to JSON).
	// On collision the later section wins, matching the on-disk file behavior.
	BySlug map[string]*Section `json:"-"`
}

// DisplayTitle returns the guide title, or FallbackTitle when none was captured.
func (idx *GuideIndex) DisplayTitle() string {
	if idx.Title == "" {
		return FallbackTitle
	}
	return idx.Title
}

// Count returns the number of sections in the index.
func (idx *GuideIndex) Count() int {
	return len(idx.Sections)
}
