package sections

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSectionNotFound is returned by slug lookups for unknown slugs.
var ErrSectionNotFound = errors.New("section not found")

// Finder provides lookup operations on a guide index.
type Finder struct {
	index *GuideIndex
}

// NewFinder creates a new section finder from an index.
func NewFinder(index *GuideIndex) *Finder {
	return &Finder{index: index}
}

// GetAll returns all sections in document order.
func (f *Finder) GetAll() []Section {
	return f.index.Sections
}

// GetBySlug finds a section by its slug.
func (f *Finder) GetBySlug(slug string) (*Section, error) {
	section, ok := f.index.BySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, slug)
	}
	return section, nil
}

// Neighbors returns the sections immediately before and after the section
// with the given slug, in document order. Either may be nil at the edges.
func (f *Finder) Neighbors(slug string) (prev, next *Section, err error) {
	section, err := f.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}

	if section.Order > 0 {
		prev = &f.index.Sections[section.Order-1]
	}
	if section.Order < len(f.index.Sections)-1 {
		next = &f.index.Sections[section.Order+1]
	}

	return prev, next, nil
}

// Search performs a case-insensitive substring search across section titles,
// slugs, and content.
func (f *Finder) Search(query string) []Section {
	query = strings.ToLower(query)
	var results []Section

	for _, section := range f.index.Sections {
		titleMatch := strings.Contains(strings.ToLower(section.Title), query)
		slugMatch := strings.Contains(section.Slug, query)
		contentMatch := strings.Contains(strings.ToLower(section.Content), query)

		if titleMatch || slugMatch || contentMatch {
			results = append(results, section)
		}
	}

	return results
}

// Title returns the guide's display title.
func (f *Finder) Title() string {
	return f.index.DisplayTitle()
}

// Description returns the guide's description.
func (f *Finder) Description() string {
	return f.index.Description
}

// Count returns the number of indexed sections.
func (f *Finder) Count() int {
	return f.index.Count()
}

// Index returns the underlying guide index.
func (f *Finder) Index() *GuideIndex {
	return f.index
}
