// Package exploder writes an exploded guide: one markdown file per section,
// an index.md landing page, and a sections.json index.
package exploder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/docslicer/docslicer/internal/helpers"
	"github.com/docslicer/docslicer/internal/sections"
)

const (
	dirPermissions  = 0o700
	filePermissions = 0o600

	// IndexFileName is the landing page written into the output directory.
	IndexFileName = "index.md"

	// SectionsFileName is the machine-readable index consumed by serve.
	SectionsFileName = "sections.json"
)

// Fixed index.md metadata. These are literal constants of the generated
// landing page, not derived from the source document.
const (
	indexLastUpdated = "**Last Updated**: 2025-01-01"
	indexAuthor      = "**Author**: Documentation Team"
	indexLicense     = "**License**: MIT"

	indexBlurb = "This guide is split into one file per section. " +
		"Start with any section below; every section links to its neighbors."
)

// Exploder splits a markdown guide into per-section files.
type Exploder struct {
	log *logrus.Logger
}

// New creates an Exploder that reports progress through the given logger.
func New(log *logrus.Logger) *Exploder {
	if log == nil {
		log = logrus.New()
	}
	return &Exploder{log: log}
}

// Result summarizes a completed explode run.
type Result struct {
	// OutputDir is the directory that was regenerated
	OutputDir string

	// Files is every file written, in write order
	Files []string

	// SectionCount is the number of section files written (collisions mean
	// this can be lower than the number of scanned sections)
	SectionCount int

	// Collisions lists slug collisions observed during the run
	Collisions []sections.Collision
}

// Explode reads the markdown document at sourcePath, splits it on
// second-level headings, and regenerates outputDir from scratch.
//
// The output directory is deleted recursively and recreated before the
// source is read: callers must treat it as disposable. An unreadable source
// therefore aborts the run with the directory already cleared.
func (e *Exploder) Explode(sourcePath, outputDir string) (*Result, error) {
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, fmt.Errorf("failed to clear output directory %s: %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	e.log.WithFields(logrus.Fields{
		"source":    sourcePath,
		"path_type": helpers.GetPathType(sourcePath),
	}).Debug("Reading source document")

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source document: %w", err)
	}

	doc := sections.ScanDocument(data)

	result := &Result{
		OutputDir:  outputDir,
		Collisions: sections.Collisions(doc.Sections),
	}

	for _, collision := range result.Collisions {
		e.log.WithFields(logrus.Fields{
			"slug":        collision.Slug,
			"first_title": collision.FirstTitle,
			"last_title":  collision.LastTitle,
		}).Warnf("Slug collision: %q overwrites %q", collision.LastTitle, collision.FirstTitle)
	}

	written := make(map[string]struct{}, len(doc.Sections))
	for i := range doc.Sections {
		section := &doc.Sections[i]
		path := filepath.Join(outputDir, section.File())

		body := renderSection(doc, section)
		if err := os.WriteFile(path, []byte(body), filePermissions); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		e.log.Infof("Created: %s", section.File())
		if _, dup := written[path]; !dup {
			written[path] = struct{}{}
			result.Files = append(result.Files, path)
		}
	}
	result.SectionCount = len(written)

	indexPath := filepath.Join(outputDir, IndexFileName)
	if err := os.WriteFile(indexPath, []byte(renderIndex(doc)), filePermissions); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", indexPath, err)
	}
	e.log.Infof("Created: %s", IndexFileName)
	result.Files = append(result.Files, indexPath)

	index := sections.BuildIndex(doc)
	sectionsPath := filepath.Join(outputDir, SectionsFileName)
	if err := index.WriteJSON(sectionsPath); err != nil {
		return nil, fmt.Errorf("failed to write sections index: %w", err)
	}
	e.log.Infof("Created: %s", SectionsFileName)
	result.Files = append(result.Files, sectionsPath)

	e.log.Infof("Split %d sections into %s", len(doc.Sections), outputDir)

	return result, nil
}

// renderSection produces a section file body: the section content, a
// separator, and a navigation block linking the previous and next sections.
// The navigation block is omitted when the section has no neighbors.
func renderSection(doc *sections.Document, section *sections.Section) string {
	var b strings.Builder
	b.WriteString(section.Content)
	b.WriteString("\n\n---\n\n")

	var links []string
	if section.Order > 0 {
		prev := doc.Sections[section.Order-1]
		links = append(links, fmt.Sprintf("Previous: [%s](%s)", prev.Title, prev.File()))
	}
	if section.Order < len(doc.Sections)-1 {
		next := doc.Sections[section.Order+1]
		links = append(links, fmt.Sprintf("Next: [%s](%s)", next.Title, next.File()))
	}

	if len(links) > 0 {
		b.WriteString("## Navigation\n\n")
		for _, link := range links {
			b.WriteString(link)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderIndex produces the index.md landing page: title, description, fixed
// metadata, a short blurb, and one bullet per section in document order.
func renderIndex(doc *sections.Document) string {
	var b strings.Builder

	title := doc.Title
	if title == "" {
		title = sections.FallbackTitle
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if doc.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", doc.Description)
	}

	b.WriteString(indexLastUpdated + "\n")
	b.WriteString(indexAuthor + "\n")
	b.WriteString(indexLicense + "\n\n")

	b.WriteString(indexBlurb + "\n\n")

	b.WriteString("## Sections\n\n")
	for _, section := range doc.Sections {
		fmt.Fprintf(&b, "- [%s](%s)\n", section.Title, section.File())
	}

	return b.String()
}
