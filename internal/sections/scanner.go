package sections

import (
	"strings"
)

// tocTitle is the one heading that never starts a section of its own.
// The generated index replaces the hand-maintained table of contents.
const tocTitle = "Table of Contents"

// metadataMarkers are document-level metadata fields that appear near the top
// of the source and are dropped rather than attributed to any section.
var metadataMarkers = []string{
	"**Last Updated**",
	"**Status**",
	"**Target Audience**",
}

// Scan folds over the source lines and produces an immutable Document.
//
// The scan has two modes. Before the first section boundary it captures the
// document title (first top-level heading) and description (last blockquote
// line seen), and drops metadata marker lines and horizontal rules. Once a
// second-level heading opens a section, every line belongs verbatim to the
// open section until the next boundary. A heading titled exactly
// "Table of Contents" is never a boundary.
func Scan(lines []string) *Document {
	doc := &Document{}

	var current []string
	currentTitle := ""
	inSection := false

	flush := func() {
		if !inSection {
			return
		}
		doc.Sections = append(doc.Sections, Section{
			Slug:    Slugify(currentTitle),
			Title:   currentTitle,
			Order:   len(doc.Sections),
			Content: strings.TrimSpace(strings.Join(current, "\n")),
		})
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case !inSection && strings.HasPrefix(trimmed, "# "):
			if doc.Title == "" {
				doc.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			}

		case !inSection && strings.HasPrefix(trimmed, ">"):
			doc.Description = strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))

		case !inSection && isMetadataLine(trimmed):
			// dropped

		case isSectionBoundary(trimmed):
			flush()
			currentTitle = strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))
			current = []string{line}
			inSection = true

		case !inSection && trimmed == "---":
			// dropped

		case inSection:
			current = append(current, line)
		}
	}

	flush()

	return doc
}

// ScanDocument strips optional YAML frontmatter, splits the source into
// lines, and scans it. Frontmatter title and description seed the document;
// a top-level heading or blockquote in the body still follows the usual
// capture rules. Input that merely resembles frontmatter is scanned as-is,
// so a leading horizontal rule is dropped by the usual pre-section rule.
func ScanDocument(data []byte) *Document {
	fm, body := ParseFrontmatter(data)

	doc := Scan(SplitLines(body))
	if doc.Title == "" {
		doc.Title = fm.Title
	}
	if doc.Description == "" {
		doc.Description = fm.Description
	}

	return doc
}

// SplitLines splits source text into lines, tolerating CRLF endings.
func SplitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(text, "\n")
}

func isSectionBoundary(trimmed string) bool {
	if !strings.HasPrefix(trimmed, "## ") {
		return false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "## ")) != tocTitle
}

func isMetadataLine(trimmed string) bool {
	for _, marker := range metadataMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}
