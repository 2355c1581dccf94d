package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func scanText(text string) *Document {
	return Scan(strings.Split(text, "\n"))
}

func TestScanEndToEndExample(t *testing.T) {
	t.Parallel()

	doc := scanText(`# My Guide
> A short description.
**Last Updated**: 2025-01-01
## Section One
Some text.
## Section Two
More text.`)

	require.Equal(t, "My Guide", doc.Title)
	require.Equal(t, "A short description.", doc.Description)
	require.Len(t, doc.Sections, 2)

	first := doc.Sections[0]
	require.Equal(t, "Section One", first.Title)
	require.Equal(t, "section-one", first.Slug)
	require.Equal(t, 0, first.Order)
	require.Equal(t, "## Section One\nSome text.", first.Content)

	second := doc.Sections[1]
	require.Equal(t, "Section Two", second.Title)
	require.Equal(t, "section-two", second.Slug)
	require.Equal(t, 1, second.Order)
	require.Equal(t, "## Section Two\nMore text.", second.Content)
}

func TestScanTableOfContentsNeverStartsSection(t *testing.T) {
	t.Parallel()

	doc := scanText(`# Guide
## First
Body.
## Table of Contents
- [First](#first)
## Second
More.`)

	require.Len(t, doc.Sections, 2)
	require.Equal(t, "First", doc.Sections[0].Title)
	require.Equal(t, "Second", doc.Sections[1].Title)

	// The TOC heading and its lines belong to the preceding open section.
	require.Contains(t, doc.Sections[0].Content, "## Table of Contents")
	require.Contains(t, doc.Sections[0].Content, "- [First](#first)")
}

func TestScanTableOfContentsBeforeAnySectionIsDropped(t *testing.T) {
	t.Parallel()

	doc := scanText(`# Guide
## Table of Contents
- [First](#first)
## First
Body.`)

	require.Len(t, doc.Sections, 1)
	require.Equal(t, "First", doc.Sections[0].Title)
	require.NotContains(t, doc.Sections[0].Content, "Table of Contents")
}

func TestScanNoSections(t *testing.T) {
	t.Parallel()

	doc := scanText(`# Lonely Guide
> Just a header.
Some prose without any second-level heading.`)

	require.Equal(t, "Lonely Guide", doc.Title)
	require.Equal(t, "Just a header.", doc.Description)
	require.Empty(t, doc.Sections)
}

func TestScanTitleFirstWins(t *testing.T) {
	t.Parallel()

	doc := scanText(`# First Title
# Second Title
## Section
Text.`)

	require.Equal(t, "First Title", doc.Title)
	// Later pre-section top-level headings are consumed, not emitted.
	require.NotContains(t, doc.Sections[0].Content, "Second Title")
}

func TestScanTitleEmptyWithoutHeading(t *testing.T) {
	t.Parallel()

	doc := scanText(`## Section
Text.`)

	require.Empty(t, doc.Title)
	require.Len(t, doc.Sections, 1)
}

func TestScanTopLevelHeadingInsideSectionIsContent(t *testing.T) {
	t.Parallel()

	doc := scanText(`## Section
# Not A Title
Text.`)

	require.Empty(t, doc.Title)
	require.Contains(t, doc.Sections[0].Content, "# Not A Title")
}

func TestScanBlockquoteInsideSectionIsContent(t *testing.T) {
	t.Parallel()

	doc := scanText(`> real description
## Section
> quoted advice`)

	require.Equal(t, "real description", doc.Description)
	require.Contains(t, doc.Sections[0].Content, "> quoted advice")
}

func TestScanLastBlockquoteWinsPreSection(t *testing.T) {
	t.Parallel()

	doc := scanText(`> first
> second
## Section
Text.`)

	require.Equal(t, "second", doc.Description)
}

func TestScanMetadataDroppedPreSectionOnly(t *testing.T) {
	t.Parallel()

	doc := scanText(`# Guide
**Last Updated**: 2025-01-01
**Status**: stable
**Target Audience**: everyone
## Section
**Status**: this one stays
Text.`)

	require.Len(t, doc.Sections, 1)
	require.Contains(t, doc.Sections[0].Content, "**Status**: this one stays")
}

func TestScanHorizontalRuleDroppedPreSection(t *testing.T) {
	t.Parallel()

	doc := scanText(`# Guide
---
## Section
Text.
---
More.`)

	require.Len(t, doc.Sections, 1)
	require.Contains(t, doc.Sections[0].Content, "---")
	require.Contains(t, doc.Sections[0].Content, "More.")
}

func TestScanPreSectionProseDropped(t *testing.T) {
	t.Parallel()

	doc := scanText(`# Guide
This intro line belongs to no section.
## Section
Text.`)

	require.Len(t, doc.Sections, 1)
	require.NotContains(t, doc.Sections[0].Content, "intro line")
}

func TestScanDocumentWithFrontmatter(t *testing.T) {
	t.Parallel()

	doc := ScanDocument([]byte(`---
title: Frontmatter Guide
description: From the header.
---
## Section
Text.`))

	require.Equal(t, "Frontmatter Guide", doc.Title)
	require.Equal(t, "From the header.", doc.Description)
	require.Len(t, doc.Sections, 1)
}

func TestScanDocumentBodyTitleBeatsFrontmatter(t *testing.T) {
	t.Parallel()

	doc := ScanDocument([]byte(`---
title: Frontmatter Title
---
# Body Title
## Section
Text.`))

	require.Equal(t, "Body Title", doc.Title)
}

func TestScanDocumentLeadingHorizontalRule(t *testing.T) {
	t.Parallel()

	// A document opening with a horizontal rule is ordinary markdown, even
	// when a second rule appears later; both rules fall under the usual
	// pre-section discard and every other line keeps its meaning.
	doc := ScanDocument([]byte(`---
# My Guide
> A short description.
---
## Section One
Some text.
`))

	require.Equal(t, "My Guide", doc.Title)
	require.Equal(t, "A short description.", doc.Description)
	require.Len(t, doc.Sections, 1)
	require.Equal(t, "## Section One\nSome text.", doc.Sections[0].Content)
}

func TestScanDocumentRuledHeaderIsNotFrontmatter(t *testing.T) {
	t.Parallel()

	// "# My Guide" alone between two rules parses as a YAML comment; it must
	// still be captured as the document title, not swallowed as frontmatter.
	doc := ScanDocument([]byte(`---
# My Guide
---
## Section
Text.
`))

	require.Equal(t, "My Guide", doc.Title)
	require.Len(t, doc.Sections, 1)
}

func TestScanDocumentCRLF(t *testing.T) {
	t.Parallel()

	doc := ScanDocument([]byte("# Guide\r\n## Section\r\nText.\r\n"))

	require.Equal(t, "Guide", doc.Title)
	require.Len(t, doc.Sections, 1)
	require.Equal(t, "## Section\nText.", doc.Sections[0].Content)
}
