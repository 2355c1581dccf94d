package sections

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// BuildIndex creates a GuideIndex from a scanned document and builds the
// runtime slug lookup map.
func BuildIndex(doc *Document) *GuideIndex {
	index := &GuideIndex{
		Title:       doc.Title,
		Description: doc.Description,
		Sections:    doc.Sections,
	}

	index.buildRuntimeIndexes()

	return index
}

// buildRuntimeIndexes creates lookup maps for fast retrieval. Later sections
// win on slug collision, matching which file survives on disk.
func (idx *GuideIndex) buildRuntimeIndexes() {
	idx.BySlug = make(map[string]*Section, len(idx.Sections))
	for i := range idx.Sections {
		section := &idx.Sections[i]
		idx.BySlug[section.Slug] = section
	}
}

// WriteJSON serializes the index to a JSON file.
func (idx *GuideIndex) WriteJSON(outputPath string) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}

	return nil
}

// LoadJSON deserializes an index from JSON data and rebuilds runtime indexes.
func LoadJSON(data []byte) (*GuideIndex, error) {
	var index GuideIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index: %w", err)
	}

	index.buildRuntimeIndexes()

	return &index, nil
}

// LoadJSONFile reads and deserializes an index file.
func LoadJSONFile(path string) (*GuideIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	return LoadJSON(data)
}
