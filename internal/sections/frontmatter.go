package sections

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter represents optional YAML frontmatter on the source document.
// When present it seeds the document title and description; the matching
// capture rules in the body still apply afterwards.
type Frontmatter struct {
	// Title is the guide title
	Title string `yaml:"title"`

	// Description is the guide description
	Description string `yaml:"description"`
}

// ParseFrontmatter extracts YAML frontmatter from the source document and
// returns it together with the remaining body. Anything that is not a
// well-formed frontmatter block — no leading "---", no closing "---", or an
// interior that is not a YAML mapping — yields an empty Frontmatter and the
// unchanged input, leaving the "---" lines to the scanner's usual rules.
func ParseFrontmatter(content []byte) (*Frontmatter, []byte) {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return &Frontmatter{}, content // No frontmatter
	}

	rest := content[bytes.IndexByte(content, '\n')+1:]

	var yamlLines []string
	var body []byte
	closed := false
	for offset := 0; offset < len(rest); {
		line := rest[offset:]
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			offset += i + 1
		} else {
			offset = len(rest)
		}

		text := strings.TrimRight(string(line), "\r")
		if text == "---" {
			closed = true
			body = rest[offset:]
			break
		}
		yamlLines = append(yamlLines, text)
	}

	// A lone opening "---" is a horizontal rule, not frontmatter.
	if !closed {
		return &Frontmatter{}, content
	}

	raw := []byte(strings.Join(yamlLines, "\n"))

	// The interior must decode to a non-empty mapping; ordinary markdown
	// between two horizontal rules does not, and stays in the document.
	var mapping map[string]any
	if err := yaml.Unmarshal(raw, &mapping); err != nil || len(mapping) == 0 {
		return &Frontmatter{}, content
	}

	var fm Frontmatter
	if err := yaml.Unmarshal(raw, &fm); err != nil {
		return &Frontmatter{}, content
	}

	return &fm, body
}
