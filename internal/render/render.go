// Package render turns fetched note content into markdown documents with a
// YAML front-matter block.
package render

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	linkKeyOrder     = []string{"title", "url", "author", "site", "created"}
	richTextKeyOrder = []string{"title", "created", "updated"}
)

type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

// LinkFrontMatter renders properties of a web link.
func (r *Renderer) LinkFrontMatter(props map[string]any) (string, error) {
	return frontMatter(props, "link", linkKeyOrder)
}

// RichTextFrontMatter renders properties of an authored note.
func (r *Renderer) RichTextFrontMatter(props map[string]any) (string, error) {
	return frontMatter(props, "note", richTextKeyOrder)
}

// Document is the input of a full render.
type Document struct {
	FrontMatter string
	Body        string
	Tags        []string
}

// Document joins front-matter, body and a trailing tag line.
func (r *Renderer) Document(doc Document) string {
	var sb strings.Builder
	sb.WriteString(doc.FrontMatter)

	body := strings.TrimRight(doc.Body, " \t\r\n")
	if body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
		sb.WriteString("\n")
	}

	if tags := tagLine(doc.Tags); tags != "" {
		sb.WriteString("\n")
		sb.WriteString(tags)
		sb.WriteString("\n")
	}
	return sb.String()
}

func frontMatter(props map[string]any, kind string, leading []string) (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	add := func(key string, value any) error {
		var v yaml.Node
		if err := v.Encode(value); err != nil {
			return fmt.Errorf("encode property %q: %w", key, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&v,
		)
		return nil
	}

	seen := make(map[string]bool, len(props)+1)
	for _, key := range leading {
		if v, ok := props[key]; ok {
			if err := add(key, v); err != nil {
				return "", err
			}
			seen[key] = true
		}
	}

	rest := make([]string, 0, len(props))
	for key := range props {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		if err := add(key, props[key]); err != nil {
			return "", err
		}
	}

	if _, ok := props["type"]; !ok {
		if err := add("type", kind); err != nil {
			return "", err
		}
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}
	return "---\n" + string(out) + "---\n", nil
}

func tagLine(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimLeft(strings.TrimSpace(tag), "#")
		if tag == "" {
			continue
		}
		parts = append(parts, "#"+strings.Join(strings.Fields(tag), "-"))
	}
	return strings.Join(parts, " ")
}
