package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Content is an opaque renderable payload carried by questions and
// answers. Implementations render themselves either as HTML markup or
// as raw plain text.
type Content interface {
	HTML() string
	Text() string
}

// MarkdownContent renders a markdown source document.
type MarkdownContent struct {
	Source string
}

func (c MarkdownContent) HTML() string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(c.Source), &buf); err != nil {
		// A conversion failure only happens on writer errors; fall back
		// to the escaped source so the page still shows something.
		return html.EscapeString(c.Source)
	}
	return buf.String()
}

func (c MarkdownContent) Text() string {
	return stripTags(c.HTML())
}

// HTMLContent carries pre-rendered markup.
type HTMLContent struct {
	Markup string
}

func (c HTMLContent) HTML() string {
	return c.Markup
}

func (c HTMLContent) Text() string {
	return stripTags(c.Markup)
}

var strictPolicy = bluemonday.StrictPolicy()

func stripTags(markup string) string {
	return html.UnescapeString(strictPolicy.Sanitize(markup))
}

const (
	contentKindMarkdown = "markdown"
	contentKindHTML     = "html"
)

type contentEnvelope struct {
	Kind string `json:"kind"`
	Body string `json:"body"`
}

// ContentColumn stores a Content value in a single database column as a
// JSON envelope. The envelope format is internal to this package.
type ContentColumn struct {
	Content
}

func (c ContentColumn) Value() (driver.Value, error) {
	var env contentEnvelope
	switch v := c.Content.(type) {
	case nil:
		return nil, nil
	case MarkdownContent:
		env = contentEnvelope{Kind: contentKindMarkdown, Body: v.Source}
	case HTMLContent:
		env = contentEnvelope{Kind: contentKindHTML, Body: v.Markup}
	default:
		return nil, fmt.Errorf("content: unsupported type %T", c.Content)
	}
	return json.Marshal(env)
}

func (c *ContentColumn) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		c.Content = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("content: cannot scan %T", src)
	}

	var env contentEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("content: decode envelope: %w", err)
	}
	switch env.Kind {
	case contentKindMarkdown:
		c.Content = MarkdownContent{Source: env.Body}
	case contentKindHTML:
		c.Content = HTMLContent{Markup: env.Body}
	default:
		return fmt.Errorf("content: unknown kind %q", env.Kind)
	}
	return nil
}
