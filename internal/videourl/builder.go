// Package videourl maps a search term to the address of its sign video page.
package videourl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Placeholder is replaced by the normalized term in a template.
const Placeholder = "{term}"

// ErrEmptyTerm is returned for terms that are blank after trimming.
var ErrEmptyTerm = errors.New("empty search term")

// Builder builds video page URLs from a fixed template. It is safe for
// concurrent use.
type Builder struct {
	template string
}

// NewBuilder returns a Builder for template, which must contain Placeholder.
func NewBuilder(template string) (*Builder, error) {
	if !strings.Contains(template, Placeholder) {
		return nil, fmt.Errorf("url template %q has no %s placeholder", template, Placeholder)
	}
	return &Builder{template: template}, nil
}

// Build returns the video page URL for term.
func (b *Builder) Build(term string) (string, error) {
	slug := Normalize(term)
	if slug == "" {
		return "", ErrEmptyTerm
	}
	return strings.ReplaceAll(b.template, Placeholder, url.PathEscape(slug)), nil
}

// Normalize lowercases term and joins its words with hyphens, so "Thank you",
// "thank  you" and "THANK YOU" all become "thank-you".
func Normalize(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), "-")
}
