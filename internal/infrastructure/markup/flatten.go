// Package markup flattens filing documents to plain text for the extractor.
package markup

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Flatten strips markup from a filing document and returns searchable plain
// text. Documents without markup pass through as-is; the extractor assumes
// plain text either way.
func Flatten(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("document is not valid UTF-8 text")
	}
	if !looksLikeMarkup(raw) {
		return strings.TrimSpace(raw), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		// Unparseable markup still has to yield a searchable corpus.
		return strings.TrimSpace(raw), nil
	}

	doc.Find("script, style").Remove()

	text := doc.Text()
	if strings.TrimSpace(text) == "" {
		return strings.TrimSpace(raw), nil
	}
	return strings.TrimSpace(text), nil
}

// looksLikeMarkup is a cheap tag sniff; EDGAR archive documents are either
// HTML/SGML wrappers or plain text exhibits.
func looksLikeMarkup(raw string) bool {
	sample := raw
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	sample = strings.ToLower(sample)
	for _, marker := range []string{"<html", "<!doctype", "<body", "<table", "<div", "<sec-document", "<p>", "<p "} {
		if strings.Contains(sample, marker) {
			return true
		}
	}
	return false
}
