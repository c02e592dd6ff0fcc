// Package htmlform extracts form field values from HTML documents.
package htmlform

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Value parses the HTML document from r and returns the value attribute of
// the element with the given id. Returns an error when the element is absent
// or carries no value, since callers use this to pull login tokens out of
// server pages and an empty token means the page was not what was expected.
func Value(r io.Reader, id string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	sel := doc.Find("#" + id)
	if sel.Length() == 0 {
		return "", fmt.Errorf("no element with id %q", id)
	}

	value, ok := sel.First().Attr("value")
	if !ok || value == "" {
		return "", fmt.Errorf("element %q has no value", id)
	}
	return value, nil
}
