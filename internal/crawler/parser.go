package crawler

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseResult contains the information extracted from an HTML page.
//
// Design decision: We return a comprehensive result struct from a single
// parsing pass rather than exposing per-field extraction methods, because
// every caller (metadata extraction and link discovery) wants the same
// parse and the pass over the DOM is the expensive part.
type ParseResult struct {
	// Title is the page title from the first <title> tag, empty if absent.
	Title string

	// Anchors contains the raw href values of all <a> elements that carry
	// an href attribute. Values are kept exactly as written, relative or
	// absolute or malformed, because the link matching rules operate on
	// raw substrings.
	Anchors []string

	// Keywords are the content values of meta elements whose name
	// attribute is "keywords" (case-insensitive), in document order.
	Keywords []string

	// Descriptions are the content values of meta elements whose name
	// attribute is "description" (case-insensitive), in document order.
	Descriptions []string
}

// Parse parses HTML content and extracts the title, meta values, and
// anchor targets.
//
// Design decision: We use golang.org/x/net/html rather than regex because
// it correctly handles the malformed HTML common on organization websites
// and never fails on real-world input (the tokenizer recovers from any
// byte sequence).
func Parse(content io.Reader) (*ParseResult, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		Anchors:      make([]string, 0),
		Keywords:     make([]string, 0),
		Descriptions: make([]string, 0),
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			processElement(n, result)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return result, nil
}

// processElement handles a single HTML element node.
func processElement(n *html.Node, result *ParseResult) {
	switch n.Data {
	case "title":
		if result.Title == "" {
			result.Title = strings.TrimSpace(textContent(n))
		}

	case "a":
		// Anchors without an href are skipped; present hrefs are kept raw.
		if href, ok := attr(n, "href"); ok {
			result.Anchors = append(result.Anchors, href)
		}

	case "meta":
		name, _ := attr(n, "name")
		content, ok := attr(n, "content")
		if !ok {
			return
		}
		switch {
		case strings.EqualFold(name, "keywords"):
			result.Keywords = append(result.Keywords, content)
		case strings.EqualFold(name, "description"):
			result.Descriptions = append(result.Descriptions, content)
		}
	}
}

// textContent returns the concatenated text of a node's direct children.
func textContent(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// attr retrieves an attribute value from an HTML node, reporting whether
// the attribute is present at all (an empty value is distinct from absent).
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// FindLinks returns the anchor targets of the page that contain the given
// domain substring.
//
// Matching is naive containment, not a host comparison: a substring
// appearing in a path or query also matches. This is an accepted
// limitation: raw hrefs are frequently relative or malformed, and
// substring matching catches links a strict URL parse would reject.
// No deduplication happens at this layer.
func FindLinks(page *ParseResult, domain string) []string {
	links := make([]string, 0)
	for _, href := range page.Anchors {
		if strings.Contains(href, domain) {
			links = append(links, href)
		}
	}
	return links
}
