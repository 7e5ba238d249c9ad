package crawler

import (
	"reflect"
	"strings"
	"testing"
)

// TestParse tests HTML extraction.
func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, metas, and anchors", func(t *testing.T) {
		t.Parallel()

		page := `<html><head>
<title> Acme Corp </title>
<meta name="Keywords" content="a,b">
<meta name="description" content="first">
<meta name="DESCRIPTION" content="second">
</head><body>
<a href="http://vk.com/acme">vk</a>
<a href="/about">about</a>
<a name="anchor-without-href">skip</a>
</body></html>`

		result, err := Parse(strings.NewReader(page))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		if result.Title != "Acme Corp" {
			t.Errorf("expected trimmed title, got %q", result.Title)
		}
		if !reflect.DeepEqual(result.Keywords, []string{"a,b"}) {
			t.Errorf("unexpected keywords: %v", result.Keywords)
		}
		if !reflect.DeepEqual(result.Descriptions, []string{"first", "second"}) {
			t.Errorf("unexpected descriptions: %v", result.Descriptions)
		}
		if !reflect.DeepEqual(result.Anchors, []string{"http://vk.com/acme", "/about"}) {
			t.Errorf("unexpected anchors: %v", result.Anchors)
		}
	})

	t.Run("keeps first title only", func(t *testing.T) {
		t.Parallel()

		result, err := Parse(strings.NewReader("<title>one</title><title>two</title>"))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if result.Title != "one" {
			t.Errorf("expected first title, got %q", result.Title)
		}
	})

	t.Run("keeps hrefs raw", func(t *testing.T) {
		t.Parallel()

		result, err := Parse(strings.NewReader(`<a href="  HTTP://Vk.Com/x?a=1 ">x</a>`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if !reflect.DeepEqual(result.Anchors, []string{"  HTTP://Vk.Com/x?a=1 "}) {
			t.Errorf("href should be untouched: %v", result.Anchors)
		}
	})

	t.Run("keeps empty but present hrefs", func(t *testing.T) {
		t.Parallel()

		result, err := Parse(strings.NewReader(`<a href="">x</a>`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if !reflect.DeepEqual(result.Anchors, []string{""}) {
			t.Errorf("empty href should still be collected: %v", result.Anchors)
		}
	})

	t.Run("skips meta without content", func(t *testing.T) {
		t.Parallel()

		result, err := Parse(strings.NewReader(`<meta name="keywords">`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if len(result.Keywords) != 0 {
			t.Errorf("meta without content should be skipped: %v", result.Keywords)
		}
	})

	t.Run("survives malformed markup", func(t *testing.T) {
		t.Parallel()

		result, err := Parse(strings.NewReader(`<html><body><a href="http://vk.com/a">broken`))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if len(result.Anchors) != 1 {
			t.Errorf("expected anchor from malformed page: %v", result.Anchors)
		}
	})
}

// TestFindLinks tests substring link matching.
func TestFindLinks(t *testing.T) {
	t.Parallel()

	page := &ParseResult{Anchors: []string{
		"http://vk.com/x",
		"/contacts",
		"http://facebook.com/acme",
		"https://sub.vk.com/y",
		"http://example.org/?ref=vk.com",
	}}

	t.Run("matches contained domain", func(t *testing.T) {
		t.Parallel()

		want := []string{"http://vk.com/x", "https://sub.vk.com/y", "http://example.org/?ref=vk.com"}
		if got := FindLinks(page, "vk.com"); !reflect.DeepEqual(got, want) {
			t.Errorf("unexpected links:\n got %v\nwant %v", got, want)
		}
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		t.Parallel()

		got := FindLinks(page, "twitter.com")
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", got)
		}
	})

	t.Run("does not deduplicate", func(t *testing.T) {
		t.Parallel()

		dup := &ParseResult{Anchors: []string{"http://vk.com/x", "http://vk.com/x"}}
		if got := FindLinks(dup, "vk.com"); len(got) != 2 {
			t.Errorf("duplicates should pass through: %v", got)
		}
	})
}
