package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/orgscan/orgscan/internal/model"
)

func sampleOrgs() []*model.EnrichedOrganization {
	return []*model.EnrichedOrganization{
		{
			Organization: model.Organization{
				SiteURL: "http://acme.example",
				Extra:   map[string]any{"name": "Acme"},
			},
			SiteAvailable:    true,
			SiteTitle:        "Acme Corp",
			SiteKeywords:     []string{"widgets"},
			SiteDescriptions: []string{"widget maker"},
			SocialLinks: []model.SocialLink{
				{Provider: "facebook", URL: "http://facebook.com/acme", Followers: 1234},
				{Provider: "vk", URL: "http://vk.com/acme", Followers: model.FollowersUnknown},
			},
		},
		{
			Organization: model.Organization{
				SiteURL: "http://dead.example",
				Extra:   map[string]any{"name": "Dead", "region": "77"},
			},
			SiteKeywords:     []string{},
			SiteDescriptions: []string{},
			SocialLinks:      []model.SocialLink{},
		},
	}
}

// TestCSVWriter tests the CSV export format.
func TestCSVWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewCSVWriter(&buf).Write(sampleOrgs())
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		rows, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected header + 2 rows, got %d", len(rows))
		}

		header := rows[0]
		wantHeader := []string{
			"site_url", "name",
			"site_available", "site_title", "site_keywords", "site_descriptions",
			"social_urls",
		}
		if strings.Join(header, ",") != strings.Join(wantHeader, ",") {
			t.Errorf("unexpected header:\n got %v\nwant %v", header, wantHeader)
		}

		if rows[1][0] != "http://acme.example" || rows[1][2] != "true" {
			t.Errorf("unexpected first row: %v", rows[1])
		}
		if !strings.Contains(rows[1][6], `"followers":1234`) {
			t.Errorf("social links should be JSON-encoded in the cell: %q", rows[1][6])
		}
	})

	t.Run("column set comes from the first record", func(t *testing.T) {
		t.Parallel()

		orgs := sampleOrgs()

		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf).Write(orgs); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		rows, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}

		// The second record carries a "region" field the first does not;
		// it is dropped because the first record fixes the columns.
		for _, field := range rows[0] {
			if field == "region" {
				t.Error("later-record-only field should not appear in the header")
			}
		}
		if len(rows[2]) != len(rows[0]) {
			t.Errorf("row width should match header: %v", rows[2])
		}
	})

	t.Run("empty batch writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewCSVWriter(&buf).Write(nil)
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if n != 0 || buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

// TestJSONWriter tests the JSON export format.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes flat records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewJSONWriter(&buf).Write(sampleOrgs())
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		var records []map[string]any
		if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}

		if records[0]["site_url"] != "http://acme.example" {
			t.Errorf("unexpected site_url: %v", records[0]["site_url"])
		}
		if records[0]["site_available"] != true {
			t.Errorf("unexpected site_available: %v", records[0]["site_available"])
		}
		// Later-record fields survive in JSON, unlike CSV.
		if records[1]["region"] != "77" {
			t.Errorf("expected region field on second record: %v", records[1])
		}

		links, ok := records[0]["social_urls"].([]any)
		if !ok || len(links) != 2 {
			t.Fatalf("unexpected social_urls: %v", records[0]["social_urls"])
		}
		first, _ := links[0].(map[string]any)
		if first["provider"] != "facebook" || first["followers"] != float64(1234) {
			t.Errorf("unexpected first link: %v", first)
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(sampleOrgs()); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("empty batch writes an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(nil); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("expected empty array, got %q", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown report format.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes overview and profile tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(sampleOrgs()); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"# Organization Site Report",
			"## Social Profiles",
			"### http://acme.example",
			"Facebook", // provider rendered as a display name
			"1234",
			"✅",
			"❌",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in report:\n%s", want, out)
			}
		}

		// Unknown counts render as a dash, never as the sentinel.
		if strings.Contains(out, "-1") {
			t.Errorf("sentinel value leaked into report:\n%s", out)
		}
	})

	t.Run("no profiles at all", func(t *testing.T) {
		t.Parallel()

		orgs := sampleOrgs()[1:2]

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(orgs); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if !strings.Contains(buf.String(), "No social profiles discovered.") {
			t.Errorf("expected placeholder text:\n%s", buf.String())
		}
	})
}

// TestFollowersText tests sentinel rendering.
func TestFollowersText(t *testing.T) {
	t.Parallel()

	if got := followersText(model.FollowersUnknown); got != "-" {
		t.Errorf("expected dash for unknown, got %q", got)
	}
	if got := followersText(42); got != "42" {
		t.Errorf("expected 42, got %q", got)
	}
}

// TestTruncateCell tests cell truncation.
func TestTruncateCell(t *testing.T) {
	t.Parallel()

	if got := truncateCell("short", 60); got != "short" {
		t.Errorf("short strings should pass through, got %q", got)
	}
	long := strings.Repeat("a", 70)
	got := truncateCell(long, 60)
	if len(got) != 60 || !strings.HasSuffix(got, "...") {
		t.Errorf("unexpected truncation: %q", got)
	}
}
