package export

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/orgscan/orgscan/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs enriched records as a Markdown report.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables and GitHub-flavored output.
type MarkdownWriter struct {
	baseWriter

	// titleCaser renders provider identifiers as display names
	// ("facebook" → "Facebook").
	titleCaser cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		titleCaser: cases.Title(language.English),
	}
}

// Write outputs all records as a Markdown report: an overview table of
// sites, then one social-profile table per organization that has any.
func (w *MarkdownWriter) Write(orgs []*model.EnrichedOrganization) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeOverview(md, orgs)
	w.writeSocialProfiles(md, orgs)

	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by [orgscan](https://github.com/orgscan/orgscan)*")

	return len(md.String()), md.Build()
}

// writeOverview writes the per-site summary table.
func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, orgs []*model.EnrichedOrganization) {
	md.H1("Organization Site Report")
	md.PlainText("")

	rows := make([][]string, len(orgs))
	for i, org := range orgs {
		rows[i] = []string{
			"`" + org.SiteURL + "`",
			availabilityText(org.SiteAvailable),
			truncateCell(org.SiteTitle, 60),
			strconv.Itoa(len(org.SocialLinks)),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Site", "Available", "Title", "Social Profiles"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSocialProfiles writes the discovered profiles per organization.
func (w *MarkdownWriter) writeSocialProfiles(md *markdown.Markdown, orgs []*model.EnrichedOrganization) {
	md.H2("Social Profiles")
	md.PlainText("")

	wrote := false
	for _, org := range orgs {
		if len(org.SocialLinks) == 0 {
			continue
		}
		wrote = true

		md.H3(org.SiteURL)
		md.PlainText("")

		rows := make([][]string, len(org.SocialLinks))
		for i, link := range org.SocialLinks {
			rows[i] = []string{
				w.titleCaser.String(link.Provider),
				truncateCell(link.URL, 60),
				followersText(link.Followers),
			}
		}

		md.Table(markdown.TableSet{
			Header: []string{"Provider", "Profile", "Followers"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if !wrote {
		md.PlainText("No social profiles discovered.")
		md.PlainText("")
	}
}

// availabilityText renders the availability flag.
func availabilityText(available bool) string {
	if available {
		return "✅"
	}
	return "❌"
}

// followersText renders a follower count, showing the unknown sentinel as
// a dash rather than -1.
func followersText(count int) string {
	if count == model.FollowersUnknown {
		return "-"
	}
	return strconv.Itoa(count)
}

// truncateCell truncates a string to maxLen characters with ellipsis so
// table cells stay readable.
func truncateCell(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
