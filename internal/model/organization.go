package model

import "sort"

// Field keys used by upstream listing records and the enriched output.
// The upstream API delivers open-ended JSON objects; SiteURLKey is the only
// field the pipeline requires.
const (
	// SiteURLKey is the upstream field holding the organization's website URL.
	SiteURLKey = "site_url"

	// SitePrefix is prepended to every metadata field added during enrichment.
	// Prefixing avoids collisions with upstream fields by construction.
	SitePrefix = "site_"

	// SocialURLsKey is the output field holding discovered social links.
	SocialURLsKey = "social_urls"
)

// Organization is a single record from the upstream organization listing.
//
// Design decision: The upstream API returns open-ended JSON objects whose
// field set varies between deployments. We keep the one field we depend on
// (the site URL) as a typed struct field and carry everything else in Extra,
// so unknown upstream columns pass through to the export untouched.
type Organization struct {
	// SiteURL is the organization's website URL as delivered upstream.
	// It may lack a scheme; the pipeline normalizes it before fetching.
	SiteURL string

	// Extra holds all upstream fields other than the site URL.
	// Values are passed through to the export without interpretation.
	Extra map[string]any
}

// NewOrganization builds an Organization from a raw upstream record.
// The site URL field is lifted out of the map; remaining fields go to Extra.
func NewOrganization(record map[string]any) Organization {
	org := Organization{Extra: make(map[string]any, len(record))}
	for k, v := range record {
		if k == SiteURLKey {
			if s, ok := v.(string); ok {
				org.SiteURL = s
			}
			continue
		}
		org.Extra[k] = v
	}
	return org
}

// ExtraKeys returns the passthrough field names in sorted order.
// Go maps are unordered, so a stable order is needed for deterministic
// export columns.
func (o Organization) ExtraKeys() []string {
	keys := make([]string, 0, len(o.Extra))
	for k := range o.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnrichedOrganization is an organization record after processing:
// the original fields plus site availability, page metadata, and the
// social links discovered by the crawler.
type EnrichedOrganization struct {
	Organization

	// SiteAvailable reports whether the site responded with a successful
	// status to the initial fetch.
	SiteAvailable bool `json:"site_available"`

	// SiteTitle is the page title, or empty when absent or unavailable.
	SiteTitle string `json:"site_title"`

	// SiteKeywords are the values of all keywords meta tags in document order.
	SiteKeywords []string `json:"site_keywords"`

	// SiteDescriptions are the values of all description meta tags in
	// document order.
	SiteDescriptions []string `json:"site_descriptions"`

	// SocialLinks are the deduplicated social profile discoveries.
	SocialLinks []SocialLink `json:"social_urls"`
}

// Record returns the flat output record: upstream fields merged with the
// site_-prefixed metadata fields and the social link list. Enriched fields
// win on collision, though prefixing makes collisions impossible for
// well-formed upstream data.
func (e *EnrichedOrganization) Record() map[string]any {
	record := make(map[string]any, len(e.Extra)+6)
	for k, v := range e.Extra {
		record[k] = v
	}
	record[SiteURLKey] = e.SiteURL
	record[SitePrefix+"available"] = e.SiteAvailable
	record[SitePrefix+"title"] = e.SiteTitle
	record[SitePrefix+"keywords"] = e.SiteKeywords
	record[SitePrefix+"descriptions"] = e.SiteDescriptions
	record[SocialURLsKey] = e.SocialLinks
	return record
}

// FieldNames returns the output column order for this record: the site URL,
// the sorted passthrough fields, then the enrichment fields. The CSV export
// fixes its header from the first record's FieldNames.
func (e *EnrichedOrganization) FieldNames() []string {
	names := []string{SiteURLKey}
	names = append(names, e.ExtraKeys()...)
	names = append(names,
		SitePrefix+"available",
		SitePrefix+"title",
		SitePrefix+"keywords",
		SitePrefix+"descriptions",
		SocialURLsKey,
	)
	return names
}
