package social

// Provider identifiers. These are the values stored in the provider field
// of discovered social links.
const (
	ProviderVK        = "vk"
	ProviderFacebook  = "facebook"
	ProviderTwitter   = "twitter"
	ProviderInstagram = "instagram"
)

// Provider binds a provider identifier to the domain substring used for
// link matching.
//
// Matching is naive substring containment against the raw href, not a
// parsed host comparison. That can false-positive on hrefs whose path or
// query happens to contain the domain, which is an accepted limitation:
// the raw hrefs on organization sites are frequently relative or
// malformed, and substring matching catches profile links a strict host
// parse would reject.
type Provider struct {
	// Name is the provider identifier (e.g. "vk").
	Name string

	// Domain is the substring an href must contain to be considered a
	// link to this provider.
	Domain string
}

// Providers is the fixed set of supported social networks, in the order
// the crawler checks them.
func Providers() []Provider {
	return []Provider{
		{Name: ProviderVK, Domain: "vk.com"},
		{Name: ProviderFacebook, Domain: "facebook.com"},
		{Name: ProviderTwitter, Domain: "twitter.com"},
		{Name: ProviderInstagram, Domain: "instagram.com"},
	}
}
