package model

// FollowersUnknown is the sentinel follower count meaning the count could
// not be determined (fetch failure, pattern absent, malformed payload).
const FollowersUnknown = -1

// SocialLink is one discovered social profile: the provider it belongs to,
// the profile URL as found on the page, and its follower count.
//
// The struct is comparable on purpose: the crawler deduplicates discoveries
// by full value equality. Two discoveries of the same URL with different
// follower counts stay distinct entries, matching the established export
// behavior downstream consumers rely on.
type SocialLink struct {
	// Provider is the provider identifier (e.g. "vk", "facebook").
	Provider string `json:"provider"`

	// URL is the raw profile URL as it appeared in the page.
	URL string `json:"url"`

	// Followers is the follower count, or FollowersUnknown.
	Followers int `json:"followers"`
}
