// Package social detects which social networks a link belongs to and
// extracts follower counts from profile URLs.
//
// Each supported provider is bound to a domain substring used for link
// matching and to an extraction strategy. The strategies are deliberately
// heterogeneous because the networks expose follower counts in different
// ways, none of them official:
//   - vk and facebook: pattern matching on the served HTML
//   - instagram: the JSON variant of the profile page (?__a=1)
//   - twitter: the follow-button syndication endpoint
//
// All of these are best-effort against semi-structured, undocumented
// sources. Every failure (network, status, pattern absent, malformed
// JSON) collapses to the FollowersUnknown sentinel at the public
// boundary; internally the strategies return errors so tests can
// distinguish failure causes.
package social
