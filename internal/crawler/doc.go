// Package crawler provides site crawling for social profile discovery.
//
// # Components
//
//   - Parser: HTML parser that extracts the title, meta keyword/description
//     values, and raw anchor targets
//   - FindLinks: filters parsed anchors by a domain substring
//   - Spider: bounded breadth-first crawler that collects social links
//     (with follower counts) across the pages of one site
//
// # Bounds
//
// The spider visits each URL at most once and never fetches more pages
// than its configured cap. The cap defaults to one page, the seed, which
// in practice finds the social links sites keep in their header or footer;
// deep traversal across thousands of organization sites proved too slow
// for what the extra pages yield. The cap is configuration, not logic.
//
// Design decision: We implement our own crawler rather than using a
// third-party library because the traversal is tiny (a FIFO frontier and a
// visited set), the matching rules are peculiar to this tool (raw-href
// substring containment), and page fetches within one crawl are strictly
// sequential on purpose.
package crawler
