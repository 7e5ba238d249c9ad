// Package fetch provides the HTTP client used by the crawler, the follower
// extractor, and the listing client.
//
// All remote endpoints this tool talks to are unreliable in their own way:
// organization sites go down, social networks rewrite their markup, the
// unofficial endpoints disappear without notice. The client therefore makes
// failure cheap: every request has a timeout, response bodies are
// size-limited, and callers receive the status code and body rather than an
// error for non-success responses, so they can degrade to sentinel values.
//
// Design decision: We wrap net/http directly instead of adopting an HTTP
// client library because the needs are small (GET with headers, redirects,
// body limit) and a wrapper keeps the two request flavors, HTML pages with
// an English-language preference and JSON endpoint variants, in one place.
package fetch
