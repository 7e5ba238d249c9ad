// Package pipeline orchestrates organization enrichment.
//
// # Components
//
//   - Processor: enriches a single organization record (normalize the site
//     URL, fetch the page once, extract metadata, run the social crawl)
//   - BatchProcessor: fans Processor invocations out across a bounded
//     worker pool
//
// Organizations are independent and embarrassingly parallel, so the batch
// layer runs many at once; within one organization the crawl fetches pages
// strictly sequentially. Per-organization failures never abort the batch:
// an unreachable site simply yields a record with empty enrichment fields.
package pipeline
