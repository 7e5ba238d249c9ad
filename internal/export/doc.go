// Package export writes enriched organization records in tabular and
// structured formats.
//
// Three writers share one interface:
//   - CSVWriter: the flat tabular export consumed downstream
//   - JSONWriter: structured output for tool integration
//   - MarkdownWriter: human-readable summaries for sharing
//
// The CSV format preserves a long-standing quirk: the column set is fixed
// by the first record's fields. Later records that introduce new fields
// lose them silently. Downstream consumers depend on the existing files,
// so the quirk stays.
package export
