// Package listing fetches organization records from the upstream listing
// API.
//
// The upstream endpoint serves paged JSON of the form
//
//	{"success": true, "data": {"list": [ {…}, {…} ]}}
//
// where each list element is an open-ended object containing at least a
// site_url field. A failed listing fetch is the one fatal error in the
// whole tool: without the seed list there is nothing to process.
package listing
