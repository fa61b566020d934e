// Package filter reconciles overlapping conserved-domain hits into one
// clean, non-overlapping annotation track per query: overlapping hits are
// grouped, one representative per group survives under a scoring metric,
// and adjacent truncated hits of the same type are merged back into the
// single domain they were split from.
//
// The registry is injected; nothing in this package holds global state.
package filter
