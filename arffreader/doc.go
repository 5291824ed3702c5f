// Package arffreader implements the dataset.Reader contract over
// declaration-style headers followed by a binary (0/1) matrix in either
// sparse-index or dense form.
//
// Header lines are classified by their leading marker: "%" comments and
// "@relation" declarations are consumed and ignored, each "@attribute"
// contributes one attribute name, and "@data" terminates the header.
// Unknown directives are tolerated. A missing "@data" marker fails the
// statistics pass with dataset.ErrMissingDataSection.
//
// Data rows starting with "{" are sparse: bracketed index/value pairs in
// either the space-separated ("{0 1, 2 1}") or colon-separated
// ("{0:1, 2:1}") convention. Indices outside the attribute range are
// dropped silently. All other rows are dense delimiter-separated tokens,
// clipped to the shorter of token count and attribute count.
//
// The source is a pure presence/absence matrix: a token counts as one
// when it equals "1", "1.0" or (any case) "true"; everything else counts
// as zero and never materializes a Selector. Exactly one Selector — the
// literal "1" — exists per attribute, and only when its frequency is
// positive. The target attribute count is fixed to zero (pure pattern
// mining, no prediction target).
//
// Minimum support is floor(rows × threshold), with no floor-to-one
// adjustment — a preserved divergence from csvreader.
//
// The streaming pass expands sparse rows into full dense "0"/"1" arrays,
// so downstream consumers never observe the sparse encoding.
package arffreader
