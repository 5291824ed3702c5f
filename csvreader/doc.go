// Package csvreader implements the dataset.Reader contract over
// quote-aware delimited text: a header line supplying attribute names
// positionally, followed by data rows.
//
// Tokenization splits on a single configurable delimiter; delimiter
// occurrences inside double-quoted spans do not split, a doubled quote
// inside a quoted span decodes to one literal quote, and an unterminated
// quote consumes to end of line without error. Each token is trimmed,
// stripped of surrounding quotes, and mapped to the null symbol "?" when
// empty or case-insensitively equal to "NA".
//
// Row-width mismatches are repaired, never rejected: short rows are
// right-padded with "?", long rows are truncated to the attribute count.
// This tolerance is a deliberate robustness policy of the ingestion
// layer.
//
// Minimum support is ceil(rows × threshold), at least 1 whenever the
// threshold is positive. Note the intentional divergence from
// arffreader, which floors instead; both behaviors are preserved as
// observed.
//
// Usage:
//
//	r := csvreader.New(dataset.WithDelimiter(';'))
//	if err := r.FetchInfo("data/train.csv", 1, 0.05); err != nil { ... }
//	_ = r.BindSource("data/train.csv")
//	defer r.Close()
package csvreader
