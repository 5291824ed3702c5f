package arffreader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Leo890106/P3C/dataset"
)

// Structural markers of the declaration-style header.
const (
	commentMarker   = "%"
	relationMarker  = "@relation"
	attributeMarker = "@attribute"
	dataMarker      = "@data"
	sparseOpen      = "{"
)

const (
	// oneSymbol is the only selector value ever materialized per attribute.
	oneSymbol = "1"
	// zeroSymbol encodes structural absence in expanded dense records.
	zeroSymbol = "0"

	// fallbackAttrName names an @attribute declaration with no parsable name.
	fallbackAttrName = "attr"

	// maxLineBytes bounds a single source line during scanning.
	maxLineBytes = 1 << 20
)

// Reader is the sparse/dense-binary adapter. The zero value is not
// usable; construct with New. Not safe for concurrent use: the
// statistics pass and the streaming pass are strictly sequential scans.
type Reader struct {
	opts dataset.Options

	attrs       []*dataset.Attribute
	attrCount   int
	rowCount    int
	minSupCount int

	src  *os.File
	scan *bufio.Scanner
}

// compile-time contract check
var _ dataset.Reader = (*Reader)(nil)

// New builds a sparse/dense-binary adapter with the given options.
func New(opts ...dataset.Option) *Reader {
	return &Reader{opts: dataset.NewOptions(opts...)}
}

// Format reports FormatARFF.
func (r *Reader) Format() dataset.Format { return dataset.FormatARFF }

// FetchInfo runs the statistics computation: parses the declaration
// header into the attribute catalog, tallies the ones per attribute over
// one full scan of the data section, freezes the derived counters, and
// leaves the stream rebound at the start of the data section. The target
// attribute count is fixed to zero regardless of the argument.
func (r *Reader) FetchInfo(path string, _ int, supportThreshold float64) error {
	if dataset.DetectFormat(path) != dataset.FormatARFF {
		return fmt.Errorf("arffreader: FetchInfo(%q): %w", path, dataset.ErrFormatMismatch)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("arffreader: FetchInfo: %w", err)
	}
	defer f.Close()

	scan := newLineScanner(f)

	// 1) Header: collect attribute names until the data-section marker.
	var names []string
	seenData := false
header:
	for scan.Scan() {
		s := strings.TrimSpace(scan.Text())
		if s == "" || strings.HasPrefix(s, commentMarker) {
			continue
		}
		switch {
		case hasFoldPrefix(s, relationMarker):
			// relation name is ignored beyond consumption
		case hasFoldPrefix(s, attributeMarker):
			names = append(names, parseAttrName(s[len(attributeMarker):]))
		case strings.EqualFold(s, dataMarker):
			seenData = true
			break header
		default:
			// unknown directives are tolerated and ignored
		}
	}
	if err = scan.Err(); err != nil {
		return fmt.Errorf("arffreader: FetchInfo: %w", err)
	}
	if !seenData {
		return fmt.Errorf("arffreader: FetchInfo(%q): %w", path, dataset.ErrMissingDataSection)
	}
	attrCount := len(names)

	// 2) One full scan of the data section, counting ones per attribute.
	// Works uniformly for sparse and dense rows.
	onesFreq := make([]int, attrCount)
	rows := 0
	for scan.Scan() {
		s := strings.TrimSpace(scan.Text())
		if s == "" || strings.HasPrefix(s, commentMarker) {
			continue
		}
		rows++

		if strings.HasPrefix(s, sparseOpen) {
			for idx, val := range parseSparsePairs(s) {
				if idx >= 0 && idx < attrCount && isOne(val) {
					onesFreq[idx]++
				}
			}
			continue
		}

		toks := strings.Split(s, string(r.opts.Delimiter()))
		upto := min(len(toks), attrCount) // clip length mismatches
		for i := 0; i < upto; i++ {
			if isOne(toks[i]) {
				onesFreq[i]++
			}
		}
	}
	if err = scan.Err(); err != nil {
		return fmt.Errorf("arffreader: FetchInfo: %w", err)
	}
	r.opts.Logger().Info("arff statistics scan complete", "attrs", attrCount, "rows", rows)

	// 3) Catalog: one "1" selector per attribute, only when observed.
	attrs := make([]*dataset.Attribute, 0, attrCount)
	for i, name := range names {
		attr := dataset.NewAttribute(i, name)
		if freq := onesFreq[i]; freq > 0 {
			attr.SetFrequency(oneSymbol, freq)
		}
		attrs = append(attrs, attr)
	}

	r.attrs = attrs
	r.attrCount = attrCount
	r.rowCount = rows
	r.minSupCount = int(math.Floor(float64(rows) * supportThreshold))

	// 4) Ready for streaming.
	return r.BindSource(path)
}

// BindSource opens (or reopens, closing any prior handle) a stream
// positioned at the first line after the data-section marker. Idempotent.
func (r *Reader) BindSource(path string) error {
	if dataset.DetectFormat(path) != dataset.FormatARFF {
		return fmt.Errorf("arffreader: BindSource(%q): %w", path, dataset.ErrFormatMismatch)
	}
	if r.src != nil {
		if err := r.src.Close(); err != nil {
			return fmt.Errorf("arffreader: BindSource: %w", err)
		}
		r.src, r.scan = nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("arffreader: BindSource: %w", err)
	}
	r.src = f
	r.scan = newLineScanner(f)
	for r.scan.Scan() {
		s := strings.TrimSpace(r.scan.Text())
		if s == "" || strings.HasPrefix(s, commentMarker) {
			continue
		}
		if strings.EqualFold(s, dataMarker) {
			break
		}
	}

	return nil
}

// NextRecord returns the next data row as a dense token array of length
// exactly AttrCount, or io.EOF at end of stream. Sparse rows are
// expanded into full "0"/"1" arrays; dense rows tolerate length
// mismatches by zero-padding/clipping.
func (r *Reader) NextRecord() ([]string, error) {
	if r.scan == nil {
		return nil, fmt.Errorf("arffreader: NextRecord: %w", dataset.ErrNotBound)
	}

	for r.scan.Scan() {
		s := strings.TrimSpace(r.scan.Text())
		if s == "" || strings.HasPrefix(s, commentMarker) {
			continue
		}

		if strings.HasPrefix(s, sparseOpen) {
			dense := zeroRecord(r.attrCount)
			for idx, val := range parseSparsePairs(s) {
				if idx >= 0 && idx < r.attrCount && isOne(val) {
					dense[idx] = oneSymbol
				}
			}

			return dense, nil
		}

		toks := strings.Split(s, string(r.opts.Delimiter()))
		if len(toks) == r.attrCount {
			return toks, nil
		}

		// Tolerate length mismatch by padding/clipping.
		dense := zeroRecord(r.attrCount)
		upto := min(len(toks), r.attrCount)
		for i := 0; i < upto; i++ {
			dense[i] = strings.TrimSpace(toks[i])
		}

		return dense, nil
	}
	if err := r.scan.Err(); err != nil {
		return nil, fmt.Errorf("arffreader: NextRecord: %w", err)
	}

	return nil, io.EOF
}

// Close releases the bound stream handle, if any.
func (r *Reader) Close() error {
	if r.src == nil {
		return nil
	}
	err := r.src.Close()
	r.src, r.scan = nil, nil
	if err != nil {
		return fmt.Errorf("arffreader: Close: %w", err)
	}

	return nil
}

// Attributes returns the catalog built by the last FetchInfo, in dense
// id order.
func (r *Reader) Attributes() []*dataset.Attribute { return r.attrs }

// AttrCount is the fixed total attribute count.
func (r *Reader) AttrCount() int { return r.attrCount }

// TargetAttrCount is always zero: pure pattern mining, no prediction
// target.
func (r *Reader) TargetAttrCount() int { return 0 }

// PredictAttrCount equals AttrCount (all attributes are predictors).
func (r *Reader) PredictAttrCount() int { return r.attrCount }

// RowCount is the number of non-blank, non-comment records seen by
// FetchInfo.
func (r *Reader) RowCount() int { return r.rowCount }

// MinSupCount is the frozen absolute minimum support count.
func (r *Reader) MinSupCount() int { return r.minSupCount }

// ---------- helpers ----------

// newLineScanner wraps f in a line scanner with an enlarged token cap;
// sparse rows over wide matrices can be long.
func newLineScanner(f *os.File) *bufio.Scanner {
	scan := bufio.NewScanner(f)
	scan.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	return scan
}

// hasFoldPrefix reports whether s starts with prefix, case-insensitively.
func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// isOne reports whether a token counts as a presence mark: "1", "1.0",
// or "true" in any case. Everything else is structural absence.
func isOne(v string) bool {
	v = strings.TrimSpace(v)

	return v == "1" || v == "1.0" || strings.EqualFold(v, "true")
}

// parseAttrName extracts the attribute name from the remainder of an
// @attribute declaration: the first quoted ('name' or "name") or
// space-delimited token. Very tolerant; falls back to a fixed name.
func parseAttrName(rest string) string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return fallbackAttrName
	}
	if q := rest[0]; q == '\'' || q == '"' {
		if j := strings.IndexByte(rest[1:], q); j > 0 {
			return rest[1 : 1+j]
		}
	}
	if sp := strings.IndexByte(rest, ' '); sp > 0 {
		return strings.TrimSpace(rest[:sp])
	}

	return rest
}

// parseSparsePairs parses a bracketed sparse row in either pair
// convention — "{i 1, j 1}" or "{i:1, j:1}" — normalizing to one form
// first. Non-numeric indices are dropped silently.
func parseSparsePairs(s string) map[int]string {
	pairs := make(map[int]string)

	inside := s
	if strings.HasPrefix(inside, sparseOpen) && strings.HasSuffix(inside, "}") {
		inside = inside[1 : len(inside)-1]
	}
	if strings.TrimSpace(inside) == "" {
		return pairs
	}

	for _, seg := range strings.Split(inside, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		iv := strings.Fields(strings.ReplaceAll(seg, ":", " ")) // "i:1" -> "i 1"
		if len(iv) < 2 {
			continue
		}
		idx, err := strconv.Atoi(iv[0])
		if err != nil {
			continue
		}
		pairs[idx] = iv[1]
	}

	return pairs
}

// zeroRecord allocates a dense record of width n filled with "0".
func zeroRecord(n int) []string {
	rec := make([]string, n)
	for i := range rec {
		rec[i] = zeroSymbol
	}

	return rec
}
