package csvreader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/Leo890106/P3C/dataset"
)

const (
	// bomMark is the UTF-8 byte-order mark some exporters prepend.
	bomMark = "\uFEFF"

	// sampleRowLimit caps how many data rows the statistics scan logs.
	sampleRowLimit = 3

	// maxLineBytes bounds a single source line during scanning.
	maxLineBytes = 1 << 20
)

// Reader is the delimited-text adapter. The zero value is not usable;
// construct with New. Not safe for concurrent use: the statistics pass
// and the streaming pass are strictly sequential scans.
type Reader struct {
	opts dataset.Options

	attrs        []*dataset.Attribute
	attrCount    int
	targetCount  int
	predictCount int
	rowCount     int
	minSupCount  int

	src  *os.File
	scan *bufio.Scanner
}

// compile-time contract check
var _ dataset.Reader = (*Reader)(nil)

// New builds a delimited-text adapter with the given options.
func New(opts ...dataset.Option) *Reader {
	return &Reader{opts: dataset.NewOptions(opts...)}
}

// Format reports FormatCSV.
func (r *Reader) Format() dataset.Format { return dataset.FormatCSV }

// FetchInfo runs the statistics computation: one full scan that parses
// the header into the attribute catalog, increments each attribute's
// value→Selector frequency for every non-null token, and freezes the
// derived counters. The catalog is replaced only on success.
func (r *Reader) FetchInfo(path string, targetAttrCount int, supportThreshold float64) error {
	if dataset.DetectFormat(path) != dataset.FormatCSV {
		return fmt.Errorf("csvreader: FetchInfo(%q): %w", path, dataset.ErrFormatMismatch)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("csvreader: FetchInfo: %w", err)
	}
	defer f.Close()

	scan := newLineScanner(f)
	header, ok := firstDataLine(scan)
	if !ok {
		if err = scan.Err(); err != nil {
			return fmt.Errorf("csvreader: FetchInfo: %w", err)
		}

		return fmt.Errorf("csvreader: FetchInfo(%q): %w", path, dataset.ErrEmptySource)
	}

	// Header supplies attribute names positionally; blank names are
	// synthesized from the column index.
	cols := splitQuoted(header, r.opts.Delimiter())
	attrs := make([]*dataset.Attribute, 0, len(cols))
	for id, name := range cols {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("col%d", id)
		}
		attrs = append(attrs, dataset.NewAttribute(id, name))
	}
	attrCount := len(attrs)

	log := r.opts.Logger()
	rows, samples := 0, 0
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		if samples < sampleRowLimit {
			log.Debug("csv sample row", "row", line)
			samples++
		}

		toks := alignWidth(splitQuoted(line, r.opts.Delimiter()), attrCount)
		rows++
		for i, tok := range toks {
			v := normalizeToken(tok)
			if v == dataset.NullSymbol {
				continue
			}
			attrs[i].Observe(v)
		}
	}
	if err = scan.Err(); err != nil {
		return fmt.Errorf("csvreader: FetchInfo: %w", err)
	}
	log.Info("csv statistics scan complete", "attrs", attrCount, "rows", rows)

	r.attrs = attrs
	r.attrCount = attrCount
	r.targetCount = targetAttrCount
	r.predictCount = max(0, attrCount-targetAttrCount)
	r.rowCount = rows
	r.minSupCount = minSupport(rows, supportThreshold)

	return nil
}

// BindSource opens (or reopens, closing any prior handle) a stream
// positioned immediately after the header line, ready for sequential
// NextRecord calls. Idempotent.
func (r *Reader) BindSource(path string) error {
	if dataset.DetectFormat(path) != dataset.FormatCSV {
		return fmt.Errorf("csvreader: BindSource(%q): %w", path, dataset.ErrFormatMismatch)
	}
	if r.src != nil {
		if err := r.src.Close(); err != nil {
			return fmt.Errorf("csvreader: BindSource: %w", err)
		}
		r.src, r.scan = nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("csvreader: BindSource: %w", err)
	}
	r.src = f
	r.scan = newLineScanner(f)
	firstDataLine(r.scan) // discard header row

	return nil
}

// NextRecord returns the next data row as a normalized token array of
// length exactly AttrCount, or io.EOF at end of stream. Short rows are
// padded with "?", long rows truncated; blank lines are skipped.
func (r *Reader) NextRecord() ([]string, error) {
	if r.scan == nil {
		return nil, fmt.Errorf("csvreader: NextRecord: %w", dataset.ErrNotBound)
	}

	for r.scan.Scan() {
		line := strings.TrimSpace(r.scan.Text())
		if line == "" {
			continue
		}

		toks := alignWidth(splitQuoted(line, r.opts.Delimiter()), r.attrCount)
		rec := make([]string, r.attrCount)
		for i, tok := range toks {
			rec[i] = normalizeToken(tok)
		}

		return rec, nil
	}
	if err := r.scan.Err(); err != nil {
		return nil, fmt.Errorf("csvreader: NextRecord: %w", err)
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
		return fmt.Errorf("csvreader: Close: %w", err)
	}

	return nil
}

// Attributes returns the catalog built by the last FetchInfo, in dense
// id order.
func (r *Reader) Attributes() []*dataset.Attribute { return r.attrs }

// AttrCount is the fixed total attribute count.
func (r *Reader) AttrCount() int { return r.attrCount }

// TargetAttrCount is the declared target attribute count.
func (r *Reader) TargetAttrCount() int { return r.targetCount }

// PredictAttrCount is AttrCount−TargetAttrCount, never negative.
func (r *Reader) PredictAttrCount() int { return r.predictCount }

// RowCount is the number of non-blank records seen by FetchInfo.
func (r *Reader) RowCount() int { return r.rowCount }

// MinSupCount is the frozen absolute minimum support count.
func (r *Reader) MinSupCount() int { return r.minSupCount }

// ---------- helpers ----------

// newLineScanner wraps f in a line scanner with an enlarged token cap.
func newLineScanner(f *os.File) *bufio.Scanner {
	scan := bufio.NewScanner(f)
	scan.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	return scan
}

// firstDataLine returns the first non-blank line, stripping a leading
// byte-order mark if present.
func firstDataLine(scan *bufio.Scanner) (string, bool) {
	for scan.Scan() {
		line := strings.TrimPrefix(scan.Text(), bomMark)
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}

	return "", false
}

// splitQuoted is the quote-aware split: the delimiter does not split
// inside double-quoted spans, a doubled quote decodes to one literal
// quote, and an unterminated quote consumes to end of line (best-effort,
// not fatal).
func splitQuoted(line string, delim rune) []string {
	var out []string
	var cur strings.Builder

	inQuotes := false
	rs := []rune(line)
	for i := 0; i < len(rs); i++ {
		switch ch := rs[i]; {
		case ch == '"':
			if inQuotes && i+1 < len(rs) && rs[i+1] == '"' {
				cur.WriteRune('"') // escaped quote
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == delim && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}

	return append(out, cur.String())
}

// normalizeToken trims v, maps empty or "NA" (any case) to the null
// symbol, and strips surrounding double quotes (decoding doubled quotes).
func normalizeToken(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "NA") {
		return dataset.NullSymbol
	}
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = strings.TrimSpace(strings.ReplaceAll(v[1:len(v)-1], `""`, `"`))
		if v == "" {
			return dataset.NullSymbol
		}
	}

	return v
}

// alignWidth right-pads toks with the null symbol or truncates it so
// that len(result) == width. Silent by contract.
func alignWidth(toks []string, width int) []string {
	for len(toks) < width {
		toks = append(toks, dataset.NullSymbol)
	}

	return toks[:width]
}

// minSupport derives the absolute minimum support count:
// ceil(rows × threshold), floored to at least 1 when threshold > 0,
// else 0.
func minSupport(rows int, threshold float64) int {
	if threshold <= 0 {
		return 0
	}
	n := int(math.Ceil(float64(rows) * threshold))
	if n < 1 {
		n = 1
	}

	return n
}
