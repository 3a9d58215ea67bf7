package robotbyte

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jeffpalmeri/abi/internal/gigahertz"
	"github.com/jeffpalmeri/abi/internal/header"
	"github.com/jeffpalmeri/abi/internal/mask"
)

// Record is a decoded robot byte together with its table throughput.
type Record struct {
	Raw    byte
	Header header.Header
	// Throughput is in gigahertz.
	Throughput int
}

// DecodeByte decodes b and resolves its throughput.
func DecodeByte(b byte) Record {
	h := header.Decode(b)
	return Record{
		Raw:        b,
		Header:     h,
		Throughput: gigahertz.MustLookup(int(h.Code), int(h.Version)),
	}
}

// String renders the record the way the spec sheet writes robots, e.g.
// "11111111 == 255 == male, version 4, active, 235550 gigahertz".
func (r Record) String() string {
	s, err := r.FieldSet().Describe()
	if err != nil {
		return fmt.Sprintf("%08b (%v)", r.Raw, err)
	}
	return s
}

// Fields flattens the record into a dynamic field map.
func (r Record) Fields() map[string]any {
	return map[string]any{
		"raw":            int(r.Raw),
		"raw_hex":        fmt.Sprintf("0x%02X", r.Raw),
		"gender":         r.Header.Gender.String(),
		"version":        int(r.Header.Version),
		"version_number": r.Header.Version.Number(),
		"active":         r.Header.Active,
		"code":           int(r.Header.Code),
		"throughput_ghz": r.Throughput,
	}
}

// Result captures the outcome of Analyze.
type Result struct {
	RawHex    string
	ByteCount int
	Masked    bool
	Records   []Record
}

// String renders a JSON representation of the result.
func (r Result) String() string {
	records := make([]map[string]any, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, rec.Fields())
	}
	summary := map[string]any{
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
		"records":    records,
	}
	if r.Masked {
		summary["masked"] = true
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("bytes:%d raw:%s (marshal error: %v)", r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// Text renders one line per record.
func (r Result) Text() string {
	lines := make([]string, 0, len(r.Records))
	for _, rec := range r.Records {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n")
}

// Analyze decodes every byte of a hex string.
func Analyze(ctx context.Context, raw string) (Result, error) {
	return AnalyzeWithOptions(ctx, raw, AnalyzeOptions{})
}

// AnalyzeWithOptions decodes every byte of a hex string with custom options.
// Bytes are independent records; a mask key, if set, is removed from each
// byte before decoding.
func AnalyzeWithOptions(ctx context.Context, raw string, opts AnalyzeOptions) (Result, error) {
	ctx, err := opts.toInternal(ctx)
	if err != nil {
		return Result{}, err
	}
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	key, masked := maskKey(ctx)
	if masked {
		data = mask.ApplyAll(data, key)
	}

	result := Result{
		RawHex:    strings.ToUpper(cleanHex(raw)),
		ByteCount: len(data),
		Masked:    masked,
		Records:   make([]Record, 0, len(data)),
	}
	for _, b := range data {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		result.Records = append(result.Records, DecodeByte(b))
	}
	return result, nil
}

var errEmptyInput = errors.New("no hex bytes in input")

func decodeHex(input string) ([]byte, error) {
	clean := cleanHex(input)
	if clean == "" {
		return nil, errEmptyInput
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex input must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

// cleanHex drops separators and any 0x prefix in front of each group.
func cleanHex(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, group := range strings.FieldsFunc(s, isSeparator) {
		if len(group) > 2 && (strings.HasPrefix(group, "0x") || strings.HasPrefix(group, "0X")) {
			group = group[2:]
		}
		builder.WriteString(group)
	}
	return builder.String()
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '|' || r == '_' || r == ','
}
