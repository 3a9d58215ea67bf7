package options

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

type contextKey struct{}

// WithMaskKey stores the XOR mask key inside the context.
func WithMaskKey(ctx context.Context, key byte) context.Context {
	return context.WithValue(ctx, contextKey{}, key)
}

// MaskKey retrieves the XOR mask key from context if present.
func MaskKey(ctx context.Context) (byte, bool) {
	if v := ctx.Value(contextKey{}); v != nil {
		if key, ok := v.(byte); ok {
			return key, true
		}
	}
	return 0, false
}

// ParseMaskHex validates and decodes a 2-hex-digit mask key. An empty string
// means no key was supplied.
func ParseMaskHex(input string) (byte, bool, error) {
	if strings.TrimSpace(input) == "" {
		return 0, false, nil
	}
	clean := strings.ToUpper(stripWhitespace(input))
	clean = strings.TrimPrefix(clean, "0X")
	if len(clean) != 2 {
		return 0, false, fmt.Errorf("mask key must be 2 hex digits (1 byte), got %d", len(clean))
	}
	dst := make([]byte, 1)
	if _, err := hex.Decode(dst, []byte(clean)); err != nil {
		return 0, false, fmt.Errorf("invalid mask key hex: %w", err)
	}
	return dst[0], true, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
