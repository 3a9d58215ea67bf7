package robotbyte

import (
	"context"

	internalopts "github.com/jeffpalmeri/abi/internal/options"
)

// AnalyzeOptions configures parsing.
type AnalyzeOptions struct {
	// MaskHex is an optional one-byte XOR key (2 hex digits) that was applied
	// to the input bytes.
	MaskHex string
}

func (opts AnalyzeOptions) toInternal(ctx context.Context) (context.Context, error) {
	key, ok, err := internalopts.ParseMaskHex(opts.MaskHex)
	if err != nil {
		return ctx, err
	}
	if ok {
		ctx = internalopts.WithMaskKey(ctx, key)
	}
	return ctx, nil
}

func maskKey(ctx context.Context) (byte, bool) {
	return internalopts.MaskKey(ctx)
}
