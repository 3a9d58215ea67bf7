package options

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMaskHex(t *testing.T) {
	cases := []struct {
		in      string
		want    byte
		present bool
		wantErr bool
	}{
		{in: "", present: false},
		{in: "   ", present: false},
		{in: "ff", want: 0xFF, present: true},
		{in: "0x5A", want: 0x5A, present: true},
		{in: " 0 1 ", want: 0x01, present: true},
		{in: "123", wantErr: true},
		{in: "zz", wantErr: true},
	}
	for _, tc := range cases {
		got, ok, err := ParseMaskHex(tc.in)
		if tc.wantErr {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.present, ok, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestMaskKeyContext(t *testing.T) {
	ctx := context.Background()
	_, ok := MaskKey(ctx)
	require.False(t, ok)

	ctx = WithMaskKey(ctx, 0x00)
	key, ok := MaskKey(ctx)
	require.True(t, ok)
	require.Equal(t, byte(0x00), key)
}
