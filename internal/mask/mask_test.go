package mask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyTwiceRestores(t *testing.T) {
	for key := 0; key <= 0xFF; key++ {
		for b := 0; b <= 0xFF; b++ {
			require.Equal(t, byte(b), Apply(Apply(byte(b), byte(key)), byte(key)))
		}
	}
}

func TestApplyAllFlipsBits(t *testing.T) {
	in := []byte{0xFF, 0x92, 0x18}
	out := ApplyAll(in, 0xFF)
	require.Equal(t, []byte{0x00, 0x6D, 0xE7}, out)
	require.Equal(t, []byte{0xFF, 0x92, 0x18}, in, "input must not be modified")
	require.Equal(t, in, ApplyAll(in, 0))
}
