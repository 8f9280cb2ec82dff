package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSampleFormat(t *testing.T) {
	cases := []struct {
		dtype string
		want  SampleFormat
		size  int
	}{
		{"float32", Float32, 4},
		{"int32", Int32, 4},
		{"int16", Int16, 2},
		{"int8", Int8, 1},
		{"uint8", UInt8, 1},
	}

	for _, tc := range cases {
		t.Run(tc.dtype, func(t *testing.T) {
			got, err := ParseSampleFormat(tc.dtype, true)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Interleaved())
			assert.Equal(t, tc.size, got.Size())

			planar, err := ParseSampleFormat(tc.dtype, false)
			require.NoError(t, err)
			assert.Equal(t, tc.want|NonInterleaved, planar)
			assert.False(t, planar.Interleaved())
			assert.Equal(t, tc.want, planar.Base())
			assert.Equal(t, tc.size, planar.Size())
		})
	}
}

func TestParseSampleFormatEncodingsDistinct(t *testing.T) {
	seen := make(map[SampleFormat]string)
	for _, dtype := range []string{"float32", "int32", "int16", "int8", "uint8"} {
		for _, interleaved := range []bool{true, false} {
			f, err := ParseSampleFormat(dtype, interleaved)
			require.NoError(t, err)
			prev, dup := seen[f]
			require.False(t, dup, "encoding %#x shared by %q and %q", uint32(f), prev, dtype)
			seen[f] = dtype
		}
	}
}

func TestParseSampleFormatRejectsUnknown(t *testing.T) {
	for _, dtype := range []string{"", "float64", "int24", "complex64", "FLOAT32"} {
		f, err := ParseSampleFormat(dtype, true)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "dtype %q", dtype)
		assert.Zero(t, f, "dtype %q must not leave a format set", dtype)
	}
}

func TestSampleFormatString(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "int16,noninterleaved", (Int16 | NonInterleaved).String())
	assert.Equal(t, 0, SampleFormat(0x40).Size())
}
