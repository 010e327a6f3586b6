package imaging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWantsImageBytes(t *testing.T) {
	cases := map[string]bool{
		"":                                          false,
		"application/json":                          false,
		"application/imagebytes":                    true,
		"application/imagebytes;q=0.9":               true,
		"text/html, application/imagebytes; q=0.5":   true,
		"application/imagebytes+json":                false,
		"Application/ImageBytes":                     true,
		"application/json, */*;q=0.1":                false,
	}
	for header, want := range cases {
		assert.Equal(t, want, WantsImageBytes(header), "header %q", header)
	}
}

func TestASCOMArrayMonochromeAxisSwap(t *testing.T) {
	// 2x3 (width x height) single-channel image. Library-native data is
	// row-major (y, x): row 0 = [0,1], row 1 = [2,3], row 2 = [4,5].
	img := &Image{
		Width: 2, Height: 3, Channels: 1,
		ElementType: Int32,
		Data:        []float64{0, 1, 2, 3, 4, 5},
	}
	assert.Equal(t, 2, img.Rank())

	out := img.ASCOMArray().([][]any)
	require.Len(t, out, 2) // outer dimension is width (x)
	require.Len(t, out[0], 3)
	assert.Equal(t, int64(0), out[0][0])
	assert.Equal(t, int64(2), out[0][1])
	assert.Equal(t, int64(4), out[0][2])
	assert.Equal(t, int64(1), out[1][0])
	assert.Equal(t, int64(3), out[1][1])
	assert.Equal(t, int64(5), out[1][2])
}

func TestASCOMArrayColorRank3(t *testing.T) {
	img := &Image{Width: 1, Height: 1, Channels: 3, ElementType: Double, Data: []float64{1, 2, 3}}
	assert.Equal(t, 3, img.Rank())
	out := img.ASCOMArray().([][][]any)
	require.Len(t, out, 1)
	require.Len(t, out[0], 1)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, out[0][0])
}

func TestDims(t *testing.T) {
	mono := &Image{Width: 640, Height: 480, Channels: 1}
	assert.Equal(t, [3]int{640, 480, 0}, mono.Dims())

	color := &Image{Width: 640, Height: 480, Channels: 3}
	assert.Equal(t, [3]int{640, 480, 3}, color.Dims())
}

func TestWriteImageBytesHeaderAndPayloadSize(t *testing.T) {
	img := &Image{Width: 2, Height: 2, Channels: 1, ElementType: Int16, Data: []float64{1, 2, 3, 4}}
	var buf bytes.Buffer
	err := WriteImageBytes(&buf, 7, 42, 0, img)
	require.NoError(t, err)

	// header (44 bytes) + 4 pixels * 2 bytes (int16)
	assert.Equal(t, headerSize+8, buf.Len())

	header := buf.Bytes()[:headerSize]
	assert.Equal(t, byte(1), header[0]) // metadataVersion little-endian low byte
}
