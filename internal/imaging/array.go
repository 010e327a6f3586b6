package imaging

// ElementType is the ASCOM numeric code for a pixel element's native type,
// as reported in ImageArray's "Type" field and the ImageBytes header.
type ElementType int32

const (
	Int16  ElementType = 1
	Int32  ElementType = 2
	Double ElementType = 3
)

// Image is a decoded camera frame in the library-native, row-major
// (height, width, channels) layout. Channels is 1 for monochrome/Bayer
// sensors and 3 for color (non-Bayer) sensors, matching §4.8.5's rank rule.
type Image struct {
	Width, Height, Channels int
	ElementType             ElementType
	// Data holds Width*Height*Channels samples in row-major (y, x, c) order:
	// Data[y*Width*Channels + x*Channels + c].
	Data []float64
}

// Rank is 2 for a single-channel image, 3 for multi-channel, per §4.8.5.
func (img *Image) Rank() int {
	if img.Channels > 1 {
		return 3
	}
	return 2
}

func (img *Image) at(x, y, c int) float64 {
	return img.Data[y*img.Width*img.Channels+x*img.Channels+c]
}

// valueAt converts the raw sample to the JSON-appropriate Go value for this
// image's element type: whole numbers for the integer types, float64 for
// Double.
func (img *Image) valueAt(x, y, c int) any {
	v := img.at(x, y, c)
	switch img.ElementType {
	case Int16, Int32:
		return int64(v)
	default:
		return v
	}
}

// ASCOMArray produces the nested-array JSON value for ImageArray: axes
// reordered from the library's row-major (y, x, c) to ASCOM's
// (x, y, [c]) — a swap of the first two axes, not a reshape, per §4.8.5.
func (img *Image) ASCOMArray() any {
	if img.Channels <= 1 {
		out := make([][]any, img.Width)
		for x := 0; x < img.Width; x++ {
			col := make([]any, img.Height)
			for y := 0; y < img.Height; y++ {
				col[y] = img.valueAt(x, y, 0)
			}
			out[x] = col
		}
		return out
	}
	out := make([][][]any, img.Width)
	for x := 0; x < img.Width; x++ {
		col := make([][]any, img.Height)
		for y := 0; y < img.Height; y++ {
			px := make([]any, img.Channels)
			for c := 0; c < img.Channels; c++ {
				px[c] = img.valueAt(x, y, c)
			}
			col[y] = px
		}
		out[x] = col
	}
	return out
}

// Dims reports the ASCOM-ordered dimensions (width, height, channels-or-0)
// as used in both the ImageArray response metadata and the ImageBytes
// header's dim1/dim2/dim3 fields.
func (img *Image) Dims() [3]int {
	if img.Channels <= 1 {
		return [3]int{img.Width, img.Height, 0}
	}
	return [3]int{img.Width, img.Height, img.Channels}
}
