package imaging

import (
	"bytes"
	"encoding/binary"
	"io"
)

// metadataVersion identifies the header layout below; bump it if the header
// shape ever changes so old clients fail fast instead of misreading it.
const metadataVersion = 1

const headerSize = 44 // 11 little-endian int32 fields

// WriteImageBytes serializes img as the Alpaca ImageBytes binary transport:
// a fixed 44-byte little-endian header (metadata version, error number,
// client/server transaction IDs, data start offset, image element type,
// transmission element type, rank, three dimensions) followed by the pixel
// data in ASCOM (x, y, [c]) order, per §4.8.6.
//
// The header always carries clientTransactionID; callers pass 0 when the
// client supplied none, and the header has no field to tell that apart
// from a client-supplied 0.
func WriteImageBytes(w io.Writer, clientTransactionID uint32, serverTransactionID uint32, errorNumber int32, img *Image) error {
	var buf bytes.Buffer
	buf.Grow(headerSize + len(img.Data)*8)

	dims := img.Dims()
	header := [11]int32{
		metadataVersion,
		errorNumber,
		int32(clientTransactionID),
		int32(serverTransactionID),
		headerSize,
		int32(img.ElementType),
		int32(img.ElementType), // transmission type matches native type; no downcast transport is implemented
		int32(img.Rank()),
		int32(dims[0]),
		int32(dims[1]),
		int32(dims[2]),
	}
	if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
		return err
	}

	if err := writePixels(&buf, img); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// writePixels emits the pixel payload in ASCOM (x, y, c) order, using the
// element width implied by img.ElementType.
func writePixels(buf *bytes.Buffer, img *Image) error {
	channels := img.Channels
	if channels <= 0 {
		channels = 1
	}
	for x := 0; x < img.Width; x++ {
		for y := 0; y < img.Height; y++ {
			for c := 0; c < channels; c++ {
				v := img.at(x, y, c)
				switch img.ElementType {
				case Int16:
					if err := binary.Write(buf, binary.LittleEndian, int16(v)); err != nil {
						return err
					}
				case Int32:
					if err := binary.Write(buf, binary.LittleEndian, int32(v)); err != nil {
						return err
					}
				default:
					if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
