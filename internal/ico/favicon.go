package ico

import (
	"image"
	"image/color"
)

// Size is the edge length of the assembled favicon.
const Size = 16

var (
	transparent = color.NRGBA{0, 0, 0, 0}
	brandBlue   = color.NRGBA{0, 123, 255, 255}
	white       = color.NRGBA{255, 255, 255, 255}
	paper       = color.NRGBA{255, 255, 255, 200}
)

// Mask returns the 16×16 favicon artwork: a blue disc with a white document
// carrying three blue text lines. The result is identical on every call.
func Mask() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			img.SetNRGBA(x, y, pixelAt(x, y))
		}
	}
	return img
}

func pixelAt(x, y int) color.NRGBA {
	dx, dy := x-8, y-8
	if dx*dx+dy*dy > 64 {
		return transparent
	}
	if x < 4 || x > 11 || y < 3 || y > 11 {
		return brandBlue
	}
	if y == 3 || y == 11 || x == 4 || x == 11 {
		return white
	}
	if x >= 5 && x <= 10 && (y == 5 || y == 7 || y == 9) {
		return brandBlue
	}
	return paper
}

// Produce builds the complete favicon.ico bytes: header, one directory
// entry and a 32-bit DIB payload with rows stored bottom-up.
func Produce() []byte {
	header := Header{Type: TypeIcon, Count: 1}
	entry := DirEntry{
		Width:       Size,
		Height:      Size,
		Planes:      1,
		BitCount:    32,
		ImageOffset: HeaderSize + DirEntrySize,
	}

	info := BitmapInfoHeader{
		Size:     InfoHeaderSize,
		Width:    Size,
		Height:   2 * Size,
		Planes:   1,
		BitCount: 32,
	}

	img := Mask()
	payload := info.appendTo(make([]byte, 0, InfoHeaderSize+len(img.Pix)))
	for y := Size - 1; y >= 0; y-- {
		payload = append(payload, img.Pix[y*img.Stride:y*img.Stride+Size*4]...)
	}

	entry.BytesInRes = uint32(len(payload))

	out := header.appendTo(make([]byte, 0, HeaderSize+DirEntrySize+len(payload)))
	out = entry.appendTo(out)
	return append(out, payload...)
}
