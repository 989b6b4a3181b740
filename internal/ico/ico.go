// Package ico assembles the single-frame 16×16 favicon.ico by hand and
// parses ICO containers back into their fixed-layout records.
//
// All multi-byte fields are little-endian.
package ico

import (
	"encoding/binary"
	"fmt"
)

const (
	HeaderSize     = 6
	DirEntrySize   = 16
	InfoHeaderSize = 40

	// TypeIcon is the container type value for .ico (2 is .cur).
	TypeIcon = 1
)

// Header is the ICONDIR record at the start of the file.
type Header struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// DirEntry is one ICONDIRENTRY. Width and Height of 0 mean 256.
type DirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

// BitmapInfoHeader is the 40-byte BITMAPINFOHEADER that precedes DIB
// pixel data inside an icon entry. Height counts the XOR and AND masks
// together, so it is twice the visible height.
type BitmapInfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

func (h Header) appendTo(b []byte) []byte {
	b = binary.LittleEndian.AppendUint16(b, h.Reserved)
	b = binary.LittleEndian.AppendUint16(b, h.Type)
	return binary.LittleEndian.AppendUint16(b, h.Count)
}

func (e DirEntry) appendTo(b []byte) []byte {
	b = append(b, e.Width, e.Height, e.ColorCount, e.Reserved)
	b = binary.LittleEndian.AppendUint16(b, e.Planes)
	b = binary.LittleEndian.AppendUint16(b, e.BitCount)
	b = binary.LittleEndian.AppendUint32(b, e.BytesInRes)
	return binary.LittleEndian.AppendUint32(b, e.ImageOffset)
}

func (h BitmapInfoHeader) appendTo(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, h.Size)
	b = binary.LittleEndian.AppendUint32(b, uint32(h.Width))
	b = binary.LittleEndian.AppendUint32(b, uint32(h.Height))
	b = binary.LittleEndian.AppendUint16(b, h.Planes)
	b = binary.LittleEndian.AppendUint16(b, h.BitCount)
	b = binary.LittleEndian.AppendUint32(b, h.Compression)
	b = binary.LittleEndian.AppendUint32(b, h.SizeImage)
	b = binary.LittleEndian.AppendUint32(b, uint32(h.XPixelsPerM))
	b = binary.LittleEndian.AppendUint32(b, uint32(h.YPixelsPerM))
	b = binary.LittleEndian.AppendUint32(b, h.ColorsUsed)
	return binary.LittleEndian.AppendUint32(b, h.ColorsImportant)
}

// Container is a parsed ICO file: its header and directory.
type Container struct {
	Header  Header
	Entries []DirEntry
}

// Parse decodes the header and directory of an ICO file and checks that
// every entry's data lies inside data.
func Parse(data []byte) (Container, error) {
	if len(data) < HeaderSize {
		return Container{}, fmt.Errorf("ico: file too short (%d bytes)", len(data))
	}
	var c Container
	c.Header = Header{
		Reserved: binary.LittleEndian.Uint16(data[0:2]),
		Type:     binary.LittleEndian.Uint16(data[2:4]),
		Count:    binary.LittleEndian.Uint16(data[4:6]),
	}
	if c.Header.Reserved != 0 || c.Header.Type != TypeIcon {
		return Container{}, fmt.Errorf("ico: not an icon file (reserved=%d type=%d)", c.Header.Reserved, c.Header.Type)
	}
	if c.Header.Count == 0 {
		return Container{}, fmt.Errorf("ico: no images")
	}
	dirEnd := HeaderSize + int(c.Header.Count)*DirEntrySize
	if len(data) < dirEnd {
		return Container{}, fmt.Errorf("ico: directory truncated (%d entries, %d bytes)", c.Header.Count, len(data))
	}

	c.Entries = make([]DirEntry, c.Header.Count)
	for i := range c.Entries {
		off := HeaderSize + i*DirEntrySize
		e := DirEntry{
			Width:       data[off],
			Height:      data[off+1],
			ColorCount:  data[off+2],
			Reserved:    data[off+3],
			Planes:      binary.LittleEndian.Uint16(data[off+4 : off+6]),
			BitCount:    binary.LittleEndian.Uint16(data[off+6 : off+8]),
			BytesInRes:  binary.LittleEndian.Uint32(data[off+8 : off+12]),
			ImageOffset: binary.LittleEndian.Uint32(data[off+12 : off+16]),
		}
		end := uint64(e.ImageOffset) + uint64(e.BytesInRes)
		if int(e.ImageOffset) < dirEnd || end > uint64(len(data)) {
			return Container{}, fmt.Errorf("ico: entry %d data [%d,%d) outside file of %d bytes", i, e.ImageOffset, end, len(data))
		}
		c.Entries[i] = e
	}
	return c, nil
}

// ParseBitmapInfo decodes the BITMAPINFOHEADER at the start of an entry payload.
func ParseBitmapInfo(payload []byte) (BitmapInfoHeader, error) {
	if len(payload) < InfoHeaderSize {
		return BitmapInfoHeader{}, fmt.Errorf("ico: bitmap header too short (%d bytes)", len(payload))
	}
	le := binary.LittleEndian
	h := BitmapInfoHeader{
		Size:            le.Uint32(payload[0:4]),
		Width:           int32(le.Uint32(payload[4:8])),
		Height:          int32(le.Uint32(payload[8:12])),
		Planes:          le.Uint16(payload[12:14]),
		BitCount:        le.Uint16(payload[14:16]),
		Compression:     le.Uint32(payload[16:20]),
		SizeImage:       le.Uint32(payload[20:24]),
		XPixelsPerM:     int32(le.Uint32(payload[24:28])),
		YPixelsPerM:     int32(le.Uint32(payload[28:32])),
		ColorsUsed:      le.Uint32(payload[32:36]),
		ColorsImportant: le.Uint32(payload[36:40]),
	}
	if h.Size != InfoHeaderSize {
		return BitmapInfoHeader{}, fmt.Errorf("ico: unexpected bitmap header size %d", h.Size)
	}
	return h, nil
}

// Dimension returns the pixel size encoded by an entry width/height byte.
func Dimension(b uint8) int {
	if b == 0 {
		return 256
	}
	return int(b)
}
