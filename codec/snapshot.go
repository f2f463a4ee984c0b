package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/setanarut/rasterconv"
)

const snapshotMagic = "RCZ1"

const (
	sampleByte uint8 = iota
	sampleUnit
)

const (
	flagPalette uint8 = 1 << iota
	flagTransparency
)

// snapshotHeader follows the magic inside the compressed stream.
type snapshotHeader struct {
	Width, Height uint32
	Layout        uint8
	Sample        uint8
	Flags         uint8
	PaletteLen    uint16
	TrnsLen       uint16
	PixLen        uint32
}

// WriteSnapshot writes img verbatim, zstd compressed. Unit samples are stored
// as float32 bits so reading the snapshot back is lossless.
func WriteSnapshot[T rasterconv.Sample](w io.Writer, img *rasterconv.Image[T]) error {
	if err := img.Validate(); err != nil {
		return err
	}
	pix := img.Pix
	if img.Layout == rasterconv.Indexed {
		n, err := sampleCount(uint32(img.Width), uint32(img.Height), img.Layout, img.Palette)
		if err != nil {
			return err
		}
		pix = pix[:n]
	}
	if _, err := io.WriteString(w, snapshotMagic); err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(enc)

	hdr := snapshotHeader{
		Width:      uint32(img.Width),
		Height:     uint32(img.Height),
		Layout:     uint8(img.Layout),
		PaletteLen: uint16(len(img.Palette)),
		TrnsLen:    uint16(len(img.Transparency)),
		PixLen:     uint32(len(pix)),
	}
	if rasterconv.IsUnit[T]() {
		hdr.Sample = sampleUnit
	}
	if img.Palette != nil {
		hdr.Flags |= flagPalette
	}
	if img.Transparency != nil {
		hdr.Flags |= flagTransparency
	}
	if err := binary.Write(bw, binary.BigEndian, hdr); err != nil {
		enc.Close()
		return err
	}
	bw.Write(img.Palette)
	bw.Write(img.Transparency)

	var buf [4]byte
	for _, v := range pix {
		switch v := any(v).(type) {
		case uint8:
			bw.WriteByte(v)
		case float32:
			binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
			bw.Write(buf[:])
		}
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadSnapshot reads an image written by WriteSnapshot and converts its
// samples to T.
func ReadSnapshot[T rasterconv.Sample](r io.Reader) (*rasterconv.Image[T], error) {
	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if string(magic) != snapshotMagic {
		return nil, ErrInvalidMagic
	}
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer dec.Close()

	var hdr snapshotHeader
	if err := binary.Read(dec, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrDecode, err)
	}
	layout := rasterconv.Layout(hdr.Layout)
	if !layout.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrDecode, &rasterconv.LayoutError{Op: "read snapshot", Layout: layout})
	}

	var palette, trns []uint8
	if hdr.Flags&flagPalette != 0 {
		palette = make([]uint8, hdr.PaletteLen)
		if _, err := io.ReadFull(dec, palette); err != nil {
			return nil, fmt.Errorf("%w: palette: %w", ErrDecode, err)
		}
	}
	if hdr.Flags&flagTransparency != 0 {
		trns = make([]uint8, hdr.TrnsLen)
		if _, err := io.ReadFull(dec, trns); err != nil {
			return nil, fmt.Errorf("%w: transparency: %w", ErrDecode, err)
		}
	}

	want, err := sampleCount(hdr.Width, hdr.Height, layout, palette)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if uint64(hdr.PixLen) != want {
		return nil, fmt.Errorf("%w: header claims %d samples, %dx%d %s needs %d",
			ErrDecode, hdr.PixLen, hdr.Width, hdr.Height, layout, want)
	}

	switch hdr.Sample {
	case sampleByte:
		pix := make([]uint8, hdr.PixLen)
		if _, err := io.ReadFull(dec, pix); err != nil {
			return nil, fmt.Errorf("%w: samples: %w", ErrDecode, err)
		}
		img := newRecord(hdr, layout, pix, palette, trns)
		return rasterconv.ConvertSamples[T](img), nil
	case sampleUnit:
		raw := make([]byte, 4*int(hdr.PixLen))
		if _, err := io.ReadFull(dec, raw); err != nil {
			return nil, fmt.Errorf("%w: samples: %w", ErrDecode, err)
		}
		pix := make([]float32, hdr.PixLen)
		for i := range pix {
			pix[i] = math.Float32frombits(binary.BigEndian.Uint32(raw[i*4:]))
		}
		img := newRecord(hdr, layout, pix, palette, trns)
		return rasterconv.ConvertSamples[T](img), nil
	}
	return nil, fmt.Errorf("%w: unknown sample kind %d", ErrDecode, hdr.Sample)
}

// sampleCount returns the number of samples a record of the given shape
// holds: width*height*channels for direct layouts, the packed row length
// times height for Indexed.
func sampleCount(width, height uint32, layout rasterconv.Layout, palette []uint8) (uint64, error) {
	pixels := uint64(width) * uint64(height)
	if pixels > math.MaxUint32 {
		return 0, fmt.Errorf("image too large: %dx%d", width, height)
	}
	if layout != rasterconv.Indexed {
		return pixels * uint64(layout.Channels()), nil
	}
	ppb, err := rasterconv.PixelsPerByte(len(palette) / 3)
	if err != nil {
		return 0, err
	}
	p := uint64(ppb)
	return (uint64(width) + p - 1) / p * uint64(height), nil
}

func newRecord[T rasterconv.Sample](hdr snapshotHeader, layout rasterconv.Layout, pix []T, palette, trns []uint8) *rasterconv.Image[T] {
	return &rasterconv.Image[T]{
		Width:        int(hdr.Width),
		Height:       int(hdr.Height),
		Layout:       layout,
		Pix:          pix,
		Palette:      palette,
		Transparency: trns,
	}
}
