package voxel

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Snapshot payload encodings. Each cell reduces to a 5-bit value: the
// material nibble plus a solidity bit, so carved-but-tinted cells survive
// a round trip.
const (
	encDense  = 0 // 5 bpp bitstream in Morton rank order
	encSparse = 1 // uvarint index + value byte per nonzero cell

	// encCompressed flags a zstd-compressed payload in the encoding byte.
	encCompressed = 0x80

	cellBits     = 5
	cellSolidBit = 0x10
)

type encoded struct {
	encoding uint8
	payload  []byte
}

// cellValue folds one cell's state into its 5-bit stream value.
func (g *Grid) cellValue(index int) uint8 {
	v := g.material[index]
	if g.solid[index] {
		v |= cellSolidBit
	}
	return v
}

func (g *Grid) applyCellValue(index int, v uint8) {
	g.solid[index] = v&cellSolidBit != 0
	g.material[index] = v & MaterialMask
}

func encodeDense(g *Grid) []byte {
	bw := newBitWriter()
	for _, lin := range mortonOrder(g.SizeX, g.SizeY, g.SizeZ) {
		bw.writeBits(uint64(g.cellValue(lin)), cellBits)
	}
	return bw.bytes()
}

func decodeDense(g *Grid, payload []byte) error {
	br := newBitReader(payload)
	for _, lin := range mortonOrder(g.SizeX, g.SizeY, g.SizeZ) {
		v, err := br.readBits(cellBits)
		if err != nil {
			return err
		}
		g.applyCellValue(lin, uint8(v))
	}
	return nil
}

func encodeSparse(g *Grid) []byte {
	count := uint32(0)
	for i := range g.solid {
		if g.cellValue(i) != 0 {
			count++
		}
	}
	out := writeUVarint(nil, count)
	for i := range g.solid {
		if v := g.cellValue(i); v != 0 {
			out = writeUVarint(out, uint32(i))
			out = append(out, v)
		}
	}
	return out
}

func decodeSparse(g *Grid, payload []byte) error {
	pos := 0
	count, err := readUVarint(payload, &pos)
	if err != nil {
		return err
	}
	total := g.VoxelCount()
	for n := uint32(0); n < count; n++ {
		idx, err := readUVarint(payload, &pos)
		if err != nil {
			return err
		}
		if int(idx) >= total {
			return fmt.Errorf("sparse cell index out of range: %d", idx)
		}
		if pos >= len(payload) {
			return fmt.Errorf("sparse payload truncated at cell %d", n)
		}
		g.applyCellValue(int(idx), payload[pos])
		pos++
	}
	return nil
}

func zstdCompress(b []byte) []byte {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil
	}
	defer enc.Close()
	return enc.EncodeAll(b, nil)
}

func zstdDecompress(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(b, nil)
}

// bestEncoding tries every payload encoding, raw and zstd-compressed, and
// keeps whichever comes out smallest.
func bestEncoding(g *Grid) encoded {
	candidates := []encoded{
		{encoding: encDense, payload: encodeDense(g)},
		{encoding: encSparse, payload: encodeSparse(g)},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.payload) < len(best.payload) {
			best = c
		}
	}
	for _, c := range candidates {
		if zb := zstdCompress(c.payload); zb != nil && len(zb) < len(best.payload) {
			best = encoded{encoding: c.encoding | encCompressed, payload: zb}
		}
	}
	return best
}

// decodePayload applies a payload with the given encoding byte to a grid
// already sized to the snapshot dimensions.
func decodePayload(g *Grid, encByte uint8, payload []byte) error {
	if encByte&encCompressed != 0 {
		var err error
		payload, err = zstdDecompress(payload)
		if err != nil {
			return err
		}
	}
	switch encByte &^ encCompressed {
	case encDense:
		return decodeDense(g, payload)
	case encSparse:
		return decodeSparse(g, payload)
	default:
		return fmt.Errorf("unknown snapshot encoding: %d", encByte)
	}
}
