package voxel

import (
	"fmt"
	"strconv"
)

// Voxel records are the interchange text form: one record per solid
// voxel, concatenated. Grids fitting 16 per axis use the compact 4-nibble
// form x,y,z,material; anything larger uses 7 characters with two hex
// digits per coordinate plus the material nibble. A missing record means
// non-solid with material 0.

const hexDigits = "0123456789abcdef"

// compactRecords reports whether the grid fits the 4-nibble record form.
func (g *Grid) compactRecords() bool {
	return g.SizeX <= 16 && g.SizeY <= 16 && g.SizeZ <= 16
}

// EncodeRecords serializes every solid voxel in ascending index order.
func (g *Grid) EncodeRecords() string {
	compact := g.compactRecords()
	buf := make([]byte, 0, g.VoxelCount()/8)
	for i, solid := range g.solid {
		if !solid {
			continue
		}
		x, y, z := g.CoordsOf(i)
		m := g.material[i]
		if compact {
			buf = append(buf, hexDigits[x], hexDigits[y], hexDigits[z], hexDigits[m])
		} else {
			buf = append(buf, fmt.Sprintf("%02x%02x%02x%c", x, y, z, hexDigits[m])...)
		}
	}
	return string(buf)
}

// DecodeRecords applies a record string to the grid, marking each listed
// voxel solid with its material. Cells without a record are untouched;
// start from a fresh grid for a full load.
func (g *Grid) DecodeRecords(records string) error {
	stride := 7
	if g.compactRecords() {
		stride = 4
	}
	if len(records)%stride != 0 {
		return fmt.Errorf("voxel records: length %d is not a multiple of %d", len(records), stride)
	}
	for off := 0; off < len(records); off += stride {
		rec := records[off : off+stride]
		var x, y, z, m int
		var err error
		if stride == 4 {
			x, y, z, m, err = parseNibbles(rec)
		} else {
			x, y, z, m, err = parseWide(rec)
		}
		if err != nil {
			return fmt.Errorf("voxel records: record %q: %w", rec, err)
		}
		if !g.Within(x, y, z) {
			return fmt.Errorf("voxel records: (%d,%d,%d) outside %dx%dx%d grid",
				x, y, z, g.SizeX, g.SizeY, g.SizeZ)
		}
		idx := g.Idx3(x, y, z)
		g.solid[idx] = true
		g.material[idx] = uint8(m)
	}
	return nil
}

func parseNibbles(rec string) (x, y, z, m int, err error) {
	v, err := strconv.ParseUint(rec, 16, 16)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return int(v >> 12), int(v >> 8 & 0xF), int(v >> 4 & 0xF), int(v & 0xF), nil
}

func parseWide(rec string) (x, y, z, m int, err error) {
	v, err := strconv.ParseUint(rec, 16, 32)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return int(v >> 20 & 0xFF), int(v >> 12 & 0xFF), int(v >> 4 & 0xFF), int(v & 0xF), nil
}
