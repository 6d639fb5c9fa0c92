package voxel

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
)

// .vxg snapshot container:
//
//	"VXGR" | ver u8 | enc u8 | sizeX u16 | sizeY u16 | sizeZ u16 |
//	16 x (len u8 | palette hex string) |
//	regions u16 | per region: len u8 | name | 6 x u16 (min xyz, max xyz) |
//	plen u32 | xxhash64 u64 | payload
//
// All integers little-endian. The checksum covers the payload as stored
// (after compression) and is verified on load.

const (
	snapshotMagic   = "VXGR"
	snapshotVersion = 1
)

// SaveGrid writes the grid as a .vxg snapshot file.
func SaveGrid(g *Grid, filename string) error {
	return os.WriteFile(filename, SaveGridToBytes(g), 0644)
}

// SaveGridToBytes returns the snapshot as bytes instead of writing to disk.
func SaveGridToBytes(g *Grid) []byte {
	enc := bestEncoding(g)
	var buf bytes.Buffer
	buf.WriteString(snapshotMagic)
	_ = binary.Write(&buf, binary.LittleEndian, uint8(snapshotVersion))
	_ = binary.Write(&buf, binary.LittleEndian, enc.encoding)
	_ = binary.Write(&buf, binary.LittleEndian, uint16(g.SizeX))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(g.SizeY))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(g.SizeZ))
	for _, color := range g.Palette {
		_ = binary.Write(&buf, binary.LittleEndian, uint8(len(color)))
		buf.WriteString(color)
	}
	regions := g.Regions()
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(regions)))
	for _, r := range regions {
		_ = binary.Write(&buf, binary.LittleEndian, uint8(len(r.Name)))
		buf.WriteString(r.Name)
		for _, c := range [6]int{r.Min[0], r.Min[1], r.Min[2], r.Max[0], r.Max[1], r.Max[2]} {
			_ = binary.Write(&buf, binary.LittleEndian, uint16(c))
		}
	}
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(enc.payload)))
	_ = binary.Write(&buf, binary.LittleEndian, xxhash.Sum64(enc.payload))
	buf.Write(enc.payload)
	return buf.Bytes()
}

// LoadGrid reads a .vxg snapshot file.
func LoadGrid(filename string) (*Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadGridFromBytes(data)
}

// LoadGridFromBytes parses a snapshot from memory and returns the grid.
func LoadGridFromBytes(data []byte) (*Grid, error) {
	if len(data) < 4 || string(data[:4]) != snapshotMagic {
		return nil, fmt.Errorf("not a VXGR snapshot")
	}
	r := bytes.NewReader(data[4:])

	var ver, encByte uint8
	var sx, sy, sz uint16
	if err := binary.Read(r, binary.LittleEndian, &ver); err != nil {
		return nil, err
	}
	if ver != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version: %d", ver)
	}
	_ = binary.Read(r, binary.LittleEndian, &encByte)
	_ = binary.Read(r, binary.LittleEndian, &sx)
	_ = binary.Read(r, binary.LittleEndian, &sy)
	if err := binary.Read(r, binary.LittleEndian, &sz); err != nil {
		return nil, err
	}
	if sx == 0 || sy == 0 || sz == 0 {
		return nil, fmt.Errorf("invalid snapshot dimensions %dx%dx%d", sx, sy, sz)
	}

	g := NewGrid(int(sx), int(sy), int(sz))
	for slot := range g.Palette {
		var n uint8
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		color := make([]byte, n)
		if _, err := io.ReadFull(r, color); err != nil {
			return nil, err
		}
		g.Palette[slot] = string(color)
	}

	var regionCount uint16
	if err := binary.Read(r, binary.LittleEndian, &regionCount); err != nil {
		return nil, err
	}
	for i := 0; i < int(regionCount); i++ {
		var n uint8
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		name := make([]byte, n)
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, err
		}
		var c [6]uint16
		for j := range c {
			if err := binary.Read(r, binary.LittleEndian, &c[j]); err != nil {
				return nil, err
			}
		}
		g.AddRegion(string(name),
			[3]int{int(c[0]), int(c[1]), int(c[2])},
			[3]int{int(c[3]), int(c[4]), int(c[5])})
	}

	var plen uint32
	var sum uint64
	if err := binary.Read(r, binary.LittleEndian, &plen); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
		return nil, err
	}
	payload := make([]byte, plen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	if xxhash.Sum64(payload) != sum {
		return nil, fmt.Errorf("snapshot payload checksum mismatch")
	}
	if err := decodePayload(g, encByte, payload); err != nil {
		return nil, err
	}
	return g, nil
}
