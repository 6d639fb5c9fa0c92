package voxel

import (
	"fmt"
	"strconv"
)

// Palette maps the 16 material ids to #RRGGBB or #RRGGBBAA hex colors.
type Palette [16]string

// DefaultPalette is the editor's starting material palette.
var DefaultPalette = Palette{
	"#1a1c2c", "#5d275d", "#b13e53", "#ef7d57",
	"#ffcd75", "#a7f070", "#38b764", "#257179",
	"#29366f", "#3b5dc9", "#41a6f6", "#73eff7",
	"#f4f4f4", "#94b0c2", "#566c86", "#333c57",
}

// ParseHexColor converts a #RRGGBB or #RRGGBBAA string to normalized RGBA.
func ParseHexColor(hex string) ([4]float32, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return [4]float32{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	h := hex[1:]
	var r, g, b, a uint64
	var err error
	switch len(h) {
	case 6:
		r, err = strconv.ParseUint(h[0:2], 16, 8)
		g, err = strconv.ParseUint(h[2:4], 16, 8)
		b, err = strconv.ParseUint(h[4:6], 16, 8)
		a = 255
	case 8:
		r, err = strconv.ParseUint(h[0:2], 16, 8)
		g, err = strconv.ParseUint(h[2:4], 16, 8)
		b, err = strconv.ParseUint(h[4:6], 16, 8)
		a, err = strconv.ParseUint(h[6:8], 16, 8)
	default:
		return [4]float32{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
	if err != nil {
		return [4]float32{}, err
	}
	return [4]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}, nil
}
