package voxel

import "sort"

// Dense snapshot payloads stream cells in Morton (Z-order) rank instead
// of linear order: spatially close voxels land close in the stream, which
// compresses noticeably better for the blocky shapes editors produce.

func expand3(v uint32) uint32 {
	v = (v | (v << 16)) & 0x030000FF
	v = (v | (v << 8)) & 0x0300F00F
	v = (v | (v << 4)) & 0x030C30C3
	v = (v | (v << 2)) & 0x09249249
	return v
}

func morton3D(x, y, z uint32) uint32 {
	return expand3(x) | (expand3(y) << 1) | (expand3(z) << 2)
}

// mortonOrder returns the linear cell indices of a sizeX*sizeY*sizeZ grid
// sorted by Morton key: order[rank] is the linear index at that rank.
func mortonOrder(sizeX, sizeY, sizeZ int) []int {
	total := sizeX * sizeY * sizeZ
	order := make([]int, total)
	keys := make([]uint32, total)
	i := 0
	for z := 0; z < sizeZ; z++ {
		for y := 0; y < sizeY; y++ {
			for x := 0; x < sizeX; x++ {
				order[i] = i
				keys[i] = morton3D(uint32(x), uint32(y), uint32(z))
				i++
			}
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return keys[order[a]] < keys[order[b]] })
	return order
}
