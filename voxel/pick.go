package voxel

// Pick ids travel to the GPU as 24-bit colors: a 1-based cell index in
// the upper bits and a 3-bit face field in the lower bits. Zero is the
// reserved no-hit value, which the +1 bias keeps unreachable.

// PickVertex is one corner of an unmerged pick quad: position plus the
// packed id replicated per vertex so the pick pass can render it flat.
type PickVertex struct {
	Position [3]float32
	ID       uint32
}

// PickMesh is a triangle list over pick vertices.
type PickMesh struct {
	Vertices []PickVertex
	Indices  []uint32
}

// QuadCount returns the number of quads in the pick mesh.
func (m *PickMesh) QuadCount() int { return len(m.Indices) / 6 }

// EncodePickID packs a cell index and face into a pick id. The index is
// a voxel index for cardinal faces and a ground-cell index for FaceGround.
func EncodePickID(index int, face Face) uint32 {
	return uint32(index+1)<<4 | uint32(face)&7
}

// DecodePick unpacks a sampled pick color. ok is false for the reserved
// zero value, unknown faces, and indices outside the grid (a stale or
// garbage sample reads as a benign miss).
func (g *Grid) DecodePick(packed uint32) (index int, face Face, ok bool) {
	if packed == 0 {
		return 0, 0, false
	}
	face = Face(packed & 7)
	index = int(packed>>4) - 1
	if index < 0 {
		return 0, 0, false
	}
	switch {
	case face < FaceGround:
		ok = index < g.VoxelCount()
	case face == FaceGround:
		ok = index < g.SizeX*g.SizeZ
	}
	if !ok {
		return 0, 0, false
	}
	return index, face, true
}

// GroundVoxel converts a ground-cell index to the voxel index of the y=0
// cell it covers, the form the selection queries take.
func (g *Grid) GroundVoxel(cell int) int {
	return g.Idx3(cell%g.SizeX, 0, cell/g.SizeX)
}

// addPickQuad appends one 1x1 quad for the given direction at slice
// p = start[0], u = start[1], v = start[2], with the same winding rule as
// the render mesher. Pick quads sit exactly on the face planes; the pick
// pass renders alone, so no epsilon is needed.
func (m *PickMesh) addPickQuad(dir dirSpec, start [3]int, id uint32, perp int) {
	base := [3]float32{}
	base[perp] = float32(start[0])
	if dir.normal[perp] > 0 {
		base[perp] += 1
	}
	base[dir.u] = float32(start[1])
	base[dir.v] = float32(start[2])

	verts := [4]PickVertex{
		{Position: base, ID: id},
		{Position: [3]float32{base[0] + float32(dir.du[0]), base[1] + float32(dir.du[1]), base[2] + float32(dir.du[2])}, ID: id},
		{Position: [3]float32{base[0] + float32(dir.du[0]+dir.dv[0]), base[1] + float32(dir.du[1]+dir.dv[1]), base[2] + float32(dir.du[2]+dir.dv[2])}, ID: id},
		{Position: [3]float32{base[0] + float32(dir.dv[0]), base[1] + float32(dir.dv[1]), base[2] + float32(dir.dv[2])}, ID: id},
	}

	swap := (dir.normal[perp] < 0) != (perp == 1)
	if swap {
		verts[1], verts[3] = verts[3], verts[1]
	}

	baseIdx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, verts[:]...)
	m.Indices = append(m.Indices, baseIdx, baseIdx+1, baseIdx+2, baseIdx, baseIdx+2, baseIdx+3)
}

// BuildPickFaces rebuilds both pick buffers: one unmerged quad per
// exposed voxel face, and one quad per ground-plane cell. The two are
// kept separate so the add-new-voxel interaction mode can swap in the
// ground buffer.
func (g *Grid) BuildPickFaces() (faces, ground *PickMesh) {
	faces = &PickMesh{}
	ground = &PickMesh{}

	for z := 0; z < g.SizeZ; z++ {
		for y := 0; y < g.SizeY; y++ {
			for x := 0; x < g.SizeX; x++ {
				idx := g.Idx3(x, y, z)
				if !g.solid[idx] {
					continue
				}
				pos := [3]int{x, y, z}
				for _, dir := range directions {
					if !g.FaceExposed(x, y, z, dir.face) {
						continue
					}
					perp := 3 - dir.u - dir.v
					start := [3]int{pos[perp], pos[dir.u], pos[dir.v]}
					faces.addPickQuad(dir, start, EncodePickID(idx, dir.face), perp)
				}
			}
		}
	}

	// The ground plane reuses the +Y direction with its slice below the
	// grid, which lands the quads exactly on y=0 facing up.
	up := directions[FacePlusY]
	for z := 0; z < g.SizeZ; z++ {
		for x := 0; x < g.SizeX; x++ {
			cell := x + g.SizeX*z
			ground.addPickQuad(up, [3]int{-1, x, z}, EncodePickID(cell, FaceGround), 1)
		}
	}
	return faces, ground
}
