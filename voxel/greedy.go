package voxel

// dirSpec describes one sweep direction of the greedy mesher: the face it
// emits, its outward normal, the two tangent axes u,v and their unit
// steps. The order matches the Face constants.
type dirSpec struct {
	face   Face
	normal [3]float32
	u, v   int
	du, dv [3]int
}

var directions = [6]dirSpec{
	{FacePlusX, [3]float32{1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{FaceMinusX, [3]float32{-1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{FacePlusY, [3]float32{0, 1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{FaceMinusY, [3]float32{0, -1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{FacePlusZ, [3]float32{0, 0, 1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
	{FaceMinusZ, [3]float32{0, 0, -1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
}

// maskNone marks a mask cell with no face to emit. Material 0 is a legal
// value, so the sentinel lives outside the 0..15 range.
const maskNone int16 = -1

// mesher carries the per-slice scratch buffers so a rebuild allocates the
// mask once instead of once per slice.
type mesher struct {
	g    *Grid
	mask []int16
	used []bool
}

func newMesher(g *Grid) *mesher {
	area := g.SizeX * g.SizeY
	if a := g.SizeY * g.SizeZ; a > area {
		area = a
	}
	if a := g.SizeX * g.SizeZ; a > area {
		area = a
	}
	return &mesher{g: g, mask: make([]int16, area), used: make([]bool, area)}
}

// build runs the greedy sweep with the given inclusion predicate. The
// predicate must already conjoin solidity and return false out of bounds;
// a face is emitted wherever an included voxel borders (along the sweep
// normal) a cell that is not included.
func (m *mesher) build(include func(x, y, z int) bool) *Mesh {
	g := m.g
	mesh := &Mesh{}
	dims := [3]int{g.SizeX, g.SizeY, g.SizeZ}

	for _, dir := range directions {
		perp := 3 - dir.u - dir.v
		nu, nv := dims[dir.u], dims[dir.v]

		for p := 0; p < dims[perp]; p++ {
			for i := 0; i < nu*nv; i++ {
				m.mask[i] = maskNone
				m.used[i] = false
			}

			for u := 0; u < nu; u++ {
				for v := 0; v < nv; v++ {
					pos := [3]int{}
					pos[dir.u] = u
					pos[dir.v] = v
					pos[perp] = p
					if !include(pos[0], pos[1], pos[2]) {
						continue
					}

					adj := pos
					if dir.normal[perp] < 0 {
						adj[perp] = p - 1
					} else {
						adj[perp] = p + 1
					}
					if !include(adj[0], adj[1], adj[2]) {
						m.mask[u*nv+v] = int16(g.Material(g.Idx3(pos[0], pos[1], pos[2])))
					}
				}
			}

			for u := 0; u < nu; u++ {
				for v := 0; v < nv; {
					cell := u*nv + v
					if m.mask[cell] == maskNone || m.used[cell] {
						v++
						continue
					}
					material := m.mask[cell]
					width := 1
					for w := v + 1; w < nv && m.mask[u*nv+w] == material && !m.used[u*nv+w]; w++ {
						width++
					}
					height := 1
					stop := false
					for h := u + 1; h < nu && !stop; h++ {
						for w := v; w < v+width; w++ {
							if m.mask[h*nv+w] != material || m.used[h*nv+w] {
								stop = true
								break
							}
						}
						if !stop {
							height++
						}
					}
					for hu := u; hu < u+height; hu++ {
						for hv := v; hv < v+width; hv++ {
							m.used[hu*nv+hv] = true
						}
					}
					mesh.addQuad(dir, [3]int{p, u, v}, width, height, uint8(material), perp)
					v += width
				}
			}
		}
	}
	return mesh
}

// BuildMainMesh extracts the merged surface of every solid voxel that
// belongs to no region.
func (g *Grid) BuildMainMesh() *Mesh {
	return newMesher(g).build(func(x, y, z int) bool {
		return g.solidAt(x, y, z) && !g.inAnyRegion(x, y, z)
	})
}

// BuildRegionMesh extracts the merged surface of the solid voxels inside
// the named region's box. Unknown names yield an empty mesh.
func (g *Grid) BuildRegionMesh(name string) *Mesh {
	r := g.RegionByName(name)
	if r == nil {
		return &Mesh{}
	}
	return newMesher(g).build(func(x, y, z int) bool {
		return g.solidAt(x, y, z) && r.Contains(x, y, z)
	})
}
