package voxel

// surfaceEpsilon pushes render quads off the integer face planes along
// their normals so the main mesh and region meshes never share a plane.
const surfaceEpsilon = 1.0 / 1024

// Vertex is one corner of a merged surface quad in the renderer buffer
// contract: position, constant face normal and a material id per vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Material uint8
}

// Mesh is a triangle list over a shared vertex array.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// QuadCount returns the number of quads in the mesh (two triangles each).
func (m *Mesh) QuadCount() int { return len(m.Indices) / 6 }

// addQuad appends one rectangle spanning w cells along dir.v and h cells
// along dir.u, starting at slice p = start[0], u = start[1], v = start[2].
// Winding is derived from the normal sign so outward faces need no
// separate flip.
func (m *Mesh) addQuad(dir dirSpec, start [3]int, w, h int, material uint8, perp int) {
	base := [3]float32{}
	base[perp] = float32(start[0])
	if dir.normal[perp] > 0 {
		base[perp] += 1
	}
	base[perp] += dir.normal[perp] * surfaceEpsilon
	base[dir.u] = float32(start[1])
	base[dir.v] = float32(start[2])

	verts := [4]Vertex{
		{Position: base, Normal: dir.normal, Material: material},
		{Position: [3]float32{base[0] + float32(dir.du[0]*h), base[1] + float32(dir.du[1]*h), base[2] + float32(dir.du[2]*h)}, Normal: dir.normal, Material: material},
		{Position: [3]float32{base[0] + float32(dir.du[0]*h) + float32(dir.dv[0]*w), base[1] + float32(dir.du[1]*h) + float32(dir.dv[1]*w), base[2] + float32(dir.du[2]*h) + float32(dir.dv[2]*w)}, Normal: dir.normal, Material: material},
		{Position: [3]float32{base[0] + float32(dir.dv[0]*w), base[1] + float32(dir.dv[1]*w), base[2] + float32(dir.dv[2]*w)}, Normal: dir.normal, Material: material},
	}

	swap := (dir.normal[perp] < 0) != (perp == 1)
	if swap {
		verts[1], verts[3] = verts[3], verts[1]
	}

	baseIdx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, verts[:]...)
	m.Indices = append(m.Indices, baseIdx, baseIdx+1, baseIdx+2, baseIdx, baseIdx+2, baseIdx+3)
}
