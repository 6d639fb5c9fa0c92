package voxel

const (
	// DefaultSize is the per-axis extent of a freshly created grid.
	DefaultSize = 16

	// MaterialMask keeps material ids in the 4-bit palette range.
	MaterialMask = 0x0F
)

// Grid is a dense block of voxels: a solidity bit and a 4-bit material id
// per cell. The material survives carving so a re-added voxel keeps its
// last color. Accessors do no bounds checking; callers guard coordinates
// with Within first.
type Grid struct {
	SizeX, SizeY, SizeZ int

	solid    []bool
	material []uint8
	regions  []*Region

	Palette Palette
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(sizeX, sizeY, sizeZ int) *Grid {
	n := sizeX * sizeY * sizeZ
	return &Grid{
		SizeX:    sizeX,
		SizeY:    sizeY,
		SizeZ:    sizeZ,
		solid:    make([]bool, n),
		material: make([]uint8, n),
		Palette:  DefaultPalette,
	}
}

// NewDefaultGrid allocates an empty 16x16x16 grid.
func NewDefaultGrid() *Grid { return NewGrid(DefaultSize, DefaultSize, DefaultSize) }

// VoxelCount returns the total number of cells.
func (g *Grid) VoxelCount() int { return g.SizeX * g.SizeY * g.SizeZ }

// Idx3 maps (x,y,z) to the linear cell index. Valid only for in-bounds
// coordinates.
func (g *Grid) Idx3(x, y, z int) int {
	return x + g.SizeX*(y+g.SizeY*z)
}

// CoordsOf is the inverse of Idx3.
func (g *Grid) CoordsOf(index int) (x, y, z int) {
	x = index % g.SizeX
	index /= g.SizeX
	y = index % g.SizeY
	z = index / g.SizeY
	return
}

// Within reports whether (x,y,z) names a cell of the grid.
func (g *Grid) Within(x, y, z int) bool {
	return x >= 0 && x < g.SizeX && y >= 0 && y < g.SizeY && z >= 0 && z < g.SizeZ
}

// Solid returns the solidity of the cell at index.
func (g *Grid) Solid(index int) bool { return g.solid[index] }

// SetSolid sets the solidity of the cell at index. The material id is
// left untouched when a voxel is carved.
func (g *Grid) SetSolid(index int, solid bool) { g.solid[index] = solid }

// Material returns the material id (0..15) of the cell at index.
func (g *Grid) Material(index int) uint8 { return g.material[index] }

// SetMaterial sets the material id of the cell at index, masked to 4 bits.
func (g *Grid) SetMaterial(index int, material uint8) {
	g.material[index] = material & MaterialMask
}

// Fill sets every cell to the given solidity and material.
func (g *Grid) Fill(solid bool, material uint8) {
	material &= MaterialMask
	for i := range g.solid {
		g.solid[i] = solid
		g.material[i] = material
	}
}

// solidAt is the bounds-checked solidity test used by the exposure oracle
// and the mesher; anything outside the grid counts as empty.
func (g *Grid) solidAt(x, y, z int) bool {
	if !g.Within(x, y, z) {
		return false
	}
	return g.solid[g.Idx3(x, y, z)]
}

// Resize re-dimensions the grid, preserving the state of every coordinate
// present in both the old and new extents and zero-filling the rest. All
// regions are dropped: their extents were laid out against the old
// dimensions.
func (g *Grid) Resize(sizeX, sizeY, sizeZ int) {
	n := sizeX * sizeY * sizeZ
	solid := make([]bool, n)
	material := make([]uint8, n)

	cx, cy, cz := min(sizeX, g.SizeX), min(sizeY, g.SizeY), min(sizeZ, g.SizeZ)
	for z := 0; z < cz; z++ {
		for y := 0; y < cy; y++ {
			for x := 0; x < cx; x++ {
				src := g.Idx3(x, y, z)
				dst := x + sizeX*(y+sizeY*z)
				solid[dst] = g.solid[src]
				material[dst] = g.material[src]
			}
		}
	}

	g.SizeX, g.SizeY, g.SizeZ = sizeX, sizeY, sizeZ
	g.solid = solid
	g.material = material
	g.regions = nil
}
