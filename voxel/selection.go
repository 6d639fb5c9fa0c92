package voxel

// Selection queries expand a resolved (voxel, face) hit into the candidate
// sets the line and plane tools operate on. Each face fixes a sweep axis
// (its normal) and two tangent axes via the faceAxis table.

// tangents returns the two axes orthogonal to axis, in ascending order.
func tangents(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func (g *Grid) dims() [3]int { return [3]int{g.SizeX, g.SizeY, g.SizeZ} }

// RowVoxels sweeps the face's normal axis through the hit voxel, holding
// both tangent coordinates fixed, and collects every in-bounds voxel with
// the requested solidity. Gaps do not stop the scan.
func (g *Grid) RowVoxels(index int, face Face, wantSolid bool) []int {
	x, y, z := g.CoordsOf(index)
	pos := [3]int{x, y, z}
	axis := faceAxis[face]

	var out []int
	for k := 0; k < g.dims()[axis]; k++ {
		pos[axis] = k
		i := g.Idx3(pos[0], pos[1], pos[2])
		if g.solid[i] == wantSolid {
			out = append(out, i)
		}
	}
	return out
}

// PlaneVoxels holds the face's normal axis at the hit voxel's coordinate
// and sweeps both tangent axes, collecting the solid voxels exposed on
// that face. For the synthetic ground face it collects the solid voxels
// of the y=0 layer.
func (g *Grid) PlaneVoxels(index int, face Face) []int {
	x, y, z := g.CoordsOf(index)
	pos := [3]int{x, y, z}
	axis := faceAxis[face]
	if face == FaceGround {
		pos[1] = 0
	}
	u, v := tangents(axis)
	d := g.dims()

	var out []int
	for i := 0; i < d[u]; i++ {
		for j := 0; j < d[v]; j++ {
			pos[u] = i
			pos[v] = j
			idx := g.Idx3(pos[0], pos[1], pos[2])
			if !g.solid[idx] {
				continue
			}
			if face == FaceGround || g.FaceExposed(pos[0], pos[1], pos[2], face) {
				out = append(out, idx)
			}
		}
	}
	return out
}

// offsetTargets moves each member one step along the face normal and
// keeps the in-bounds, non-solid, de-duplicated results: the cells an add
// tool would fill.
func (g *Grid) offsetTargets(members []int, face Face) []int {
	d := faceDelta[face]
	seen := make(map[int]bool, len(members))
	var out []int
	for _, idx := range members {
		x, y, z := g.CoordsOf(idx)
		x, y, z = x+d[0], y+d[1], z+d[2]
		if !g.Within(x, y, z) {
			continue
		}
		t := g.Idx3(x, y, z)
		if g.solid[t] || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// RowAddTargets returns the row's solid members offset once along the
// face normal, keeping empty in-bounds cells.
func (g *Grid) RowAddTargets(index int, face Face) []int {
	return g.offsetTargets(g.RowVoxels(index, face, true), face)
}

// PlaneAddTargets returns the face plane's exposed members offset once
// along the face normal, keeping empty in-bounds cells.
func (g *Grid) PlaneAddTargets(index int, face Face) []int {
	return g.offsetTargets(g.PlaneVoxels(index, face), face)
}
