package voxel

// Region is a named axis-aligned box over the grid with inclusive corners.
// Membership is purely geometric: any cell inside the box belongs to the
// region whether or not it is solid. Overlapping regions are allowed; a
// cell inside any region is excluded from the main mesh, and each region
// mesh re-tests only its own box.
type Region struct {
	Name     string
	Min, Max [3]int
}

// Contains reports whether (x,y,z) lies inside the region box.
func (r *Region) Contains(x, y, z int) bool {
	return x >= r.Min[0] && x <= r.Max[0] &&
		y >= r.Min[1] && y <= r.Max[1] &&
		z >= r.Min[2] && z <= r.Max[2]
}

// AddRegion registers a named box, clamped to the grid so that requested
// cells outside the bounds are silently skipped. A region with the same
// name is replaced. Boxes left empty by clamping are dropped.
func (g *Grid) AddRegion(name string, min, max [3]int) {
	for a, dim := range [3]int{g.SizeX, g.SizeY, g.SizeZ} {
		if min[a] < 0 {
			min[a] = 0
		}
		if max[a] >= dim {
			max[a] = dim - 1
		}
		if min[a] > max[a] {
			return
		}
	}
	r := &Region{Name: name, Min: min, Max: max}
	for i, old := range g.regions {
		if old.Name == name {
			g.regions[i] = r
			return
		}
	}
	g.regions = append(g.regions, r)
}

// ClearRegions drops every region.
func (g *Grid) ClearRegions() { g.regions = nil }

// RegionByName returns the named region, or nil.
func (g *Grid) RegionByName(name string) *Region {
	for _, r := range g.regions {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Regions returns the registered regions in registration order.
func (g *Grid) Regions() []*Region { return g.regions }

// inAnyRegion reports whether (x,y,z) lies inside at least one region.
func (g *Grid) inAnyRegion(x, y, z int) bool {
	for _, r := range g.regions {
		if r.Contains(x, y, z) {
			return true
		}
	}
	return false
}
