package voxel

import "testing"

func hasIndex(list []int, idx int) bool {
	for _, i := range list {
		if i == idx {
			return true
		}
	}
	return false
}

func TestRowVoxelsSweepsThroughGaps(t *testing.T) {
	g := NewDefaultGrid()
	// A broken column along y at (4,*,4).
	for _, y := range []int{0, 1, 5, 9} {
		g.SetSolid(g.Idx3(4, y, 4), true)
	}
	row := g.RowVoxels(g.Idx3(4, 1, 4), FacePlusY, true)
	if len(row) != 4 {
		t.Fatalf("row collected %d voxels, want 4", len(row))
	}
	if !hasIndex(row, g.Idx3(4, 9, 4)) {
		t.Fatalf("row scan stopped at the gap")
	}

	empty := g.RowVoxels(g.Idx3(4, 1, 4), FacePlusY, false)
	if len(empty) != g.SizeY-4 {
		t.Fatalf("non-solid row collected %d cells, want %d", len(empty), g.SizeY-4)
	}
}

func TestRowVoxelsHoldsTangents(t *testing.T) {
	g := NewDefaultGrid()
	g.SetSolid(g.Idx3(4, 2, 4), true)
	g.SetSolid(g.Idx3(5, 7, 4), true) // different tangent column
	row := g.RowVoxels(g.Idx3(4, 2, 4), FaceMinusY, true)
	if len(row) != 1 || row[0] != g.Idx3(4, 2, 4) {
		t.Fatalf("row leaked voxels from another column: %v", row)
	}
}

func TestPlaneVoxelsCollectsExposedFace(t *testing.T) {
	g := NewDefaultGrid()
	// A 16x16 slab at y=0 plus one voxel stacked on top.
	for z := 0; z < g.SizeZ; z++ {
		for x := 0; x < g.SizeX; x++ {
			g.SetSolid(g.Idx3(x, 0, z), true)
		}
	}
	g.SetSolid(g.Idx3(3, 1, 3), true)

	plane := g.PlaneVoxels(g.Idx3(5, 0, 5), FacePlusY)
	// Every slab cell except the one under the stack is +y exposed.
	if len(plane) != g.SizeX*g.SizeZ-1 {
		t.Fatalf("plane collected %d voxels, want %d", len(plane), g.SizeX*g.SizeZ-1)
	}
	if hasIndex(plane, g.Idx3(3, 0, 3)) {
		t.Fatalf("covered voxel reported as exposed")
	}
}

func TestGroundPlaneVoxels(t *testing.T) {
	g := NewDefaultGrid()
	g.SetSolid(g.Idx3(1, 0, 1), true)
	g.SetSolid(g.Idx3(2, 5, 2), true) // above the ground layer

	plane := g.PlaneVoxels(g.GroundVoxel(0), FaceGround)
	if len(plane) != 1 || plane[0] != g.Idx3(1, 0, 1) {
		t.Fatalf("ground plane collected %v", plane)
	}
}

func TestRowAddTargets(t *testing.T) {
	g := NewDefaultGrid()
	g.SetSolid(g.Idx3(4, 0, 4), true)
	g.SetSolid(g.Idx3(4, 1, 4), true)

	targets := g.RowAddTargets(g.Idx3(4, 0, 4), FacePlusY)
	// (4,0,4)+y is solid; only (4,1,4)+y survives.
	if len(targets) != 1 || targets[0] != g.Idx3(4, 2, 4) {
		t.Fatalf("row add targets = %v", targets)
	}
}

func TestPlaneAddTargetsStayInBounds(t *testing.T) {
	g := NewDefaultGrid()
	for z := 0; z < g.SizeZ; z++ {
		for x := 0; x < g.SizeX; x++ {
			g.SetSolid(g.Idx3(x, g.SizeY-1, z), true)
		}
	}
	// The top layer's +y neighbors are all out of bounds.
	if targets := g.PlaneAddTargets(g.Idx3(0, g.SizeY-1, 0), FacePlusY); len(targets) != 0 {
		t.Fatalf("out-of-bounds add targets: %v", targets)
	}
	// But -y targets land inside.
	targets := g.PlaneAddTargets(g.Idx3(0, g.SizeY-1, 0), FaceMinusY)
	if len(targets) != g.SizeX*g.SizeZ {
		t.Fatalf("%d -y add targets, want %d", len(targets), g.SizeX*g.SizeZ)
	}
}
