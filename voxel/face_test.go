package voxel

import "testing"

// countExposedFaces sums FaceExposed over every cell and cardinal face.
func countExposedFaces(g *Grid) int {
	n := 0
	for z := 0; z < g.SizeZ; z++ {
		for y := 0; y < g.SizeY; y++ {
			for x := 0; x < g.SizeX; x++ {
				for f := FacePlusX; f < FaceGround; f++ {
					if g.FaceExposed(x, y, z, f) {
						n++
					}
				}
			}
		}
	}
	return n
}

func TestFaceExposedLoneVoxel(t *testing.T) {
	g := NewDefaultGrid()
	g.SetSolid(g.Idx3(8, 8, 8), true)
	for f := FacePlusX; f < FaceGround; f++ {
		if !g.FaceExposed(8, 8, 8, f) {
			t.Fatalf("lone voxel face %v not exposed", f)
		}
	}
	if g.FaceExposed(0, 0, 0, FacePlusX) {
		t.Fatalf("empty cell reports an exposed face")
	}
	if g.FaceExposed(8, 8, 8, FaceGround) {
		t.Fatalf("ground face exposed by a voxel")
	}
}

func TestFaceExposedHiddenByNeighbor(t *testing.T) {
	g := NewDefaultGrid()
	g.SetSolid(g.Idx3(4, 4, 4), true)
	g.SetSolid(g.Idx3(5, 4, 4), true)
	if g.FaceExposed(4, 4, 4, FacePlusX) {
		t.Fatalf("+x face exposed despite solid neighbor")
	}
	if g.FaceExposed(5, 4, 4, FaceMinusX) {
		t.Fatalf("-x face exposed despite solid neighbor")
	}
	if !g.FaceExposed(4, 4, 4, FaceMinusX) {
		t.Fatalf("boundary-adjacent face should be exposed")
	}
}

func TestFaceExposedAtBoundary(t *testing.T) {
	g := NewDefaultGrid()
	g.Fill(true, 1)
	// Chunk-boundary faces count out-of-bounds neighbors as empty.
	if !g.FaceExposed(0, 0, 0, FaceMinusX) || !g.FaceExposed(15, 15, 15, FacePlusZ) {
		t.Fatalf("chunk-boundary face not exposed")
	}
	if g.FaceExposed(0, 0, 0, FacePlusX) {
		t.Fatalf("interior face exposed in a full grid")
	}
}

func TestCarveInteriorAddsSixExposedFaces(t *testing.T) {
	g := NewDefaultGrid()
	g.Fill(true, 1)
	before := countExposedFaces(g)
	g.SetSolid(g.Idx3(8, 8, 8), false)
	after := countExposedFaces(g)
	if after-before != 6 {
		t.Fatalf("interior carve changed exposure by %d, want 6", after-before)
	}
}

func TestCarveCornerExposesPositiveNeighbors(t *testing.T) {
	g := NewDefaultGrid()
	g.Fill(true, 1)
	g.SetSolid(g.Idx3(0, 0, 0), false)

	// The cavity walls are the negative-direction faces of the three
	// positive neighbors; the carved cell's own hull faces are gone.
	if !g.FaceExposed(1, 0, 0, FaceMinusX) ||
		!g.FaceExposed(0, 1, 0, FaceMinusY) ||
		!g.FaceExposed(0, 0, 1, FaceMinusZ) {
		t.Fatalf("cavity wall not exposed after corner carve")
	}
	if g.FaceExposed(0, 0, 0, FaceMinusX) {
		t.Fatalf("carved cell still reports exposed faces")
	}
}
