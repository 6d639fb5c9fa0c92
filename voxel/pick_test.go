package voxel

import "testing"

func TestPickIDRoundtrip(t *testing.T) {
	g := NewDefaultGrid()
	for _, idx := range []int{0, 1, 255, g.VoxelCount() - 1} {
		for f := FacePlusX; f < FaceGround; f++ {
			packed := EncodePickID(idx, f)
			gotIdx, gotFace, ok := g.DecodePick(packed)
			if !ok || gotIdx != idx || gotFace != f {
				t.Fatalf("decode(encode(%d,%v)) = (%d,%v,%v)", idx, f, gotIdx, gotFace, ok)
			}
		}
	}
}

func TestPickIDFitsPickBufferColor(t *testing.T) {
	g := NewGrid(64, 64, 64)
	packed := EncodePickID(g.VoxelCount()-1, FaceMinusZ)
	if packed >= 1<<24 {
		t.Fatalf("pick id %#x overflows a 24-bit color", packed)
	}
}

func TestDecodePickNoHit(t *testing.T) {
	g := NewDefaultGrid()
	if _, _, ok := g.DecodePick(0); ok {
		t.Fatalf("decode(0) must be a no-hit")
	}
	if _, _, ok := g.DecodePick(EncodePickID(g.VoxelCount(), FacePlusX)); ok {
		t.Fatalf("out-of-range voxel index must be a no-hit")
	}
	if _, _, ok := g.DecodePick(EncodePickID(g.SizeX*g.SizeZ, FaceGround)); ok {
		t.Fatalf("out-of-range ground cell must be a no-hit")
	}
	if _, _, ok := g.DecodePick(uint32(1)<<4 | 7); ok {
		t.Fatalf("face id 7 must be a no-hit")
	}
}

func TestGroundPickDecode(t *testing.T) {
	g := NewDefaultGrid()
	cell := 3 + g.SizeX*7
	idx, face, ok := g.DecodePick(EncodePickID(cell, FaceGround))
	if !ok || face != FaceGround || idx != cell {
		t.Fatalf("ground decode = (%d,%v,%v)", idx, face, ok)
	}
	if got := g.GroundVoxel(cell); got != g.Idx3(3, 0, 7) {
		t.Fatalf("groundVoxel(%d) = %d", cell, got)
	}
}

func TestBuildPickFacesUnmerged(t *testing.T) {
	g := NewDefaultGrid()
	idx := g.Idx3(2, 3, 4)
	g.SetSolid(idx, true)

	faces, ground := g.BuildPickFaces()
	if faces.QuadCount() != 6 {
		t.Fatalf("lone voxel pick buffer has %d quads, want 6", faces.QuadCount())
	}
	if ground.QuadCount() != g.SizeX*g.SizeZ {
		t.Fatalf("ground buffer has %d quads, want %d", ground.QuadCount(), g.SizeX*g.SizeZ)
	}

	seen := map[Face]bool{}
	for _, v := range faces.Vertices {
		gotIdx, gotFace, ok := g.DecodePick(v.ID)
		if !ok || gotIdx != idx {
			t.Fatalf("pick vertex id decodes to (%d,%v,%v)", gotIdx, gotFace, ok)
		}
		seen[gotFace] = true
	}
	if len(seen) != 6 {
		t.Fatalf("pick buffer covers %d distinct faces, want 6", len(seen))
	}
}

func TestPickFacesStayPerFace(t *testing.T) {
	// Two adjoining voxels: the shared faces are hidden, everything else
	// stays one quad per face with no merging.
	g := NewDefaultGrid()
	g.SetSolid(g.Idx3(1, 1, 1), true)
	g.SetSolid(g.Idx3(2, 1, 1), true)
	faces, _ := g.BuildPickFaces()
	if faces.QuadCount() != 10 {
		t.Fatalf("pair pick buffer has %d quads, want 10", faces.QuadCount())
	}
}

func TestGroundQuadsLieOnYZero(t *testing.T) {
	g := NewGrid(2, 2, 2)
	_, ground := g.BuildPickFaces()
	for _, v := range ground.Vertices {
		if v.Position[1] != 0 {
			t.Fatalf("ground quad vertex at y=%v", v.Position[1])
		}
	}
}
