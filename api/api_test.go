package api

import (
	"testing"

	"github.com/voxedit/voxedit/go/voxel"
)

func TestRecordsSnapshotRoundtrip(t *testing.T) {
	records := "0005123f88f7"
	snap, err := RecordsToSnapshot(16, 16, 16, records)
	if err != nil {
		t.Fatalf("RecordsToSnapshot failed: %v", err)
	}
	got, err := SnapshotToRecords(snap)
	if err != nil {
		t.Fatalf("SnapshotToRecords failed: %v", err)
	}
	if got != records {
		t.Fatalf("records roundtrip: got %q, want %q", got, records)
	}
}

func TestSnapshotToGLB(t *testing.T) {
	g := voxel.NewDefaultGrid()
	g.Fill(true, 4)
	g.AddRegion("left", [3]int{0, 0, 0}, [3]int{7, 15, 15})

	out, err := SnapshotToGLB(voxel.SaveGridToBytes(g))
	if err != nil {
		t.Fatalf("SnapshotToGLB failed: %v", err)
	}
	if len(out) < 12 || string(out[:4]) != "glTF" {
		t.Fatalf("output is not a binary glTF")
	}
}

func TestSnapshotToGLBEmptyGrid(t *testing.T) {
	g := voxel.NewDefaultGrid()
	if _, err := SnapshotToGLB(voxel.SaveGridToBytes(g)); err == nil {
		t.Fatalf("expected error for a snapshot with no solid voxels")
	}
}

func TestRecordsToSnapshotRejectsBadRecords(t *testing.T) {
	if _, err := RecordsToSnapshot(16, 16, 16, "zzz"); err == nil {
		t.Fatalf("expected error for malformed records")
	}
}
