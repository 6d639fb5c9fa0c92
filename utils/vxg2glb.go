package utils

import (
	"os"

	"github.com/voxedit/voxedit/go/api"
)

// RunSnapshot2GLB converts a .vxg snapshot file to a binary glTF using the
// greedy mesh, one node for the main mesh plus one per region.
func RunSnapshot2GLB(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	out, err := api.SnapshotToGLB(data)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0644)
}
