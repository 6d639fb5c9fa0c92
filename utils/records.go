package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/voxedit/voxedit/go/api"
	"github.com/voxedit/voxedit/go/voxel"
)

// RunRecords2Snapshot reads a voxel record string from inPath and writes a
// .vxg snapshot of the given dimensions to outPath.
func RunRecords2Snapshot(inPath, outPath string, sizeX, sizeY, sizeZ int) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	records := strings.TrimSpace(string(data))
	out, err := api.RecordsToSnapshot(sizeX, sizeY, sizeZ, records)
	if err != nil {
		return fmt.Errorf("failed to convert records: %w", err)
	}
	return os.WriteFile(outPath, out, 0644)
}

// RunSnapshot2Records converts a .vxg snapshot file back to its voxel
// record string.
func RunSnapshot2Records(inPath, outPath string) error {
	g, err := voxel.LoadGrid(inPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(g.EncodeRecords()+"\n"), 0644)
}
