package utils

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/voxedit/voxedit/go/voxel"
)

// generateNoiseGrid creates a grid with the given percentage of voxels
// made solid with random materials. Remaining cells stay empty.
func generateNoiseGrid(size int, percentage float64, r *rand.Rand) *voxel.Grid {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	g := voxel.NewGrid(size, size, size)
	total := g.VoxelCount()
	want := int(float64(total)*(percentage/100.0) + 0.5)
	if want > total {
		want = total
	}

	// Fisher-Yates over only the first 'want' slots.
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	for k := 0; k < want; k++ {
		g.SetSolid(idx[k], true)
		g.SetMaterial(idx[k], uint8(r.Intn(16)))
	}
	return g
}

// RunGenerateNoise creates 'amount' .vxg files named 0.vxg..(amount-1).vxg
// in outDir, each a size^3 grid with a random fill in [minPerc, maxPerc].
func RunGenerateNoise(size int, minPerc, maxPerc float64, amount int, outDir string) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if minPerc > maxPerc {
		minPerc, maxPerc = maxPerc, minPerc
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < amount; i++ {
		perc := minPerc + r.Float64()*(maxPerc-minPerc)
		g := generateNoiseGrid(size, perc, r)
		path := filepath.Join(outDir, fmt.Sprintf("%d.vxg", i))
		if err := voxel.SaveGrid(g, path); err != nil {
			return err
		}
	}
	return nil
}
