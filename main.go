//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/voxedit/voxedit/go/utils"
)

func usage() {
	fmt.Println("Usage: voxeltool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  records2vxg input.txt output.vxg [sizeX sizeY sizeZ]  (voxel records -> .vxg snapshot, default 16^3)")
	fmt.Println("  vxg2records input.vxg output.txt                      (.vxg snapshot -> voxel records)")
	fmt.Println("  vxg2glb input.vxg output.glb                          (.vxg snapshot -> .glb via greedy mesh)")
	fmt.Println("  gennoise <size> <percMin> <percMax> <amount> <output_dir>  (generate random .vxg chunks)")
}

func atoiOrDie(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	return v
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "records2vxg":
		if len(os.Args) != 4 && len(os.Args) != 7 {
			usage()
			os.Exit(1)
		}
		sx, sy, sz := 16, 16, 16
		if len(os.Args) == 7 {
			sx, sy, sz = atoiOrDie(os.Args[4]), atoiOrDie(os.Args[5]), atoiOrDie(os.Args[6])
		}
		if err := utils.RunRecords2Snapshot(os.Args[2], os.Args[3], sx, sy, sz); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "vxg2records":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunSnapshot2Records(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "vxg2glb":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunSnapshot2GLB(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "gennoise":
		if len(os.Args) != 7 {
			usage()
			os.Exit(1)
		}
		size := atoiOrDie(os.Args[2])
		var minP, maxP float64
		if _, err := fmt.Sscan(os.Args[3], &minP); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if _, err := fmt.Sscan(os.Args[4], &maxP); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		amount := atoiOrDie(os.Args[5])
		if err := utils.RunGenerateNoise(size, minP, maxP, amount, os.Args[6]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}
