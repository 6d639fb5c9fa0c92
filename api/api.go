package api

import (
	"bytes"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxedit/voxedit/go/voxel"
)

// RecordsToSnapshot parses a voxel record string into a grid of the given
// dimensions and returns it as .vxg snapshot bytes.
func RecordsToSnapshot(sizeX, sizeY, sizeZ int, records string) ([]byte, error) {
	g := voxel.NewGrid(sizeX, sizeY, sizeZ)
	if err := g.DecodeRecords(records); err != nil {
		return nil, err
	}
	return voxel.SaveGridToBytes(g), nil
}

// SnapshotToRecords loads .vxg snapshot bytes and returns the voxel
// record string.
func SnapshotToRecords(data []byte) (string, error) {
	g, err := voxel.LoadGridFromBytes(data)
	if err != nil {
		return "", err
	}
	return g.EncodeRecords(), nil
}

// SnapshotToGLB loads .vxg snapshot bytes, extracts the main mesh and one
// mesh per region, and returns a binary glTF with one node per mesh.
func SnapshotToGLB(data []byte) ([]byte, error) {
	g, err := voxel.LoadGridFromBytes(data)
	if err != nil {
		return nil, err
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxedit"

	addMesh := func(name string, m *voxel.Mesh) error {
		if len(m.Indices) == 0 {
			return nil
		}
		positions := make([][3]float32, len(m.Vertices))
		normals := make([][3]float32, len(m.Vertices))
		colors := make([][4]float32, len(m.Vertices))
		hasAlpha := false
		for i, v := range m.Vertices {
			positions[i] = v.Position
			normals[i] = v.Normal
			rgba, err := voxel.ParseHexColor(g.Palette[v.Material])
			if err != nil {
				return err
			}
			colors[i] = rgba
			if rgba[3] < 1.0 {
				hasAlpha = true
			}
		}
		indices := make([]uint32, len(m.Indices))
		copy(indices, m.Indices)

		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: uint32(modeler.WritePosition(doc, positions)),
				gltf.NORMAL:   uint32(modeler.WriteNormal(doc, normals)),
				gltf.COLOR_0:  uint32(modeler.WriteColor(doc, colors)),
			},
			Indices: gltf.Index(uint32(modeler.WriteIndices(doc, indices))),
		}
		pbr := &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		}
		material := &gltf.Material{PBRMetallicRoughness: pbr}
		if hasAlpha {
			material.AlphaMode = gltf.AlphaBlend
		} else {
			material.AlphaMode = gltf.AlphaOpaque
		}
		doc.Materials = append(doc.Materials, material)
		prim.Material = gltf.Index(uint32(len(doc.Materials) - 1))

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
		return nil
	}

	if err := addMesh("main", g.BuildMainMesh()); err != nil {
		return nil, err
	}
	for _, r := range g.Regions() {
		if err := addMesh(r.Name, g.BuildRegionMesh(r.Name)); err != nil {
			return nil, err
		}
	}
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("snapshot contains no solid voxels")
	}

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
