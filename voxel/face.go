package voxel

// Face identifies one of the six cardinal voxel faces, plus the synthetic
// ground face used by the add-on-ground interaction mode. The cardinal
// order matches the mesher direction table and the pick-id face field.
type Face uint8

const (
	FacePlusX Face = iota
	FaceMinusX
	FacePlusY
	FaceMinusY
	FacePlusZ
	FaceMinusZ
	FaceGround

	NumFaces = 7
)

// faceDelta is the unit step from a voxel to its neighbor across each
// face. The ground face points up: it addresses the y=0 reference plane.
var faceDelta = [NumFaces][3]int{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
	{0, 1, 0},
}

// faceAxis is the normal axis of each face (0=x, 1=y, 2=z).
var faceAxis = [NumFaces]int{0, 0, 1, 1, 2, 2, 1}

func (f Face) String() string {
	switch f {
	case FacePlusX:
		return "+x"
	case FaceMinusX:
		return "-x"
	case FacePlusY:
		return "+y"
	case FaceMinusY:
		return "-y"
	case FacePlusZ:
		return "+z"
	case FaceMinusZ:
		return "-z"
	case FaceGround:
		return "ground"
	}
	return "invalid"
}

// FaceExposed reports whether the cardinal face f of the voxel at (x,y,z)
// is visible: the voxel is solid and its neighbor across f is out of
// bounds or empty. Chunk-boundary faces are therefore always exposed.
// The synthetic ground face is never exposed by a voxel.
func (g *Grid) FaceExposed(x, y, z int, f Face) bool {
	if f >= FaceGround {
		return false
	}
	if !g.solidAt(x, y, z) {
		return false
	}
	d := faceDelta[f]
	return !g.solidAt(x+d[0], y+d[1], z+d[2])
}
