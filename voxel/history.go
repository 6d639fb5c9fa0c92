package voxel

// VoxelDiff is one recorded cell mutation with enough state to replay it
// in either direction.
type VoxelDiff struct {
	Index        int
	FromSolid    bool
	ToSolid      bool
	FromMaterial uint8
	ToMaterial   uint8
}

// PaletteDiff is one recorded palette-slot color change.
type PaletteDiff struct {
	Slot     int
	From, To string
}

// Action is one committed batch of edits. Mutations apply to the grid as
// they are recorded, not at commit time, so a half-recorded action leaves
// the grid half mutated; nothing reads concurrently in this model.
type Action struct {
	Label   string
	voxels  []VoxelDiff
	palette []PaletteDiff
}

// Empty reports whether the action recorded no effective change.
func (a *Action) Empty() bool { return len(a.voxels) == 0 && len(a.palette) == 0 }

// History keeps undo/redo stacks of committed actions over one grid.
// It never triggers mesh regeneration; callers rebuild after any replay.
type History struct {
	grid *Grid
	undo []*Action
	redo []*Action
}

// NewHistory binds an empty history to the grid.
func NewHistory(g *Grid) *History { return &History{grid: g} }

// Begin opens a new empty action.
func (h *History) Begin(label string) *Action { return &Action{Label: label} }

// RecordChange compares the requested cell state to the current one,
// no-ops when nothing changes, and otherwise records the diff and applies
// the mutation immediately.
func (h *History) RecordChange(a *Action, index int, solid bool, material uint8) {
	material &= MaterialMask
	fromSolid := h.grid.Solid(index)
	fromMaterial := h.grid.Material(index)
	if fromSolid == solid && fromMaterial == material {
		return
	}
	a.voxels = append(a.voxels, VoxelDiff{
		Index:        index,
		FromSolid:    fromSolid,
		ToSolid:      solid,
		FromMaterial: fromMaterial,
		ToMaterial:   material,
	})
	h.grid.SetSolid(index, solid)
	h.grid.SetMaterial(index, material)
}

// RecordPalette records and applies a palette-slot color change, no-oping
// when the slot already holds the color.
func (h *History) RecordPalette(a *Action, slot int, color string) {
	from := h.grid.Palette[slot]
	if from == color {
		return
	}
	a.palette = append(a.palette, PaletteDiff{Slot: slot, From: from, To: color})
	h.grid.Palette[slot] = color
}

// Commit pushes the action onto the undo stack and clears the redo stack.
// Actions with no diffs are discarded.
func (h *History) Commit(a *Action) {
	if a.Empty() {
		return
	}
	h.undo = append(h.undo, a)
	h.redo = h.redo[:0]
}

// Undo replays the newest committed action's "from" values and moves it
// to the redo stack. On an empty stack it is a silent no-op.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	a := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	// Reverse order, so repeated diffs on one cell unwind correctly.
	for i := len(a.voxels) - 1; i >= 0; i-- {
		d := a.voxels[i]
		h.grid.SetSolid(d.Index, d.FromSolid)
		h.grid.SetMaterial(d.Index, d.FromMaterial)
	}
	for i := len(a.palette) - 1; i >= 0; i-- {
		d := a.palette[i]
		h.grid.Palette[d.Slot] = d.From
	}
	h.redo = append(h.redo, a)
	return true
}

// Redo replays the newest undone action's "to" values and moves it back
// to the undo stack. On an empty stack it is a silent no-op.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	a := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	for _, d := range a.voxels {
		h.grid.SetSolid(d.Index, d.ToSolid)
		h.grid.SetMaterial(d.Index, d.ToMaterial)
	}
	for _, d := range a.palette {
		h.grid.Palette[d.Slot] = d.To
	}
	h.undo = append(h.undo, a)
	return true
}

// UndoDepth returns the number of undoable actions.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of redoable actions.
func (h *History) RedoDepth() int { return len(h.redo) }
