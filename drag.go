package builder

// Drag coordinates a section drag gesture on the canvas or the layers list.
// It only computes the resulting id order; committing the order goes
// through the regular ReorderSections action so drags share validation,
// history, and persistence with every other edit.
type Drag struct {
	ActiveID string
}

// Begin starts a gesture for the given section id.
func (d *Drag) Begin(sectionID string) {
	d.ActiveID = sectionID
}

// Active reports whether a gesture is in flight.
func (d *Drag) Active() bool {
	return d.ActiveID != ""
}

// End completes the gesture over the given target section and returns the
// resulting id order, or nil when the drop is a no-op: no active gesture,
// no target, dropping a section onto itself, or either id missing from the
// current order (the section was removed mid-drag).
func (d *Drag) End(currentIDs []string, overID string) []string {
	activeID := d.ActiveID
	d.ActiveID = ""

	if activeID == "" || overID == "" || activeID == overID {
		return nil
	}
	from := indexOf(currentIDs, activeID)
	to := indexOf(currentIDs, overID)
	if from < 0 || to < 0 {
		return nil
	}
	return MoveID(currentIDs, from, to)
}

// Cancel abandons the gesture without producing an order.
func (d *Drag) Cancel() {
	d.ActiveID = ""
}

// MoveID returns a copy of ids with the element at from moved to to,
// shifting the elements between them by one. Out-of-range indices return
// the input order unchanged.
func MoveID(ids []string, from, to int) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	if from < to {
		copy(out[from:], out[from+1:to+1])
	} else {
		copy(out[to+1:], out[to:from])
	}
	out[to] = moved
	return out
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}
