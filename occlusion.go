package sapling

import "github.com/bits-and-blooms/bitset"

// computeOcclusion rebuilds the occlusion bitmap from the current registry.
//
// The ascending registry is split into layers of equal z-order. A visible,
// non-occluded control in a layer occludes every control in a strictly lower
// layer whose rectangle it fully encloses. Controls that share a layer never
// occlude each other, so the base layer (z 0 in a typical window) is never
// tested against itself. Only full containment counts; partial overlap is
// ignored.
//
// Layers are visited from the top down so that a control's own bit is final
// before it is used to skip it as an occluder.
func (w *Window) computeOcclusion() {
	n := len(w.controls)
	if w.occluded.Len() != uint(n) {
		// One bit per registry slot.
		w.occluded = bitset.New(uint(n))
	} else {
		w.occluded.ClearAll()
	}
	w.occlusionDirty = false

	if n < 2 {
		return
	}

	// Walk layer boundaries from the top. end is one past the current layer's
	// last control; start is its first.
	end := n
	for end > 0 {
		z := w.controls[end-1].Base().zOrder
		start := end - 1
		for start > 0 && w.controls[start-1].Base().zOrder == z {
			start--
		}
		if start == 0 {
			// Lowest layer: nothing beneath it.
			break
		}
		for top := start; top < end; top++ {
			if w.occluded.Test(uint(top)) {
				continue
			}
			tb := w.controls[top].Base()
			if tb.hidden {
				continue
			}
			for bottom := 0; bottom < start; bottom++ {
				if tb.loc.Encloses(w.controls[bottom].Base().loc) {
					w.occluded.Set(uint(bottom))
				}
			}
		}
		end = start
	}
}

// ensureOcclusion recomputes the bitmap when the registry, geometry, z-order
// or hidden state changed since the last pass.
func (w *Window) ensureOcclusion() {
	if w.occlusionDirty || w.occluded.Len() != uint(len(w.controls)) {
		w.computeOcclusion()
	}
}

// IsOccluded reports whether c was fully covered by a higher control at the
// last occlusion pass.
func (w *Window) IsOccluded(c Control) bool {
	w.ensureOcclusion()
	i := w.indexOf(c)
	return i >= 0 && w.occluded.Test(uint(i))
}

// OccludedCount returns how many controls the last pass marked occluded.
func (w *Window) OccludedCount() int {
	return int(w.occluded.Count())
}

func (w *Window) isOccludedAt(i int) bool {
	return w.occluded.Test(uint(i))
}
