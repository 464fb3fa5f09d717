package checks

import (
	"fmt"

	"github.com/dargueta/vsfsck/image"
)

// duplicateWalker carries the reference-count and reverse-owner tables
// for one invocation of the Duplicates pass. A fresh walker must be used
// on every call -- in particular the repair re-audit -- so stale state
// never leaks between runs.
type duplicateWalker struct {
	img    *image.Image
	fix    bool
	seen   [image.TotalBlocks]bool
	owner  [image.TotalBlocks]int
	result *Result
}

// visit applies the visit rule to pointer b, which inode ownerIdx's
// pointer graph referenced at some slot described by zero (the closure
// that clears that slot, used only if a repair is needed). label, if
// non-empty, is appended to the diagnostic to identify a top-level
// indirect pointer the way the original checker does; recursive entries
// inside containers are reported without a label. visit returns true iff
// this is the first time b has been seen, in which case -- and only in
// which case -- the caller should recurse into b if it's a container.
func (w *duplicateWalker) visit(b image.BlockNum, ownerIdx int, label string, zero func()) bool {
	if !image.IsValidDataBlock(b) {
		return false
	}

	if w.seen[b] {
		w.result.report(fmt.Sprintf(
			"Error: Block %d%s is referenced by inode %d and inode %d",
			b, label, w.owner[b], ownerIdx,
		))
		if w.fix {
			zero()
		}
		return false
	}

	w.seen[b] = true
	w.owner[b] = ownerIdx
	return true
}

// Duplicates finds blocks referenced by more than one live inode, or
// referenced more than once by the same inode, by walking each live
// inode's pointer graph in a fixed order: direct, single-indirect,
// double-indirect, triple-indirect. The first inode (in ascending index
// order) to reference a block keeps it; every later reference is zeroed
// in repair mode. seen/owner are reset on every call, per the source's
// contract that a duplicate-block scan never carries state across runs.
func Duplicates(img *image.Image, fix bool) *Result {
	w := &duplicateWalker{img: img, fix: fix, result: newResult("Duplicate Blocks")}

	for i := 0; i < image.InodeCount; i++ {
		inode := img.Inode(image.InodeNum(i))
		if !inode.IsLive() {
			continue
		}

		direct := inode.Pointer(image.SlotDirect)
		if direct != 0 {
			w.visit(direct, i, "", func() { inode.SetPointer(image.SlotDirect, 0) })
		}

		single := inode.Pointer(image.SlotSingleIndirect)
		if single != 0 {
			if w.visit(single, i, " (single indirect)", func() { inode.SetPointer(image.SlotSingleIndirect, 0) }) {
				w.walkLeaves(single, i)
			}
		}

		double := inode.Pointer(image.SlotDoubleIndirect)
		if double != 0 {
			if w.visit(double, i, " (double indirect)", func() { inode.SetPointer(image.SlotDoubleIndirect, 0) }) {
				w.walkSingleIndirectLevel(double, i)
			}
		}

		triple := inode.Pointer(image.SlotTripleIndirect)
		if triple != 0 {
			if w.visit(triple, i, " (triple indirect)", func() { inode.SetPointer(image.SlotTripleIndirect, 0) }) {
				w.walkDoubleIndirectLevel(triple, i)
			}
		}
	}

	return w.result
}

// walkLeaves visits every non-zero entry of a single-indirect container
// as a data leaf.
func (w *duplicateWalker) walkLeaves(containerBlock image.BlockNum, ownerIdx int) {
	container := w.img.Container(containerBlock)
	for slot := 0; slot < image.PointersPerBlock; slot++ {
		leaf := container.Entry(slot)
		if leaf == 0 {
			continue
		}
		slotCopy := slot
		w.visit(leaf, ownerIdx, "", func() { container.SetEntry(slotCopy, 0) })
	}
}

// walkSingleIndirectLevel visits every non-zero entry of a double-
// indirect container as a single-indirect container, descending into
// each fresh one's leaves.
func (w *duplicateWalker) walkSingleIndirectLevel(doubleBlock image.BlockNum, ownerIdx int) {
	container := w.img.Container(doubleBlock)
	for slot := 0; slot < image.PointersPerBlock; slot++ {
		single := container.Entry(slot)
		if single == 0 {
			continue
		}
		slotCopy := slot
		if w.visit(single, ownerIdx, "", func() { container.SetEntry(slotCopy, 0) }) {
			w.walkLeaves(single, ownerIdx)
		}
	}
}

// walkDoubleIndirectLevel visits every non-zero entry of a triple-
// indirect container as a double-indirect container, descending two
// more levels for each fresh one.
func (w *duplicateWalker) walkDoubleIndirectLevel(tripleBlock image.BlockNum, ownerIdx int) {
	container := w.img.Container(tripleBlock)
	for slot := 0; slot < image.PointersPerBlock; slot++ {
		double := container.Entry(slot)
		if double == 0 {
			continue
		}
		slotCopy := slot
		if w.visit(double, ownerIdx, "", func() { container.SetEntry(slotCopy, 0) }) {
			w.walkSingleIndirectLevel(double, ownerIdx)
		}
	}
}
