package checks

import (
	"fmt"

	"github.com/dargueta/vsfsck/image"
)

// BadBlocks finds block pointers that are >= TotalBlocks anywhere in a
// live inode's reachable pointer graph. Zero is allowed everywhere ("no
// block"). This pass does not enforce the tighter data-region lower
// bound (>= FirstDataBlock) that the duplicate pass and data-bitmap pass
// use -- a pointer into the superblock/bitmap/inode-table region (blocks
// 0-7) is bad-block-clean. That asymmetry is preserved by design.
func BadBlocks(img *image.Image, fix bool) *Result {
	w := &badBlockWalker{img: img, fix: fix, result: newResult("Bad Blocks")}

	for i := 0; i < image.InodeCount; i++ {
		inode := img.Inode(image.InodeNum(i))
		if !inode.IsLive() {
			continue
		}

		w.checkTopLevel(inode, image.SlotDirect, i, "direct block")
		w.checkTopLevel(inode, image.SlotSingleIndirect, i, "single indirect block")
		w.checkTopLevel(inode, image.SlotDoubleIndirect, i, "double indirect block")
		w.checkTopLevel(inode, image.SlotTripleIndirect, i, "triple indirect block")
	}

	return w.result
}

type badBlockWalker struct {
	img    *image.Image
	fix    bool
	result *Result
}

// checkTopLevel validates one of an inode's four top-level pointers. If
// it's bad, it's reported and zeroed (in repair mode); otherwise, if it's
// non-zero and names a container, its entries are validated recursively
// with the same rule.
func (w *badBlockWalker) checkTopLevel(inode image.Inode, slot image.PointerSlot, ownerIdx int, label string) {
	ptr := inode.Pointer(slot)

	if image.IsBadBlock(ptr) {
		w.result.report(fmt.Sprintf("Error: Inode %d has bad %s: %d", ownerIdx, label, ptr))
		if w.fix {
			inode.SetPointer(slot, 0)
		}
		return
	}

	if ptr == 0 {
		return
	}

	switch slot {
	case image.SlotSingleIndirect:
		w.checkLeaves(ptr, ownerIdx, "data block", "in single indirect block")
	case image.SlotDoubleIndirect:
		w.checkIntermediateLevel(ptr, ownerIdx, "in double indirect block")
	case image.SlotTripleIndirect:
		w.checkTripleLevel(ptr, ownerIdx)
	}
}

// checkLeaves validates every entry of a single-indirect container as a
// data-block leaf.
func (w *badBlockWalker) checkLeaves(containerBlock image.BlockNum, ownerIdx int, entityLabel, whereLabel string) {
	container := w.img.Container(containerBlock)
	for slot := 0; slot < image.PointersPerBlock; slot++ {
		entry := container.Entry(slot)
		if image.IsBadBlock(entry) {
			w.result.report(fmt.Sprintf(
				"Error: Inode %d has bad %s %d %s", ownerIdx, entityLabel, entry, whereLabel,
			))
			if w.fix {
				container.SetEntry(slot, 0)
			}
		}
	}
}

// checkIntermediateLevel validates every entry of a double-indirect
// container as a single-indirect container, then validates that
// container's own leaves if the entry itself was in range.
func (w *badBlockWalker) checkIntermediateLevel(doubleBlock image.BlockNum, ownerIdx int, whereLabel string) {
	container := w.img.Container(doubleBlock)
	for slot := 0; slot < image.PointersPerBlock; slot++ {
		entry := container.Entry(slot)
		if image.IsBadBlock(entry) {
			w.result.report(fmt.Sprintf(
				"Error: Inode %d has bad indirect block %d %s", ownerIdx, entry, whereLabel,
			))
			if w.fix {
				container.SetEntry(slot, 0)
			}
			continue
		}
		if entry != 0 {
			w.checkLeaves(entry, ownerIdx, "data block", "in double indirect block")
		}
	}
}

// checkTripleLevel validates every entry of a triple-indirect container
// as a double-indirect container, descending two more levels.
func (w *badBlockWalker) checkTripleLevel(tripleBlock image.BlockNum, ownerIdx int) {
	container := w.img.Container(tripleBlock)
	for slot := 0; slot < image.PointersPerBlock; slot++ {
		entry := container.Entry(slot)
		if image.IsBadBlock(entry) {
			w.result.report(fmt.Sprintf(
				"Error: Inode %d has bad double indirect block %d in triple indirect block", ownerIdx, entry,
			))
			if w.fix {
				container.SetEntry(slot, 0)
			}
			continue
		}
		if entry != 0 {
			w.checkIntermediateLevelLabeled(entry, ownerIdx)
		}
	}
}

// checkIntermediateLevelLabeled is checkIntermediateLevel specialized
// for the triple-indirect path, where the nested single-indirect
// container's own bad entries are worded as being found "in triple
// indirect block" rather than "in double indirect block".
func (w *badBlockWalker) checkIntermediateLevelLabeled(doubleBlock image.BlockNum, ownerIdx int) {
	container := w.img.Container(doubleBlock)
	for slot := 0; slot < image.PointersPerBlock; slot++ {
		entry := container.Entry(slot)
		if image.IsBadBlock(entry) {
			w.result.report(fmt.Sprintf(
				"Error: Inode %d has bad single indirect block %d in triple indirect block", ownerIdx, entry,
			))
			if w.fix {
				container.SetEntry(slot, 0)
			}
			continue
		}
		if entry != 0 {
			w.checkLeaves(entry, ownerIdx, "data block", "in triple indirect block")
		}
	}
}
