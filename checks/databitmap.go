package checks

import (
	"fmt"

	"github.com/dargueta/vsfsck/image"
)

// DataBitmap reconciles the data bitmap against the union of blocks
// directly referenced by live inodes' four top-level pointers.
//
// This pass treats a single/double/triple-indirect container block as
// referenced -- it marks the container's own slot -- but does not follow
// the container to mark the data blocks it in turn points to. That is
// the policy the original checker implements; the duplicate and
// bad-block passes do walk containers, this one deliberately doesn't.
func DataBitmap(img *image.Image, fix bool) *Result {
	result := newResult("Data Bitmap")

	var used [image.DataBlocksCount]bool
	for i := 0; i < image.InodeCount; i++ {
		inode := img.Inode(image.InodeNum(i))
		if !inode.IsLive() {
			continue
		}

		for _, ptr := range inode.Pointers() {
			if ptr != 0 && image.IsValidDataBlock(ptr) {
				used[ptr-image.FirstDataBlock] = true
			}
		}
	}

	bm := img.DataBitmap()
	for i := 0; i < image.DataBlocksCount; i++ {
		marked := bm.Get(i)
		blockNum := i + image.FirstDataBlock

		switch {
		case used[i] && !marked:
			result.report(fmt.Sprintf(
				"Error: Block %d is referenced by inode(s) but not marked used in data bitmap", blockNum,
			))
			if fix {
				bm.Set(i, true)
			}
		case !used[i] && marked:
			result.report(fmt.Sprintf(
				"Error: Block %d is marked used in data bitmap but not referenced by any inode", blockNum,
			))
			if fix {
				bm.Set(i, false)
			}
		}
	}

	return result
}
