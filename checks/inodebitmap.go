package checks

import (
	"fmt"

	"github.com/dargueta/vsfsck/image"
)

// InodeBitmap reconciles the inode bitmap against each inode's own
// liveness. The inode's links_count/dtime fields are never modified --
// they're the authoritative signal, the bitmap is the derived cache.
func InodeBitmap(img *image.Image, fix bool) *Result {
	result := newResult("Inode Bitmap")
	bm := img.InodeBitmap()

	for i := 0; i < image.InodeCount; i++ {
		live := img.Inode(image.InodeNum(i)).IsLive()
		marked := bm.Get(i)

		switch {
		case live && !marked:
			result.report(fmt.Sprintf("Error: Inode %d is valid but not marked used in inode bitmap", i))
			if fix {
				bm.Set(i, true)
			}
		case !live && marked:
			result.report(fmt.Sprintf("Error: Inode %d is invalid but marked used in inode bitmap", i))
			if fix {
				bm.Set(i, false)
			}
		}
	}

	return result
}
