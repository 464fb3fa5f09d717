// Package vsfsimage builds synthetic, in-memory VSFS images for tests
// across the checks and report packages, the way the teacher repo's
// testing package builds disk images for its own driver tests.
package vsfsimage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dargueta/vsfsck/image"
)

// NewBlank returns a TotalImageSize-byte image with a fully correct
// superblock and every other region zeroed (no live inodes, both
// bitmaps clear).
func NewBlank(t *testing.T) *image.Image {
	buf := make([]byte, image.TotalImageSize)
	img, err := image.Bind(buf)
	require.NoError(t, err, "failed to bind a blank image buffer")

	sb := img.Superblock()
	sb.SetMagic(image.RequiredMagic)
	sb.SetBlockSizeField(image.BlockSize)
	sb.SetTotalBlocksField(image.TotalBlocks)
	sb.SetInodeBitmapBlockField(image.InodeBitmapBlock)
	sb.SetDataBitmapBlockField(image.DataBitmapBlock)
	sb.SetInodeTableStartField(image.InodeTableStart)
	sb.SetFirstDataBlockField(image.FirstDataBlock)
	sb.SetInodeSizeField(image.InodeSize)
	sb.SetInodeCountField(image.InodeCount)

	return img
}

// MakeLive marks inode i live (links_count = 1, dtime = 0) and returns
// its overlay for further mutation (setting pointers, etc.).
func MakeLive(img *image.Image, i image.InodeNum) image.Inode {
	inode := img.Inode(i)
	inode.SetLinksCount(1)
	inode.SetDTime(0)
	return inode
}

// MarkInodeBitmap sets or clears inode i's bit in the inode bitmap
// without touching anything else.
func MarkInodeBitmap(img *image.Image, i image.InodeNum, used bool) {
	img.InodeBitmap().Set(int(i), used)
}

// MarkDataBitmap sets or clears data block b's bit in the data bitmap.
// b is an absolute block number; the bit index is b - FirstDataBlock.
func MarkDataBitmap(img *image.Image, b image.BlockNum, used bool) {
	img.DataBitmap().Set(int(b)-image.FirstDataBlock, used)
}

// NewSingleFileClean builds the "S1" scenario: one live inode (inode 0)
// with a direct pointer at block 8, both bitmaps correctly reflecting it,
// and an otherwise-correct superblock. Every pass should report the
// image valid.
func NewSingleFileClean(t *testing.T) *image.Image {
	img := NewBlank(t)

	inode := MakeLive(img, 0)
	inode.SetPointer(image.SlotDirect, image.FirstDataBlock)

	MarkInodeBitmap(img, 0, true)
	MarkDataBitmap(img, image.FirstDataBlock, true)

	return img
}
