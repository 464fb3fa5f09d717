package image

import (
	"github.com/boljen/go-bitmap"
	"github.com/dargueta/vsfsck/checkerr"
)

// Image binds a raw VSFS image buffer to typed, block-indexed overlays.
// Every overlay aliases the same underlying buffer: a write through an
// overlay is visible to every subsequently-obtained overlay and to every
// later audit pass. Image never retains the buffer beyond the caller's
// own lifetime and performs no validation beyond the size check in Bind.
type Image struct {
	data []byte // exactly TotalImageSize bytes
}

// Bind wraps buf as a VSFS image. It fails with checkerr.ErrImageSizeMismatch
// if buf is not exactly TotalImageSize bytes; it performs no other
// validation.
func Bind(buf []byte) (*Image, error) {
	if len(buf) != TotalImageSize {
		return nil, checkerr.ErrImageSizeMismatch
	}
	return &Image{data: buf}, nil
}

// Bytes returns the raw backing buffer. Callers must not change its
// length; in-place mutation through the typed overlays is the supported
// way to modify the image.
func (img *Image) Bytes() []byte {
	return img.data
}

// Block returns the BlockSize-byte region of the image for block n. It
// panics if n is out of [0, TotalBlocks) -- callers are expected to
// range-check block numbers themselves before calling Block, since every
// legitimate caller in this repo already has to do that to classify a
// pointer as bad or in-range.
func (img *Image) Block(n BlockNum) []byte {
	start := int(n) * BlockSize
	return img.data[start : start+BlockSize]
}

// Superblock returns the mutable overlay onto block 0.
func (img *Image) Superblock() Superblock {
	return Superblock{raw: img.Block(SuperblockNum)}
}

// InodeBitmap returns the inode bitmap as a github.com/boljen/go-bitmap
// Bitmap backed directly by block 1's bytes; Get/Set operate on the live
// image buffer.
func (img *Image) InodeBitmap() bitmap.Bitmap {
	return bitmap.Bitmap(img.Block(InodeBitmapBlock))
}

// DataBitmap returns the data bitmap as a github.com/boljen/go-bitmap
// Bitmap backed directly by block 2's bytes, indexed relative to
// FirstDataBlock: bit 0 tracks block FirstDataBlock.
func (img *Image) DataBitmap() bitmap.Bitmap {
	return bitmap.Bitmap(img.Block(DataBitmapBlock))
}

// Inode returns the mutable overlay onto inode i's 256-byte record. It
// panics if i is out of [0, InodeCount).
func (img *Image) Inode(i InodeNum) Inode {
	if i >= InodeCount {
		panic("image: inode number out of range")
	}
	start := InodeTableStart*BlockSize + int(i)*InodeSize
	return Inode{raw: img.data[start : start+InodeSize]}
}

// Container returns the mutable overlay onto indirect block b's array of
// PointersPerBlock entries. Callers must have already validated that b is
// a legal, in-range block number.
func (img *Image) Container(b BlockNum) Container {
	return Container{raw: img.Block(b)}
}

// IsValidDataBlock reports whether b lies in the data region
// [FirstDataBlock, TotalBlocks).
func IsValidDataBlock(b BlockNum) bool {
	return b >= FirstDataBlock && b < TotalBlocks
}

// IsBadBlock reports whether b is outside the legal block range
// [0, TotalBlocks). Zero is never bad; it means "absent".
func IsBadBlock(b BlockNum) bool {
	return b >= TotalBlocks
}
