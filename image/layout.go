// Package image binds a raw VSFS image buffer to typed, mutable overlays
// for its four logical regions, and exposes block-indexed access. It
// performs no consistency validation beyond checking the overall image
// size -- that's the job of the checks package.
package image

// BlockSize is the fixed size, in bytes, of a single VSFS block.
const BlockSize = 4096

// TotalBlocks is the fixed number of blocks in a VSFS image.
const TotalBlocks = 64

// Layout block numbers, fixed by the VSFS format.
const (
	SuperblockNum    = 0
	InodeBitmapBlock = 1
	DataBitmapBlock  = 2
	InodeTableStart  = 3
	InodeTableBlocks = 5
	FirstDataBlock   = 8
	DataBlocksCount  = TotalBlocks - FirstDataBlock
)

// RequiredMagic is the superblock magic number VSFS images must carry.
const RequiredMagic = 0xD34D

// InodeSize is the fixed, packed size of one on-disk inode record.
const InodeSize = 256

// InodeCount is the fixed number of inode slots in the inode table:
// InodeTableBlocks * BlockSize / InodeSize.
const InodeCount = InodeTableBlocks * BlockSize / InodeSize

// PointersPerBlock is the number of 32-bit block numbers that fit in one
// indirect container block: BlockSize / 4.
const PointersPerBlock = BlockSize / 4

// BlockNum identifies a block by its zero-based index into the image.
type BlockNum uint32

// InodeNum identifies an inode by its zero-based index into the inode
// table.
type InodeNum uint32

// TotalImageSize is the exact expected length of a VSFS image file.
const TotalImageSize = TotalBlocks * BlockSize
