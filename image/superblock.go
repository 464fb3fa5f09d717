package image

import (
	"encoding/binary"
)

// RawSuperblock is the packed, little-endian layout of block 0. Reserved
// bytes are never interpreted and must be preserved verbatim across a
// read-modify-write cycle.
type RawSuperblock struct {
	Magic            uint16
	BlockSize        uint32
	TotalBlocks      uint32
	InodeBitmapBlock uint32
	DataBitmapBlock  uint32
	InodeTableStart  uint32
	FirstDataBlock   uint32
	InodeSize        uint32
	InodeCount       uint32
}

// superblock field byte offsets within block 0, matching RawSuperblock's
// packed layout with no padding.
const (
	offMagic            = 0
	offBlockSize        = 2
	offTotalBlocks      = 6
	offInodeBitmapBlock = 10
	offDataBitmapBlock  = 14
	offInodeTableStart  = 18
	offFirstDataBlock   = 22
	offInodeSize        = 26
	offInodeCount       = 30
)

// Superblock is a mutable overlay onto block 0 of the shared image buffer.
// Every getter/setter reads or writes directly into that buffer, so
// changes are visible to every later pass without an explicit flush.
type Superblock struct {
	raw []byte // exactly BlockSize bytes, aliasing the image buffer
}

func (s Superblock) Magic() uint16 { return binary.LittleEndian.Uint16(s.raw[offMagic:]) }
func (s Superblock) SetMagic(v uint16) {
	binary.LittleEndian.PutUint16(s.raw[offMagic:], v)
}

func (s Superblock) BlockSizeField() uint32 { return binary.LittleEndian.Uint32(s.raw[offBlockSize:]) }
func (s Superblock) SetBlockSizeField(v uint32) {
	binary.LittleEndian.PutUint32(s.raw[offBlockSize:], v)
}

func (s Superblock) TotalBlocksField() uint32 {
	return binary.LittleEndian.Uint32(s.raw[offTotalBlocks:])
}
func (s Superblock) SetTotalBlocksField(v uint32) {
	binary.LittleEndian.PutUint32(s.raw[offTotalBlocks:], v)
}

func (s Superblock) InodeBitmapBlockField() uint32 {
	return binary.LittleEndian.Uint32(s.raw[offInodeBitmapBlock:])
}
func (s Superblock) SetInodeBitmapBlockField(v uint32) {
	binary.LittleEndian.PutUint32(s.raw[offInodeBitmapBlock:], v)
}

func (s Superblock) DataBitmapBlockField() uint32 {
	return binary.LittleEndian.Uint32(s.raw[offDataBitmapBlock:])
}
func (s Superblock) SetDataBitmapBlockField(v uint32) {
	binary.LittleEndian.PutUint32(s.raw[offDataBitmapBlock:], v)
}

func (s Superblock) InodeTableStartField() uint32 {
	return binary.LittleEndian.Uint32(s.raw[offInodeTableStart:])
}
func (s Superblock) SetInodeTableStartField(v uint32) {
	binary.LittleEndian.PutUint32(s.raw[offInodeTableStart:], v)
}

func (s Superblock) FirstDataBlockField() uint32 {
	return binary.LittleEndian.Uint32(s.raw[offFirstDataBlock:])
}
func (s Superblock) SetFirstDataBlockField(v uint32) {
	binary.LittleEndian.PutUint32(s.raw[offFirstDataBlock:], v)
}

func (s Superblock) InodeSizeField() uint32 { return binary.LittleEndian.Uint32(s.raw[offInodeSize:]) }
func (s Superblock) SetInodeSizeField(v uint32) {
	binary.LittleEndian.PutUint32(s.raw[offInodeSize:], v)
}

func (s Superblock) InodeCountField() uint32 {
	return binary.LittleEndian.Uint32(s.raw[offInodeCount:])
}
func (s Superblock) SetInodeCountField(v uint32) {
	binary.LittleEndian.PutUint32(s.raw[offInodeCount:], v)
}
