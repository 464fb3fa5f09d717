package image

import "encoding/binary"

// RawInode mirrors the leading 56 bytes of the 256-byte packed on-disk
// inode record: every named field, ending with the four block pointers.
// Everything past the pointers is reserved and preserved verbatim.
type RawInode struct {
	Mode           uint32
	UID            uint32
	GID            uint32
	Size           uint32
	ATime          uint32
	CTime          uint32
	MTime          uint32
	DTime          uint32
	LinksCount     uint32
	BlocksCount    uint32
	Direct         uint32
	SingleIndirect uint32
	DoubleIndirect uint32
	TripleIndirect uint32
}

// inode field byte offsets within its 256-byte record.
const (
	offMode           = 0
	offUID            = 4
	offGID            = 8
	offSize           = 12
	offATime          = 16
	offCTime          = 20
	offMTime          = 24
	offDTime          = 28
	offLinksCount     = 32
	offBlocksCount    = 36
	offDirect         = 40
	offSingleIndirect = 44
	offDoubleIndirect = 48
	offTripleIndirect = 52
)

// PointerSlot names one of an inode's four top-level block pointers.
type PointerSlot int

const (
	SlotDirect PointerSlot = iota
	SlotSingleIndirect
	SlotDoubleIndirect
	SlotTripleIndirect
)

var pointerSlotOffsets = [4]int{
	offDirect, offSingleIndirect, offDoubleIndirect, offTripleIndirect,
}

// Inode is a mutable overlay onto one 256-byte record of the inode table,
// aliasing the shared image buffer.
type Inode struct {
	raw []byte // exactly InodeSize bytes
}

// LinksCount returns the inode's links_count field.
func (n Inode) LinksCount() uint32 { return binary.LittleEndian.Uint32(n.raw[offLinksCount:]) }

// SetLinksCount overwrites the inode's links_count field. The checker
// itself never calls this -- liveness is read-only input to the audit,
// per the invariant that bitmaps are derived from inodes and not the
// other way around -- but image fixtures need it to construct inodes in
// a known liveness state.
func (n Inode) SetLinksCount(v uint32) {
	binary.LittleEndian.PutUint32(n.raw[offLinksCount:], v)
}

// DTime returns the inode's dtime field.
func (n Inode) DTime() uint32 { return binary.LittleEndian.Uint32(n.raw[offDTime:]) }

// SetDTime overwrites the inode's dtime field. See SetLinksCount.
func (n Inode) SetDTime(v uint32) {
	binary.LittleEndian.PutUint32(n.raw[offDTime:], v)
}

// IsLive reports whether the inode is live: links_count > 0 && dtime == 0.
func (n Inode) IsLive() bool {
	return n.LinksCount() > 0 && n.DTime() == 0
}

// Pointer returns the top-level block number stored in the given slot.
func (n Inode) Pointer(slot PointerSlot) BlockNum {
	return BlockNum(binary.LittleEndian.Uint32(n.raw[pointerSlotOffsets[slot]:]))
}

// SetPointer overwrites the top-level block number stored in the given
// slot, e.g. to zero out a duplicate or bad-block reference during repair.
func (n Inode) SetPointer(slot PointerSlot, value BlockNum) {
	binary.LittleEndian.PutUint32(n.raw[pointerSlotOffsets[slot]:], uint32(value))
}

// Pointers returns all four top-level pointers in visitation order:
// direct, single-indirect, double-indirect, triple-indirect.
func (n Inode) Pointers() [4]BlockNum {
	return [4]BlockNum{
		n.Pointer(SlotDirect),
		n.Pointer(SlotSingleIndirect),
		n.Pointer(SlotDoubleIndirect),
		n.Pointer(SlotTripleIndirect),
	}
}
