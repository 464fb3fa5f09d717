package image

import "encoding/binary"

// Container is a mutable overlay onto an indirect block: an array of
// PointersPerBlock (1024) 32-bit block numbers, aliasing the shared image
// buffer.
type Container struct {
	raw []byte // exactly BlockSize bytes
}

// Entry returns the block number stored at the given slot.
func (c Container) Entry(slot int) BlockNum {
	return BlockNum(binary.LittleEndian.Uint32(c.raw[slot*4:]))
}

// SetEntry overwrites the block number stored at the given slot.
func (c Container) SetEntry(slot int, value BlockNum) {
	binary.LittleEndian.PutUint32(c.raw[slot*4:], uint32(value))
}
