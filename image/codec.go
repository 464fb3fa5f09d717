package image

import (
	"bytes"
	"encoding/binary"

	"github.com/noxer/bytewriter"
)

// EncodeSuperblock serializes sb into dst's first 34 bytes using the same
// binary.Write-over-a-byte-sink idiom the rest of the pack uses for
// packed records. Bytes past the encoded fields are left untouched, which
// is what lets callers build a superblock block without clobbering its
// reserved tail. dst must be at least BlockSize bytes.
func EncodeSuperblock(dst []byte, sb RawSuperblock) error {
	writer := bytewriter.New(dst)
	return binary.Write(writer, binary.LittleEndian, &sb)
}

// DecodeSuperblock reads a RawSuperblock snapshot out of raw, which must
// be at least one block.
func DecodeSuperblock(raw []byte) (RawSuperblock, error) {
	var sb RawSuperblock
	reader := bytes.NewReader(raw)
	err := binary.Read(reader, binary.LittleEndian, &sb)
	return sb, err
}

// EncodeInode serializes inode into dst's first 56 bytes, leaving the
// reserved tail of the 256-byte record untouched. dst must be at least
// InodeSize bytes.
func EncodeInode(dst []byte, inode RawInode) error {
	writer := bytewriter.New(dst)
	return binary.Write(writer, binary.LittleEndian, &inode)
}

// DecodeInode reads a RawInode snapshot out of raw, which must be at
// least InodeSize bytes.
func DecodeInode(raw []byte) (RawInode, error) {
	var inode RawInode
	reader := bytes.NewReader(raw)
	err := binary.Read(reader, binary.LittleEndian, &inode)
	return inode, err
}
