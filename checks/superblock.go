package checks

import (
	"fmt"

	"github.com/dargueta/vsfsck/image"
)

// superblockField names one of the nine declared layout constants, pairs
// it with the accessor/mutator into the live overlay, and the required
// value from the data model.
type superblockField struct {
	name     string
	hex      bool
	get      func(image.Superblock) uint32
	set      func(image.Superblock, uint32)
	required uint32
}

var superblockFields = []superblockField{
	{
		name:     "magic number",
		hex:      true,
		get:      func(s image.Superblock) uint32 { return uint32(s.Magic()) },
		set:      func(s image.Superblock, v uint32) { s.SetMagic(uint16(v)) },
		required: image.RequiredMagic,
	},
	{
		name:     "block size",
		get:      image.Superblock.BlockSizeField,
		set:      image.Superblock.SetBlockSizeField,
		required: image.BlockSize,
	},
	{
		name:     "total blocks",
		get:      image.Superblock.TotalBlocksField,
		set:      image.Superblock.SetTotalBlocksField,
		required: image.TotalBlocks,
	},
	{
		name:     "inode bitmap block",
		get:      image.Superblock.InodeBitmapBlockField,
		set:      image.Superblock.SetInodeBitmapBlockField,
		required: image.InodeBitmapBlock,
	},
	{
		name:     "data bitmap block",
		get:      image.Superblock.DataBitmapBlockField,
		set:      image.Superblock.SetDataBitmapBlockField,
		required: image.DataBitmapBlock,
	},
	{
		name:     "inode table start block",
		get:      image.Superblock.InodeTableStartField,
		set:      image.Superblock.SetInodeTableStartField,
		required: image.InodeTableStart,
	},
	{
		name:     "first data block",
		get:      image.Superblock.FirstDataBlockField,
		set:      image.Superblock.SetFirstDataBlockField,
		required: image.FirstDataBlock,
	},
	{
		name:     "inode size",
		get:      image.Superblock.InodeSizeField,
		set:      image.Superblock.SetInodeSizeField,
		required: image.InodeSize,
	},
	{
		name:     "inode count",
		get:      image.Superblock.InodeCountField,
		set:      image.Superblock.SetInodeCountField,
		required: image.InodeCount,
	},
}

// Superblock compares each of the nine declared layout constants against
// the superblock overlay's current value. On a mismatch it reports one
// finding; in repair mode it unconditionally overwrites the field with
// its required value, since the constants are fixed by the VSFS format
// and cannot be negotiated.
func Superblock(img *image.Image, fix bool) *Result {
	result := newResult("Superblock")
	sb := img.Superblock()

	for _, field := range superblockFields {
		got := field.get(sb)
		if got == field.required {
			continue
		}

		var message string
		if field.hex {
			message = fmt.Sprintf(
				"Error: Invalid %s (0x%04X). Expected 0x%04X", field.name, got, field.required,
			)
		} else {
			message = fmt.Sprintf(
				"Error: Invalid %s (%d). Expected %d", field.name, got, field.required,
			)
		}
		result.report(message)
		if fix {
			field.set(sb, field.required)
		}
	}

	return result
}
