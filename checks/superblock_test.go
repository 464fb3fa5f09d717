package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dargueta/vsfsck/checks"
	"github.com/dargueta/vsfsck/image"
	"github.com/dargueta/vsfsck/internal/vsfsimage"
)

func TestSuperblock_Valid(t *testing.T) {
	img := vsfsimage.NewBlank(t)
	result := checks.Superblock(img, false)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Findings)
}

// S5 -- bad magic, every other field correct.
func TestSuperblock_BadMagic_Fix(t *testing.T) {
	img := vsfsimage.NewBlank(t)
	img.Superblock().SetMagic(0x0000)

	result := checks.Superblock(img, false)
	require.False(t, result.Valid)
	require.Len(t, result.Findings, 1)
	assert.Contains(t, result.Findings[0].Message, "Invalid magic number")

	fixed := checks.Superblock(img, true)
	assert.False(t, fixed.Valid, "the report reflects findings before the fix was applied")
	assert.Equal(t, uint16(image.RequiredMagic), img.Superblock().Magic())

	recheck := checks.Superblock(img, false)
	assert.True(t, recheck.Valid)
}

func TestSuperblock_MultipleMismatches(t *testing.T) {
	img := vsfsimage.NewBlank(t)
	sb := img.Superblock()
	sb.SetBlockSizeField(512)
	sb.SetInodeCountField(1)

	result := checks.Superblock(img, true)
	assert.Len(t, result.Findings, 2)
	assert.Equal(t, uint32(image.BlockSize), img.Superblock().BlockSizeField())
	assert.Equal(t, uint32(image.InodeCount), img.Superblock().InodeCountField())
}
