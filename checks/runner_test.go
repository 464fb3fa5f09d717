package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dargueta/vsfsck/checks"
	"github.com/dargueta/vsfsck/image"
	"github.com/dargueta/vsfsck/internal/vsfsimage"
)

// S1 -- a clean image passes every pass and never triggers a re-audit.
func TestRun_CleanImage(t *testing.T) {
	img := vsfsimage.NewSingleFileClean(t)

	report := checks.Run(img, false)
	assert.True(t, report.Valid())
	assert.False(t, report.Repaired())
	assert.True(t, report.PostFixValid())
	for _, pass := range report.Passes {
		assert.Empty(t, pass.Findings, pass.Name)
	}
}

// S2 -- a stale inode bitmap is repaired and the re-audit comes back clean.
func TestRun_StaleBitmap_RepairedCleanly(t *testing.T) {
	img := vsfsimage.NewSingleFileClean(t)
	vsfsimage.MarkInodeBitmap(img, 0, false)

	report := checks.Run(img, true)
	require.True(t, report.Repaired())
	assert.False(t, report.Valid())
	assert.True(t, report.PostFixValid())
}

// S3 -- a bad direct pointer is repaired and the re-audit comes back clean.
func TestRun_BadDirectPointer_RepairedCleanly(t *testing.T) {
	img := vsfsimage.NewBlank(t)
	inode := vsfsimage.MakeLive(img, 0)
	inode.SetPointer(image.SlotDirect, image.TotalBlocks+1)
	vsfsimage.MarkInodeBitmap(img, 0, true)

	report := checks.Run(img, true)
	require.True(t, report.Repaired())
	assert.True(t, report.PostFixValid())
	assert.Equal(t, image.BlockNum(0), inode.Pointer(image.SlotDirect))
}

// S4 -- a direct-block duplicate across two live inodes is repaired and
// the data bitmap re-converges on the single remaining reference.
func TestRun_DuplicateDirectBlock_RepairedCleanly(t *testing.T) {
	img := vsfsimage.NewBlank(t)
	first := vsfsimage.MakeLive(img, 0)
	first.SetPointer(image.SlotDirect, image.FirstDataBlock)
	second := vsfsimage.MakeLive(img, 1)
	second.SetPointer(image.SlotDirect, image.FirstDataBlock)
	vsfsimage.MarkInodeBitmap(img, 0, true)
	vsfsimage.MarkInodeBitmap(img, 1, true)
	vsfsimage.MarkDataBitmap(img, image.FirstDataBlock, true)

	report := checks.Run(img, true)
	require.True(t, report.Repaired())
	assert.True(t, report.PostFixValid())
	assert.Equal(t, image.BlockNum(image.FirstDataBlock), first.Pointer(image.SlotDirect))
	assert.Equal(t, image.BlockNum(0), second.Pointer(image.SlotDirect))
}

// S5 -- a corrupt magic number is repaired independently of every other pass.
func TestRun_BadMagic_RepairedCleanly(t *testing.T) {
	img := vsfsimage.NewSingleFileClean(t)
	img.Superblock().SetMagic(0)

	report := checks.Run(img, true)
	require.True(t, report.Repaired())
	assert.True(t, report.PostFixValid())
	assert.Equal(t, uint16(image.RequiredMagic), img.Superblock().Magic())
}

// A live inode missing from both bitmaps has both bitmaps repaired in the
// same run, each by its own reconciler, and the re-audit comes back clean.
func TestRun_RepairsBothBitmapsWithinOneRun(t *testing.T) {
	img := vsfsimage.NewBlank(t)
	inode := vsfsimage.MakeLive(img, 0)
	inode.SetPointer(image.SlotDirect, image.FirstDataBlock)
	// Neither bitmap reflects the live inode yet.

	report := checks.Run(img, true)
	require.True(t, report.Repaired())
	assert.True(t, img.InodeBitmap().Get(0))
	assert.True(t, img.DataBitmap().Get(0))
	assert.True(t, report.PostFixValid())
}

// Check-only mode (fix=false) never mutates the image and never triggers
// a re-audit, even when findings are reported.
func TestRun_CheckOnlyMode_NeverMutates(t *testing.T) {
	img := vsfsimage.NewSingleFileClean(t)
	vsfsimage.MarkInodeBitmap(img, 0, false)

	report := checks.Run(img, false)
	assert.False(t, report.Valid())
	assert.False(t, report.Repaired())
	assert.False(t, img.InodeBitmap().Get(0), "check-only mode must not write back any repair")
}
