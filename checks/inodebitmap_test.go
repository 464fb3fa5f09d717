package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dargueta/vsfsck/checks"
	"github.com/dargueta/vsfsck/internal/vsfsimage"
)

// S2 -- stale bitmap: a live inode whose bitmap bit was cleared out from
// under it.
func TestInodeBitmap_LiveButNotMarked(t *testing.T) {
	img := vsfsimage.NewSingleFileClean(t)
	vsfsimage.MarkInodeBitmap(img, 0, false)

	result := checks.InodeBitmap(img, false)
	require.False(t, result.Valid)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "Error: Inode 0 is valid but not marked used in inode bitmap", result.Findings[0].Message)

	fixed := checks.InodeBitmap(img, true)
	assert.False(t, fixed.Valid)
	assert.True(t, img.InodeBitmap().Get(0))

	recheck := checks.InodeBitmap(img, false)
	assert.True(t, recheck.Valid)
}

func TestInodeBitmap_FreeButMarked(t *testing.T) {
	img := vsfsimage.NewBlank(t)
	vsfsimage.MarkInodeBitmap(img, 3, true)

	result := checks.InodeBitmap(img, true)
	require.False(t, result.Valid)
	assert.Equal(t, "Error: Inode 3 is invalid but marked used in inode bitmap", result.Findings[0].Message)
	assert.False(t, img.InodeBitmap().Get(3))
}

func TestInodeBitmap_NeverTouchesInodeFields(t *testing.T) {
	img := vsfsimage.NewSingleFileClean(t)
	vsfsimage.MarkInodeBitmap(img, 0, false)

	checks.InodeBitmap(img, true)

	assert.True(t, img.Inode(0).IsLive(), "repairing the bitmap must never touch the inode's own fields")
}
