package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dargueta/vsfsck/checks"
	"github.com/dargueta/vsfsck/internal/vsfsimage"
	"github.com/dargueta/vsfsck/report"
)

func TestBanner_ModeWording(t *testing.T) {
	var buf bytes.Buffer
	p := &report.Printer{Out: &buf}

	p.Banner("/tmp/disk.img", false)
	assert.Contains(t, buf.String(), "Mode: Check only")

	buf.Reset()
	p.Banner("/tmp/disk.img", true)
	assert.Contains(t, buf.String(), "Mode: Check and fix")
	assert.Contains(t, buf.String(), "File system image: /tmp/disk.img")
}

func TestPass_QuietSuppressesFindings(t *testing.T) {
	result := &checks.Result{Name: "Superblock", Findings: []checks.Finding{{Message: "Error: Invalid magic number"}}}

	var buf bytes.Buffer
	p := &report.Printer{Out: &buf, Quiet: true}
	p.Pass(result)

	output := buf.String()
	assert.Contains(t, output, "Superblock Validation")
	assert.NotContains(t, output, "Invalid magic number")
}

func TestPass_PrintsFindingsWhenNotQuiet(t *testing.T) {
	result := &checks.Result{Name: "Bad Blocks", Findings: []checks.Finding{{Message: "Error: Inode 0 has bad direct block: 99"}}}

	var buf bytes.Buffer
	p := &report.Printer{Out: &buf}
	p.Pass(result)

	assert.Contains(t, buf.String(), "Error: Inode 0 has bad direct block: 99")
}

func TestSummary_InitialRunWording(t *testing.T) {
	results := []*checks.Result{
		{Name: "Superblock", Valid: true},
		{Name: "Inode Bitmap", Valid: false, Findings: []checks.Finding{{Message: "x"}}},
	}

	var buf bytes.Buffer
	p := &report.Printer{Out: &buf}
	p.Summary("Consistency Check Summary", results, "Valid", "Errors found")

	output := buf.String()
	assert.Contains(t, output, "Superblock: Valid")
	assert.Contains(t, output, "Inode Bitmap: Errors found")
	assert.Contains(t, output, "Overall file system status: ERRORS DETECTED")
	assert.NotContains(t, output, "Post-fix")
}

func TestSummary_PostFixWordingAndWarning(t *testing.T) {
	results := []*checks.Result{
		{Name: "Bad Blocks", Valid: false, Findings: []checks.Finding{{Message: "x", Residual: true}}},
	}

	var buf bytes.Buffer
	p := &report.Printer{Out: &buf}
	p.Summary("Post-Fix Consistency Check Summary", results, "Valid", "Errors remain")

	output := buf.String()
	assert.Contains(t, output, "Post-fix file system status: ERRORS REMAIN")
	assert.NotContains(t, output, "Overall file system status")
	assert.Contains(t, output, "Warning: Some errors could not be fixed automatically!")
}

func TestSummary_PostFixAllValid_NoWarning(t *testing.T) {
	results := []*checks.Result{{Name: "Bad Blocks", Valid: true}}

	var buf bytes.Buffer
	p := &report.Printer{Out: &buf}
	p.Summary("Post-Fix Consistency Check Summary", results, "Valid", "Errors remain")

	output := buf.String()
	assert.Contains(t, output, "Post-fix file system status: CONSISTENT")
	assert.NotContains(t, output, "Warning")
}

func TestReport_NoRepairNeeded_OmitsReRunSection(t *testing.T) {
	img := vsfsimage.NewSingleFileClean(t)
	r := checks.Run(img, false)

	var buf bytes.Buffer
	p := &report.Printer{Out: &buf}
	p.Report(r)

	assert.NotContains(t, buf.String(), "Re-running Checks After Fixes")
}

func TestReport_RepairedImage_IncludesReRunSection(t *testing.T) {
	img := vsfsimage.NewSingleFileClean(t)
	vsfsimage.MarkInodeBitmap(img, 0, false)
	r := checks.Run(img, true)
	require.True(t, r.Repaired())

	var buf bytes.Buffer
	p := &report.Printer{Out: &buf}
	p.Report(r)

	output := buf.String()
	assert.Contains(t, output, "Re-running Checks After Fixes")
	assert.Contains(t, output, "Post-Fix Consistency Check Summary")
	assert.True(t, strings.Count(output, "Inode Bitmap Validation") >= 2)
}
