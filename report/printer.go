// Package report formats checker findings and summaries as plain text,
// matching the wording of the original VSFS checker this repo descends
// from, and can additionally emit a CSV audit trail of every finding.
package report

import (
	"fmt"
	"io"

	"github.com/dargueta/vsfsck/checks"
)

// sectionTitle maps a checks.Result's Name to the banner printed above
// its findings.
var sectionTitle = map[string]string{
	"Superblock":       "Superblock Validation",
	"Inode Bitmap":     "Inode Bitmap Validation",
	"Data Bitmap":      "Data Bitmap Validation",
	"Duplicate Blocks": "Duplicate Block Check",
	"Bad Blocks":       "Bad Block Check",
}

// Printer writes diagnostics and summaries to an io.Writer. Quiet
// suppresses per-finding lines, printing only section banners and the
// summary blocks -- useful for scripted repair jobs that only care about
// the final verdict.
type Printer struct {
	Out   io.Writer
	Quiet bool
}

// Banner prints the header the checker writes before running any pass.
func (p *Printer) Banner(imagePath string, fix bool) {
	mode := "Check only"
	if fix {
		mode = "Check and fix"
	}
	fmt.Fprintln(p.Out, "VSFS Consistency Checker")
	fmt.Fprintln(p.Out, "========================")
	fmt.Fprintf(p.Out, "File system image: %s\n", imagePath)
	fmt.Fprintf(p.Out, "Mode: %s\n", mode)
}

// Pass prints one pass's section banner, and -- unless Quiet -- every
// finding it reported.
func (p *Printer) Pass(result *checks.Result) {
	fmt.Fprintf(p.Out, "\n=== %s ===\n", sectionTitle[result.Name])
	if p.Quiet {
		return
	}
	for _, finding := range result.Findings {
		fmt.Fprintln(p.Out, finding.Message)
	}
}

// Summary prints the post-run summary block: one status line per pass,
// plus an overall verdict. title labels the block ("Consistency Check
// Summary" or "Post-Fix Consistency Check Summary"); validWord and
// errorWord are the per-pass status words ("Valid"/"Errors found", or
// "Valid"/"Errors remain" for a post-fix re-audit). An errorWord of
// "Errors remain" marks the block as post-fix: the final line then reads
// "Post-fix file system status" instead of "Overall file system status".
func (p *Printer) Summary(title string, results []*checks.Result, validWord, errorWord string) {
	fmt.Fprintf(p.Out, "\n=== %s ===\n", title)

	allValid := true
	for _, result := range results {
		word := validWord
		if !result.Valid {
			word = errorWord
			allValid = false
		}
		fmt.Fprintf(p.Out, "%s: %s\n", result.Name, word)
	}

	isPostFix := errorWord == "Errors remain"
	verdict := "CONSISTENT"
	if !allValid {
		verdict = "ERRORS DETECTED"
		if isPostFix {
			verdict = "ERRORS REMAIN"
		}
	}

	if isPostFix {
		fmt.Fprintf(p.Out, "\nPost-fix file system status: %s\n", verdict)
	} else {
		fmt.Fprintf(p.Out, "\nOverall file system status: %s\n", verdict)
	}

	if !allValid && isPostFix {
		fmt.Fprintln(p.Out, "Warning: Some errors could not be fixed automatically!")
		fmt.Fprintln(p.Out, "Consider running additional maintenance or backup your data.")
	}
}

// Report prints the full textual output for a checks.Report: each pass's
// section, the summary, and -- if a repair re-audit ran -- the
// re-running banner, each re-audited pass's section, and the post-fix
// summary.
func (p *Printer) Report(r *checks.Report) {
	for _, result := range r.Passes {
		p.Pass(result)
	}
	p.Summary("Consistency Check Summary", r.Passes, "Valid", "Errors found")

	if !r.Repaired() {
		return
	}

	fmt.Fprintln(p.Out, "\n=== Re-running Checks After Fixes ===")
	for _, result := range r.PostFix {
		p.Pass(result)
	}
	p.Summary("Post-Fix Consistency Check Summary", r.PostFix, "Valid", "Errors remain")
}
