package checks

import "github.com/dargueta/vsfsck/image"

// passFunc is the common shape of every audit pass.
type passFunc func(img *image.Image, fix bool) *Result

// passOrder is the fixed pass sequence: superblock, then the two bitmap
// reconcilers, then duplicate detection, then bad-block detection. Later
// passes observe whatever mutations earlier passes made in repair mode.
var passOrder = []passFunc{
	Superblock,
	InodeBitmap,
	DataBitmap,
	Duplicates,
	BadBlocks,
}

// Report is the outcome of a full run of the checker: the results of the
// first pass over the image, and -- only when repair found something to
// fix -- the results of the check-only re-audit that followed it.
type Report struct {
	Passes  []*Result
	PostFix []*Result
}

// Valid reports whether every pass found the image consistent on the
// initial run.
func (r *Report) Valid() bool {
	return allValid(r.Passes)
}

// Repaired reports whether a repair re-audit ran at all.
func (r *Report) Repaired() bool {
	return r.PostFix != nil
}

// PostFixValid reports whether every pass found the image consistent
// after repair. If no re-audit ran, this is the same as Valid.
func (r *Report) PostFixValid() bool {
	if r.PostFix == nil {
		return r.Valid()
	}
	return allValid(r.PostFix)
}

func allValid(results []*Result) bool {
	for _, result := range results {
		if !result.Valid {
			return false
		}
	}
	return true
}

// Run executes every pass in passOrder against img, in order, with fix
// controlling whether findings are corrected in place. If fix is true and
// any pass reported a finding, every pass is re-invoked in check-only mode
// (fix=false) to produce a post-fix summary of residual errors -- the
// repair is a single pass plus this one re-audit, not iterated to a fixed
// point, so findings the re-audit still reports are not repaired again.
func Run(img *image.Image, fix bool) *Report {
	report := &Report{Passes: runAll(img, fix)}

	if fix && !report.Valid() {
		report.PostFix = runAll(img, false)
		markResidual(report.PostFix)
	}

	return report
}

func runAll(img *image.Image, fix bool) []*Result {
	results := make([]*Result, len(passOrder))
	for i, pass := range passOrder {
		results[i] = pass(img, fix)
	}
	return results
}

func markResidual(results []*Result) {
	for _, result := range results {
		for i := range result.Findings {
			result.Findings[i].Residual = true
		}
	}
}
