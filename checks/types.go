// Package checks implements the five audit passes of the VSFS consistency
// checker -- superblock validation, the two bitmap reconcilers, duplicate-
// block detection, and bad-block detection -- plus the orchestrator that
// sequences them and drives the repair re-audit.
package checks

// Finding is a single diagnostic produced by a pass: one violation of an
// invariant in the data model, worded to match the original checker's
// output exactly so golden-output tests can assert on it.
type Finding struct {
	// Message is the human-readable diagnostic line.
	Message string
	// Residual is set when this finding survives a repair re-audit --
	// i.e. it was found again after --fix already ran once.
	Residual bool
}

// Result is the outcome of a single pass: every finding it reported, in
// ascending entity-index order, and whether the pass considered the image
// valid on entry (true iff Findings is empty).
type Result struct {
	Name     string
	Findings []Finding
	Valid    bool
}

func newResult(name string) *Result {
	return &Result{Name: name, Valid: true}
}

func (r *Result) report(message string) {
	r.Findings = append(r.Findings, Finding{Message: message})
	r.Valid = false
}
