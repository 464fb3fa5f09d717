package report

import (
	"os"

	"github.com/gocarina/gocsv"

	"github.com/dargueta/vsfsck/checks"
)

// FindingRow is one finding flattened into a CSV-marshalable row, for the
// --report-csv flag: a machine-readable audit trail alongside the plain-
// text diagnostics, useful when repairing many images in a batch and
// wanting one combined spreadsheet of what was wrong with each.
type FindingRow struct {
	Pass     string `csv:"pass"`
	Message  string `csv:"message"`
	Residual bool   `csv:"residual"`
}

// WriteCSV marshals every finding from every pass in r (both the initial
// run and, if present, the post-fix re-audit) to path as CSV.
func WriteCSV(path string, r *checks.Report) error {
	rows := collectRows(r.Passes)
	rows = append(rows, collectRows(r.PostFix)...)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&rows, file)
}

func collectRows(results []*checks.Result) []FindingRow {
	var rows []FindingRow
	for _, result := range results {
		for _, finding := range result.Findings {
			rows = append(rows, FindingRow{
				Pass:     result.Name,
				Message:  finding.Message,
				Residual: finding.Residual,
			})
		}
	}
	return rows
}
