package sheet

import "github.com/roach88/santa/internal/core"

// Recognized header cells.
const (
	ColumnName             = "Employee_Name"
	ColumnEmail            = "Employee_EmailID"
	ColumnSecretChildName  = "Secret_Child_Name"
	ColumnSecretChildEmail = "Secret_Child_EmailID"
)

// Columns is the export column order.
var Columns = []string{ColumnName, ColumnEmail, ColumnSecretChildName, ColumnSecretChildEmail}

// SheetName names the single sheet of an export.
const SheetName = "Assignments"

// ExportFilename is the fixed download name for exports.
const ExportFilename = "Secret-Santa-Assignments.xlsx"

// header maps recognized column names to their position in a header row.
type header map[string]int

func newHeader(cells []string) header {
	h := make(header, len(Columns))
	for i, cell := range cells {
		name := core.Normalize(cell)
		if _, seen := h[name]; !seen {
			h[name] = i
		}
	}
	return h
}

// cell returns the value of column in row as typed, or "" when the column
// is absent from the header or the row is short. Only header cells are
// normalized; values must survive an export and re-import unchanged.
func (h header) cell(row []string, column string) string {
	i, ok := h[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (h header) participant(row []string) core.Participant {
	return core.Participant{
		Name:             h.cell(row, ColumnName),
		Email:            h.cell(row, ColumnEmail),
		SecretChildName:  h.cell(row, ColumnSecretChildName),
		SecretChildEmail: h.cell(row, ColumnSecretChildEmail),
	}
}
