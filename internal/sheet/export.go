package sheet

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/roach88/santa/internal/core"
)

// Export renders assignments as an .xlsx workbook with one row per
// assignment, in the given order. An empty list yields a NothingToExport
// error and no bytes.
func Export(assignments []core.Assignment) ([]byte, error) {
	if len(assignments) == 0 {
		return nil, core.NewNothingToExportError()
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := lo.ToAnySlice(Columns)
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, a := range assignments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{a.Giver.Name, a.Giver.Email, a.Receiver.Name, a.Receiver.Email}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
