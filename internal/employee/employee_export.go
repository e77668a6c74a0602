package employee

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Employees"

var exportHeader = []any{"ID", "Name", "Email", "Department", "Role"}

// WriteWorkbook writes the employee summaries as a single-sheet xlsx file.
func WriteWorkbook(w io.Writer, rows []EmployeeSummaryResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	header := exportHeader
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.ID, r.Name, r.Email, valueOrEmpty(r.Department), valueOrEmpty(r.Role)}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(exportSheet, "B", "E", 28); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
