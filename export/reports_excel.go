package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"ecowaste-be/models"
)

var reportHeader = []string{
	"ID", "Reported By", "Waste Type", "Location", "Urgency",
	"Status", "Description", "Created At", "Updated At",
}

// NewReportsWorkbook builds an .xlsx workbook with one row per report, for
// the admin "download system reports" action.
func NewReportsWorkbook(reports []models.WasteReport) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Reports"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	for col, h := range reportHeader {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end := colName(len(reportHeader)) + "1"
	_ = f.SetCellStyle(sheet, "A1", end, bold)
	_ = f.AutoFilter(sheet, "A1:"+end, nil)

	for r, report := range reports {
		row := []string{
			report.ID.Hex(),
			report.ReportedBy.Hex(),
			string(report.WasteType),
			report.Location,
			string(report.Urgency),
			string(report.Status),
			report.Description,
			report.CreatedAt.Format(time.RFC3339),
			report.UpdatedAt.Format(time.RFC3339),
		}
		for c, val := range row {
			cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	return f, nil
}

// colName converts a 1-based column index into an Excel column name.
func colName(n int) string {
	name := ""
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return name
}
