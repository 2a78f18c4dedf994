package excel

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/physquest/pkg/models"
)

// header row for the submissions sheet
var submissionColumns = []string{"ID", "Topic", "Name", "File", "Link", "Created At"}

// ExportSubmissions builds an Excel workbook with one row per submission
func ExportSubmissions(submissions []models.Submission) *excelize.File {
	f := excelize.NewFile()
	sheet := "Submissions"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range submissionColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, s := range submissions {
		values := []interface{}{
			s.ID,
			s.Topic,
			s.Name,
			s.FilePath.String,
			s.Link.String,
			s.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f
}
