package usecase

import (
	"bytes"
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Jobs"

var exportColumns = []struct {
	header string
	path   string
}{
	{"ID", domain.IDField},
	{"Job Title", domain.JobTitleField},
	{"Category", domain.JobCategoryField},
	{"Owner Email", domain.JobOwnerEmailField},
	{"Applicants", domain.JobApplicantsField},
}

// ExportJobs renders every job into an XLSX workbook and returns it with a
// timestamped file name.
func (u *jobUsecase) ExportJobs(ctx context.Context) ([]byte, string, error) {
	jobs, err := u.jobRepo.Find(ctx, domain.JobQuery{})
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, col.header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(exportSheet, "A1", endCell, headerStyle)

	for rowIdx, job := range jobs {
		for colIdx, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(exportSheet, cell, exportValue(job, col.path))
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheet, colName, colName, 24)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("jobs_%s.xlsx", u.now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func exportValue(job domain.Document, path string) any {
	v, ok := job.Lookup(path)
	if !ok || v == nil {
		if path == domain.JobApplicantsField {
			return 0
		}
		return ""
	}
	switch v.(type) {
	case string, bool, int, int32, int64, float64:
		return v
	default:
		return fmt.Sprint(v)
	}
}
