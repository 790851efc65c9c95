package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/course-service/internal/models"
)

const (
	rosterSheet      = "Students"
	rosterDateLayout = "2006-01-02 15:04"

	// ContentTypeXLSX is the media type of the generated workbook.
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var rosterHeaders = []string{"#", "Index", "Name", "Surname", "Email", "Enrolled At"}

// RosterWorkbook renders a course roster as an xlsx document.
func RosterWorkbook(course *models.Course, roster []*models.RosterEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetCellValue(rosterSheet, "A1", course.Name); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(rosterSheet, "A2", fmt.Sprintf("%d enrolled", len(roster))); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	const headerRow = 4
	for i, h := range rosterHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(rosterSheet, cell, h); err != nil {
			return nil, err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, headerRow)
	last, _ := excelize.CoordinatesToCellName(len(rosterHeaders), headerRow)
	if err := f.SetCellStyle(rosterSheet, first, last, headerStyle); err != nil {
		return nil, err
	}

	for i, entry := range roster {
		row := headerRow + 1 + i
		values := []interface{}{
			i + 1,
			entry.Student.Index,
			entry.Student.Name,
			entry.Student.Surname,
			entry.Email,
			entry.EnrolledAt.UTC().Format(rosterDateLayout),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(rosterSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write roster row %d: %w", row, err)
		}
	}

	if err := f.SetColWidth(rosterSheet, "B", "F", 22); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// RosterFilename is the attachment name offered for a course roster.
func RosterFilename(course *models.Course) string {
	return fmt.Sprintf("course-%d-students.xlsx", course.ID)
}
