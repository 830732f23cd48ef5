package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/noah-isme/classtime-scheduler/internal/scheduler"
)

// weekdays is the fixed day-column order the timetable grid renders in,
// matching scheduler.Days ("MTWRF").
var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// PDFExporter renders a generated schedule into a printable weekly
// timetable grid.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render draws schedule's sections as a Monday-through-Friday timetable
// grid, one row per hour, with a legend of section identifiers below.
func (e *PDFExporter) Render(schedule *scheduler.Schedule, title string) ([]byte, error) {
	if schedule == nil {
		return nil, fmt.Errorf("render pdf: schedule is nil")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	if title == "" {
		title = "Weekly Schedule"
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 9)
	colWidth := 270.0 / float64(len(weekdays)+1)
	pdf.CellFormat(colWidth, 8, "Time", "1", 0, "C", false, 0, "")
	for _, day := range weekdays {
		pdf.CellFormat(colWidth, 8, day, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	grid := buildGrid(schedule)
	pdf.SetFont("Arial", "", 8)
	for block := 0; block < scheduler.NumBlocks; block++ {
		if block%2 != 0 {
			continue
		}
		pdf.CellFormat(colWidth, 7, blockLabel(block), "1", 0, "C", false, 0, "")
		for dayIdx := range weekdays {
			pdf.CellFormat(colWidth, 7, grid[dayIdx][block], "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 7, "Sections", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, section := range schedule.Sections {
		pdf.CellFormat(0, 6, section.AsString, "", 1, "", false, 0, "")
	}

	pdf.SetFont("Arial", "I", 9)
	pdf.Ln(2)
	pdf.CellFormat(0, 6, fmt.Sprintf("Overall score: %.3f", schedule.OverallScore()), "", 1, "", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// buildGrid maps each day/block to the short label of the section
// occupying it, so Render can walk it row-major without re-deriving
// placement from the raw sections each time.
func buildGrid(schedule *scheduler.Schedule) [scheduler.NumDays][scheduler.NumBlocks]string {
	var grid [scheduler.NumDays][scheduler.NumBlocks]string
	if schedule.Timetable == nil {
		return grid
	}

	labels := make(map[int]string, len(schedule.Sections))
	for i, section := range schedule.Sections {
		labels[i] = section.Course + " " + section.Component
	}

	for day := 0; day < scheduler.NumDays; day++ {
		for block := 0; block < scheduler.NumBlocks; block++ {
			marker := schedule.Timetable.Grid[day][block]
			if marker < 0 {
				continue
			}
			if label, ok := labels[marker]; ok {
				grid[day][block] = label
			}
		}
	}
	return grid
}

// blockLabel renders a 30-minute block index as a "H:MM AM/PM" start time.
func blockLabel(block int) string {
	totalMinutes := block * 30
	hour24 := totalMinutes / 60
	minute := totalMinutes % 60
	period := "AM"
	hour := hour24
	if hour24 >= 12 {
		period = "PM"
	}
	if hour%12 == 0 {
		hour = 12
	} else {
		hour %= 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}
