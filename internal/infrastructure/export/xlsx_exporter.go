package export

import (
	"fmt"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Jobs"

var jobColumns = []string{
	"ID", "Client Name", "Client Email", "Client Phone", "Property Address", "Service",
	"Status", "Quoted Amount", "Final Amount", "Scheduled Date", "Completed Date",
	"Referral Source", "Notes", "Created At",
}

// XLSXExporter renders the admin job listing as a single-sheet workbook.
type XLSXExporter struct{}

var _ interfaces.IJobExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *XLSXExporter) FileExtension() string {
	return ".xlsx"
}

func (e *XLSXExporter) Export(jobs []entities.Job) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := sw.SetColWidth(2, 5, 24); err != nil {
		return nil, err
	}

	titles := make([]interface{}, len(jobColumns))
	for i, c := range jobColumns {
		titles[i] = c
	}
	if err := sw.SetRow("A1", titles, excelize.RowOpts{StyleID: header}); err != nil {
		return nil, err
	}

	for i, j := range jobs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, jobRow(j)); err != nil {
			return nil, fmt.Errorf("failed to write job %s: %w", j.ID, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func jobRow(j entities.Job) []interface{} {
	var final interface{}
	if j.FinalAmount != nil {
		final = *j.FinalAmount
	}
	return []interface{}{
		j.ID,
		j.ClientName,
		j.ClientEmail,
		j.ClientPhone,
		j.PropertyAddress,
		string(j.ServiceType),
		string(j.Status),
		j.QuotedAmount,
		final,
		formatDate(j.ScheduledDate),
		formatDate(j.CompletedDate),
		j.ReferralSource,
		j.Notes,
		j.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}
