package interfaces

import "appraisal_booking/internal/domain/entities"

// IJobExporter renders jobs as a downloadable spreadsheet.
type IJobExporter interface {
	Export(jobs []entities.Job) ([]byte, error)
	ContentType() string
	FileExtension() string
}
