package response

import "appraisal_booking/internal/domain/entities"

type JobListResponse struct {
	Jobs   []entities.Job `json:"jobs"`
	Count  int            `json:"count"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

func FromJobs(jobs []entities.Job, limit, offset int) JobListResponse {
	if jobs == nil {
		jobs = []entities.Job{}
	}
	return JobListResponse{Jobs: jobs, Count: len(jobs), Limit: limit, Offset: offset}
}

type PriceTableResponse struct {
	Prices []entities.ServicePrice `json:"prices"`
}

type CalendarEventResponse struct {
	EventID string `json:"eventId"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type PingResponse struct {
	Message string `json:"message"`
}
