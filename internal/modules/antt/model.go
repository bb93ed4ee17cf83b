// README: Ingestion run log entries for the ANTT reference pipeline.
package antt

import "time"

// Run statuses.
const (
	RunSuccess = "success"
	RunFailure = "failure"
)

// Run sources.
const (
	SourceCSV  = "csv"
	SourceHTML = "html"
)

// IngestionRun records one attempt to refresh the ANTT reference snapshot.
type IngestionRun struct {
	ID          int64     `json:"id"`
	Source      string    `json:"source"`
	Status      string    `json:"status"`
	RecordCount int       `json:"record_count"`
	Error       *string   `json:"error,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}
