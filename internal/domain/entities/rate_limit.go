package entities

import "time"

// RateLimit is the counter row for one (function_name, identifier) pair.
// The counter restarts when WindowStart is older than the configured window.
type RateLimit struct {
	Identifier   string    `db:"identifier"`
	FunctionName string    `db:"function_name"`
	WindowStart  time.Time `db:"window_start"`
	RequestCount int       `db:"request_count"`
}
