package events

import "time"

const VacationRecordedTopic = "hr.vacation.recorded.v1"

// VacationRecordedEvent is published after a vacation request has been
// granted and its ledger entry committed.
type VacationRecordedEvent struct {
	EventType            string    `json:"event_type"`
	VacationID           string    `json:"vacation_id"`
	EmployeeID           string    `json:"employee_id"`
	StartDate            string    `json:"start_date"`
	EndDate              string    `json:"end_date"`
	DaysTaken            int       `json:"days_taken"`
	AccumulatedDaysAfter int       `json:"accumulated_days_after"`
	OccurredAt           time.Time `json:"occurred_at"`
}
