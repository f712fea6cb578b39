package model

import (
	"safari/shared/model"
)

const (
	ActivityLevelTableName  = "instructor_activity_levels"
	ActivityLevelEntityName = "instructor_activity_level"
	RateTableName           = "instructor_rates"
	RateEntityName          = "instructor_rate"
	AssignmentTableName     = "instructor_assignments"
	AssignmentEntityName    = "instructor_assignment"
	SuggestionTableName     = "instructor_suggestions"
	SuggestionEntityName    = "instructor_suggestion"

	FieldID            = "id"
	FieldInstructor    = "instructor"
	FieldActivityName  = "activity_name"
	FieldQualification = "qualification"
	FieldSessionType   = "session_type"
	FieldRate          = "rate"
	FieldAssignmentID  = "assignment_id"
	FieldReservationID = "reservation_id"
)

// ActivityLevel records the qualification an instructor holds for an activity.
type ActivityLevel struct {
	ID            string `db:"id"`
	Instructor    string `db:"instructor"`
	ActivityName  string `db:"activity_name"`
	Qualification string `db:"qualification"`
	model.Metadata
}

// Rate prices a session of an activity taught at a given qualification.
type Rate struct {
	ID            string  `db:"id"`
	ActivityName  string  `db:"activity_name"`
	Qualification string  `db:"qualification"`
	SessionType   string  `db:"session_type"`
	Rate          float64 `db:"rate"`
	model.Metadata
}

type Assignment struct {
	ID            string  `db:"id"`
	ReservationID *string `db:"reservation_id"`
	Activity      string  `db:"activity"`
	SessionType   string  `db:"session_type"`
	model.Metadata
}

type Suggestion struct {
	ID            string `db:"id"`
	AssignmentID  string `db:"assignment_id"`
	Instructor    string `db:"instructor"`
	Qualification string `db:"qualification"`
}

// Candidate is one row of the instructor lookup. Rate is nil when no rate matches the session.
type Candidate struct {
	Instructor    string   `db:"instructor"`
	Qualification string   `db:"qualification"`
	Rate          *float64 `db:"rate"`
}
