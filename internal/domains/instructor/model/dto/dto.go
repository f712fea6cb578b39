package dto

import (
	"safari/internal/domains/instructor/model"
	"safari/shared"
	gDto "safari/shared/dto"
	gModel "safari/shared/model"
	"safari/shared/timezone"

	"github.com/google/uuid"
)

type CreateActivityLevelRequest struct {
	Instructor    string `json:"instructor"    validate:"required,max=100"`
	ActivityName  string `json:"activity_name" validate:"required,max=100"`
	Qualification string `json:"qualification" validate:"required,max=100"`
}

func (c *CreateActivityLevelRequest) ToModel(user string) model.ActivityLevel {
	return model.ActivityLevel{
		ID:            uuid.NewString(),
		Instructor:    c.Instructor,
		ActivityName:  c.ActivityName,
		Qualification: c.Qualification,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type ActivityLevelResponse struct {
	ID            string `json:"id"`
	Instructor    string `json:"instructor"`
	ActivityName  string `json:"activity_name"`
	Qualification string `json:"qualification"`
}

func (r *ActivityLevelResponse) FromModel(model model.ActivityLevel) {
	r.ID = model.ID
	r.Instructor = model.Instructor
	r.ActivityName = model.ActivityName
	r.Qualification = model.Qualification
}

type GetActivityLevelsResponse struct {
	ActivityLevels []ActivityLevelResponse `json:"activity_levels"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetActivityLevelsResponse) FromModels(models []model.ActivityLevel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ActivityLevels = make([]ActivityLevelResponse, len(models))
	for i, mod := range models {
		r.ActivityLevels[i].FromModel(mod)
	}
}

type CreateRateRequest struct {
	ActivityName  string  `json:"activity_name" validate:"required,max=100"`
	Qualification string  `json:"qualification" validate:"required,max=100"`
	SessionType   string  `json:"session_type"  validate:"required,max=50"`
	Rate          float64 `json:"rate"          validate:"gte=0"`
}

func (c *CreateRateRequest) ToModel(user string) model.Rate {
	return model.Rate{
		ID:            uuid.NewString(),
		ActivityName:  c.ActivityName,
		Qualification: c.Qualification,
		SessionType:   c.SessionType,
		Rate:          c.Rate,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRateRequest struct {
	Rate *float64 `json:"rate" validate:"required,gte=0"`
}

type RateResponse struct {
	ID            string  `json:"id"`
	ActivityName  string  `json:"activity_name"`
	Qualification string  `json:"qualification"`
	SessionType   string  `json:"session_type"`
	Rate          float64 `json:"rate"`
	gDto.Metadata
}

func (r *RateResponse) FromModel(model model.Rate) {
	r.ID = model.ID
	r.ActivityName = model.ActivityName
	r.Qualification = model.Qualification
	r.SessionType = model.SessionType
	r.Rate = model.Rate
	r.Metadata.FromModel(model.Metadata)
}

type GetRatesResponse struct {
	Rates     []RateResponse `json:"rates"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRatesResponse) FromModels(models []model.Rate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rates = make([]RateResponse, len(models))
	for i, mod := range models {
		r.Rates[i].FromModel(mod)
	}
}

// InstructorQuery carries the lookup parameters. Both are checked by the service so the
// caller sees which one was missing.
type InstructorQuery struct {
	Activity    string
	SessionType string
}

type CandidateResponse struct {
	Instructor    string   `json:"instructor"`
	Qualification string   `json:"qualification"`
	Rate          *float64 `json:"rate"`
}

func FromCandidates(candidates []model.Candidate) []CandidateResponse {
	res := make([]CandidateResponse, len(candidates))
	for i, c := range candidates {
		res[i] = CandidateResponse{Instructor: c.Instructor, Qualification: c.Qualification, Rate: c.Rate}
	}

	return res
}

type CreateAssignmentRequest struct {
	ReservationID string `json:"reservation_id" validate:"omitempty,uuid"`
	Activity      string `json:"activity"       validate:"required,max=100"`
	SessionType   string `json:"session_type"   validate:"required,max=50"`
}

func (c *CreateAssignmentRequest) ToModel(user string) model.Assignment {
	assignment := model.Assignment{
		ID:          uuid.NewString(),
		Activity:    c.Activity,
		SessionType: c.SessionType,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}

	if c.ReservationID != "" {
		assignment.ReservationID = &c.ReservationID
	}

	return assignment
}

type SuggestionResponse struct {
	Instructor    string `json:"instructor"`
	Qualification string `json:"qualification"`
}

type AssignmentResponse struct {
	ID            string               `json:"id"`
	ReservationID string               `json:"reservation_id,omitempty"`
	Activity      string               `json:"activity"`
	SessionType   string               `json:"session_type"`
	Suggestions   []SuggestionResponse `json:"instructor_suggestions"`
	gDto.Metadata
}

func (r *AssignmentResponse) FromModel(model model.Assignment, suggestions []model.Suggestion) {
	r.ID = model.ID
	if model.ReservationID != nil {
		r.ReservationID = *model.ReservationID
	}

	r.Activity = model.Activity
	r.SessionType = model.SessionType
	r.Metadata.FromModel(model.Metadata)

	r.Suggestions = make([]SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		r.Suggestions[i] = SuggestionResponse{Instructor: s.Instructor, Qualification: s.Qualification}
	}
}

type GetAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAssignmentsResponse) FromModels(models []model.Assignment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Assignments = make([]AssignmentResponse, len(models))
	for i, mod := range models {
		r.Assignments[i].FromModel(mod, nil)
	}
}
