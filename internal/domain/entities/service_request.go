package entities

import (
	"strings"
	"time"
)

type ServiceRequestStatus string

const (
	ServiceRequestStatusDraft     ServiceRequestStatus = "DRAFT"
	ServiceRequestStatusOpen      ServiceRequestStatus = "OPEN"
	ServiceRequestStatusClosed    ServiceRequestStatus = "CLOSED"
	ServiceRequestStatusAwarded   ServiceRequestStatus = "AWARDED"
	ServiceRequestStatusCancelled ServiceRequestStatus = "CANCELLED"
)

func (s ServiceRequestStatus) IsValid() bool {
	switch s {
	case ServiceRequestStatusDraft, ServiceRequestStatusOpen, ServiceRequestStatusClosed,
		ServiceRequestStatusAwarded, ServiceRequestStatusCancelled:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceLevelExpert ExperienceLevel = "EXPERT"
	ExperienceLevelLead   ExperienceLevel = "LEAD"
	ExperienceLevelSenior ExperienceLevel = "SENIOR"
	ExperienceLevelMid    ExperienceLevel = "MID"
	ExperienceLevelJunior ExperienceLevel = "JUNIOR"
)

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceLevelExpert, ExperienceLevelLead, ExperienceLevelSenior, ExperienceLevelMid, ExperienceLevelJunior:
		return true
	}
	return false
}

// RequestCriteria lists what a specialist must bring.
type RequestCriteria struct {
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
}

// ServiceRequest is the client's call for a specialist. Its validation is
// driven by the workflow engine process started on creation.
type ServiceRequest struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	RoleName        string               `json:"role_name"`
	Technology      string               `json:"technology"`
	Specialization  string               `json:"specialization"`
	ExperienceLevel ExperienceLevel      `json:"experience_level"`
	StartDate       time.Time            `json:"start_date"`
	EndDate         time.Time            `json:"end_date"`
	ExpectedManDays int                  `json:"expected_man_days"`
	Criteria        RequestCriteria      `json:"criteria"`
	Status          ServiceRequestStatus `json:"status"`
	TaskDescription string               `json:"task_description"`
	OfferDeadline   *time.Time           `json:"offer_deadline,omitempty"`
	ProcessID       string               `json:"process_id"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	Version         int64                `json:"version"`
}

type NewServiceRequestInput struct {
	Title           string
	RoleName        string
	Technology      string
	Specialization  string
	ExperienceLevel ExperienceLevel
	StartDate       time.Time
	EndDate         time.Time
	ExpectedManDays int
	Criteria        RequestCriteria
	TaskDescription string
	OfferDeadline   *time.Time
}

func NewServiceRequest(id string, in NewServiceRequestInput, now time.Time) (ServiceRequest, error) {
	if strings.TrimSpace(in.Title) == "" {
		return ServiceRequest{}, NewValidationError("title is required")
	}
	if strings.TrimSpace(in.RoleName) == "" {
		return ServiceRequest{}, NewValidationError("role name is required")
	}
	level := in.ExperienceLevel
	if level == "" {
		level = ExperienceLevelJunior
	}
	if !level.IsValid() {
		return ServiceRequest{}, NewValidationError("invalid experience level %q", in.ExperienceLevel)
	}
	start, end := DateOf(in.StartDate), DateOf(in.EndDate)
	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		return ServiceRequest{}, NewValidationError("start date must be before end date")
	}
	if in.ExpectedManDays < 0 {
		return ServiceRequest{}, NewValidationError("expected man days must not be negative")
	}
	var deadline *time.Time
	if in.OfferDeadline != nil {
		d := DateOf(*in.OfferDeadline)
		deadline = &d
	}

	return ServiceRequest{
		ID:              id,
		Title:           strings.TrimSpace(in.Title),
		RoleName:        strings.TrimSpace(in.RoleName),
		Technology:      in.Technology,
		Specialization:  in.Specialization,
		ExperienceLevel: level,
		StartDate:       start,
		EndDate:         end,
		ExpectedManDays: in.ExpectedManDays,
		Criteria:        in.Criteria,
		Status:          ServiceRequestStatusOpen,
		TaskDescription: in.TaskDescription,
		OfferDeadline:   deadline,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Reopen marks the request OPEN after a validation task is settled.
func (r ServiceRequest) Reopen(now time.Time) ServiceRequest {
	r.Status = ServiceRequestStatusOpen
	r.UpdatedAt = now
	return r
}
