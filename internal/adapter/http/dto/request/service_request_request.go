package request

import (
	"sort"
	"strings"

	"staffing_service/internal/domain/entities"
)

var criteriaKeys = []string{"certifications", "languages", "skills"}

type CreateServiceRequestRequest struct {
	Title           string              `json:"title" binding:"required"`
	RoleName        string              `json:"role_name" binding:"required"`
	Technology      string              `json:"technology"`
	Specialization  string              `json:"specialization"`
	ExperienceLevel string              `json:"experience_level"`
	StartDate       string              `json:"start_date" binding:"omitempty,iso_date"`
	EndDate         string              `json:"end_date" binding:"omitempty,iso_date"`
	ExpectedManDays int                 `json:"expected_man_days" binding:"min=0"`
	Criteria        map[string][]string `json:"criteria_json"`
	TaskDescription string              `json:"task_description"`
	OfferDeadline   string              `json:"offer_deadline" binding:"omitempty,iso_date"`
}

func (r CreateServiceRequestRequest) ToInput() (entities.NewServiceRequestInput, error) {
	criteria, err := r.criteria()
	if err != nil {
		return entities.NewServiceRequestInput{}, err
	}
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return entities.NewServiceRequestInput{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return entities.NewServiceRequestInput{}, err
	}
	deadline, err := parseOptionalDate("offer_deadline", r.OfferDeadline)
	if err != nil {
		return entities.NewServiceRequestInput{}, err
	}
	return entities.NewServiceRequestInput{
		Title:           r.Title,
		RoleName:        r.RoleName,
		Technology:      r.Technology,
		Specialization:  r.Specialization,
		ExperienceLevel: entities.ExperienceLevel(strings.ToUpper(strings.TrimSpace(r.ExperienceLevel))),
		StartDate:       start,
		EndDate:         end,
		ExpectedManDays: r.ExpectedManDays,
		Criteria:        criteria,
		TaskDescription: r.TaskDescription,
		OfferDeadline:   deadline,
	}, nil
}

// criteria accepts an empty object or one with exactly the skills,
// certifications and languages keys.
func (r CreateServiceRequestRequest) criteria() (entities.RequestCriteria, error) {
	if len(r.Criteria) == 0 {
		return entities.RequestCriteria{}, nil
	}
	keys := make([]string, 0, len(r.Criteria))
	for k := range r.Criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if strings.Join(keys, ",") != strings.Join(criteriaKeys, ",") {
		return entities.RequestCriteria{}, entities.NewValidationError("criteria_json must contain exactly these keys: %s", strings.Join(criteriaKeys, ", "))
	}
	return entities.RequestCriteria{
		Skills:         r.Criteria["skills"],
		Certifications: r.Criteria["certifications"],
		Languages:      r.Criteria["languages"],
	}, nil
}

// TaskDecisionRequest completes a workflow task.
type TaskDecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// TaskListQuery selects the candidate group whose tasks are listed.
type TaskListQuery struct {
	Group string `form:"group"`
}
