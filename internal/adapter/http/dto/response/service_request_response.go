package response

import (
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase"
)

type ServiceRequestResponse struct {
	ID              string                   `json:"id"`
	Title           string                   `json:"title"`
	RoleName        string                   `json:"role_name"`
	Technology      string                   `json:"technology"`
	Specialization  string                   `json:"specialization"`
	ExperienceLevel string                   `json:"experience_level"`
	StartDate       string                   `json:"start_date"`
	EndDate         string                   `json:"end_date"`
	ExpectedManDays int                      `json:"expected_man_days"`
	Criteria        entities.RequestCriteria `json:"criteria_json"`
	Status          string                   `json:"status"`
	TaskDescription string                   `json:"task_description"`
	OfferDeadline   *string                  `json:"offer_deadline"`
	ProcessID       string                   `json:"process_id"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:              r.ID,
		Title:           r.Title,
		RoleName:        r.RoleName,
		Technology:      r.Technology,
		Specialization:  r.Specialization,
		ExperienceLevel: string(r.ExperienceLevel),
		StartDate:       date(r.StartDate),
		EndDate:         date(r.EndDate),
		ExpectedManDays: r.ExpectedManDays,
		Criteria:        r.Criteria,
		Status:          string(r.Status),
		TaskDescription: r.TaskDescription,
		OfferDeadline:   datePtr(r.OfferDeadline),
		ProcessID:       r.ProcessID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromServiceRequests(list []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

type TaskResponse struct {
	TaskID            string         `json:"task_id"`
	TaskName          string         `json:"task_name"`
	ProcessInstanceID string         `json:"process_instance_id"`
	CreatedTime       time.Time      `json:"created_time"`
	Variables         map[string]any `json:"variables"`
}

func fromTask(t entities.WorkflowTask) TaskResponse {
	vars := t.Variables
	if vars == nil {
		vars = map[string]any{}
	}
	return TaskResponse{
		TaskID:            t.ID,
		TaskName:          t.Name,
		ProcessInstanceID: t.ProcessInstanceID,
		CreatedTime:       t.CreatedAt,
		Variables:         vars,
	}
}

type RequestTaskResponse struct {
	TaskResponse
	ServiceRequest ServiceRequestResponse `json:"service_request"`
}

func FromRequestTasks(tasks []usecase.RequestTask) []RequestTaskResponse {
	out := make([]RequestTaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, RequestTaskResponse{
			TaskResponse:   fromTask(t.Task),
			ServiceRequest: FromServiceRequest(t.Request),
		})
	}
	return out
}
