// Package catalog pushes status changes and validated service requests to the
// external provider catalog.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/infrastructure/config"
	"staffing_service/internal/infrastructure/logger"
	"staffing_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const workMode = "Remote"

// Notifier posts JSON to the catalog API. With mockMode set, or without a
// base URL, payloads are only logged.
type Notifier struct {
	baseURL  string
	http     *http.Client
	mockMode bool
}

var _ interfaces.ICatalogNotifier = (*Notifier)(nil)

func New(cfg config.Config) *Notifier {
	if cfg.CatalogNotifierMock || cfg.CatalogBaseURL == "" {
		logger.Log.Info("[catalog][notifier] mock mode enabled")
		return &Notifier{mockMode: true}
	}
	return NewNotifier(cfg.CatalogBaseURL, 10*time.Second)
}

func NewNotifier(baseURL string, timeout time.Duration) *Notifier {
	return &Notifier{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

type statusPayload struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type criteriaPayload struct {
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
}

type requestPayload struct {
	ExternalID      string          `json:"external_id"`
	Title           string          `json:"title"`
	RoleName        string          `json:"role_name"`
	Technology      string          `json:"technology"`
	Specialization  string          `json:"specialization"`
	ExperienceLevel string          `json:"experience_level"`
	StartDate       string          `json:"start_date,omitempty"`
	EndDate         string          `json:"end_date,omitempty"`
	ExpectedManDays int             `json:"expected_man_days"`
	Criteria        criteriaPayload `json:"criteria_json"`
	Status          string          `json:"status"`
	TaskDescription string          `json:"task_description"`
	OfferDeadline   string          `json:"offer_deadline,omitempty"`
	WorkMode        string          `json:"word_mode"`
}

func (n *Notifier) NotifyStatusChange(ctx context.Context, resource, externalID, status string) error {
	return n.post(ctx, "/requests/"+resource+"/update-status/", statusPayload{ID: externalID, Status: status})
}

func (n *Notifier) PublishServiceRequest(ctx context.Context, r entities.ServiceRequest) error {
	p := requestPayload{
		ExternalID:      r.ID,
		Title:           r.Title,
		RoleName:        r.RoleName,
		Technology:      r.Technology,
		Specialization:  r.Specialization,
		ExperienceLevel: string(r.ExperienceLevel),
		StartDate:       isoDate(r.StartDate),
		EndDate:         isoDate(r.EndDate),
		ExpectedManDays: r.ExpectedManDays,
		Criteria: criteriaPayload{
			Skills:         nonNil(r.Criteria.Skills),
			Certifications: nonNil(r.Criteria.Certifications),
			Languages:      nonNil(r.Criteria.Languages),
		},
		Status:          string(r.Status),
		TaskDescription: r.TaskDescription,
		WorkMode:        workMode,
	}
	if r.OfferDeadline != nil {
		p.OfferDeadline = isoDate(*r.OfferDeadline)
	}
	return n.post(ctx, "/requests/service-requests/generate/", p)
}

func (n *Notifier) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if n.mockMode {
		logger.Log.WithFields(logrus.Fields{"path": path, "payload": string(body)}).Info("[catalog][notifier] mock post")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("catalog %s: status %d: %s", path, resp.StatusCode, msg)
	}
	logger.Log.WithField("path", path).Debug("[catalog][notifier] delivered")
	return nil
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
