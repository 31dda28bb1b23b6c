// Package workflow talks to the Flowable REST API that runs the service
// request and offer review processes.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/infrastructure/config"
	"staffing_service/internal/infrastructure/logger"
	"staffing_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// StatusError is returned when Flowable answers with a non-2xx status.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("flowable %s: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

type FlowableClient struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

var _ interfaces.IWorkflowEngine = (*FlowableClient)(nil)

// New returns the Flowable client, or the in-memory engine when
// WORKFLOW_ENGINE_MOCK is set.
func New(cfg config.Config) interfaces.IWorkflowEngine {
	if cfg.WorkflowEngineMock {
		logger.Log.Info("[workflow][flowable] mock mode enabled")
		return NewMockEngine()
	}
	logger.Log.WithField("base_url", cfg.FlowableBaseURL).Info("[workflow][flowable] client initialized")
	return NewFlowableClient(cfg.FlowableBaseURL, cfg.FlowableUsername, cfg.FlowablePassword, cfg.WorkflowTimeout)
}

func NewFlowableClient(baseURL, username, password string, timeout time.Duration) *FlowableClient {
	return &FlowableClient{
		baseURL:  baseURL,
		username: username,
		password: password,
		http:     &http.Client{Timeout: timeout},
	}
}

type restVariable struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
	Type  string `json:"type,omitempty"`
}

type restTask struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	ProcessInstanceID string         `json:"processInstanceId"`
	CreateTime        string         `json:"createTime"`
	Assignee          string         `json:"assignee"`
	Variables         []restVariable `json:"variables"`
}

type restExecution struct {
	ID         string `json:"id"`
	ActivityID string `json:"activityId"`
}

func (c *FlowableClient) StartProcess(ctx context.Context, processKey string, variables map[string]any) (string, error) {
	body := map[string]any{
		"processDefinitionKey": processKey,
		"variables":            toRestVariables(variables, "string"),
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, "start_process", http.MethodPost, "/runtime/process-instances", body, &out); err != nil {
		return "", err
	}
	logger.Log.WithFields(logrus.Fields{"process_key": processKey, "process_id": out.ID}).
		Info("[workflow][flowable] process started")
	return out.ID, nil
}

func (c *FlowableClient) ListTasksForGroup(ctx context.Context, group string) ([]entities.WorkflowTask, error) {
	q := url.Values{}
	q.Set("candidateGroup", group)
	q.Set("includeProcessVariables", "true")

	var out struct {
		Data []restTask `json:"data"`
	}
	if err := c.do(ctx, "list_tasks", http.MethodGet, "/runtime/tasks?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	tasks := make([]entities.WorkflowTask, 0, len(out.Data))
	for _, t := range out.Data {
		tasks = append(tasks, entities.WorkflowTask{
			ID:                t.ID,
			Name:              t.Name,
			ProcessInstanceID: t.ProcessInstanceID,
			CreatedAt:         parseFlowableTime(t.CreateTime),
			Assignee:          t.Assignee,
			Variables:         fromRestVariables(t.Variables),
		})
	}
	return tasks, nil
}

func (c *FlowableClient) GetTaskVariables(ctx context.Context, taskID string) (map[string]any, error) {
	var out []restVariable
	if err := c.do(ctx, "get_task_variables", http.MethodGet, "/runtime/tasks/"+url.PathEscape(taskID)+"/variables", nil, &out); err != nil {
		return nil, err
	}
	return fromRestVariables(out), nil
}

func (c *FlowableClient) CompleteTask(ctx context.Context, taskID string, variables map[string]any) error {
	body := map[string]any{
		"action":    "complete",
		"variables": toRestVariables(variables, ""),
	}
	if err := c.do(ctx, "complete_task", http.MethodPost, "/runtime/tasks/"+url.PathEscape(taskID), body, nil); err != nil {
		return err
	}
	logger.Log.WithField("task_id", taskID).Info("[workflow][flowable] task completed")
	return nil
}

// TriggerMessage finds the execution of the process instance that waits at
// activityID and delivers the message event to it.
func (c *FlowableClient) TriggerMessage(ctx context.Context, processInstanceID, activityID, messageName string, variables map[string]any) (string, error) {
	q := url.Values{}
	q.Set("processInstanceId", processInstanceID)
	var out struct {
		Data []restExecution `json:"data"`
	}
	if err := c.do(ctx, "list_executions", http.MethodGet, "/runtime/executions?"+q.Encode(), nil, &out); err != nil {
		return "", err
	}

	executionID := ""
	for _, e := range out.Data {
		if e.ActivityID == activityID {
			executionID = e.ID
			break
		}
	}
	if executionID == "" {
		return "", entities.NewNotFoundError("no execution of process %s is waiting at %s", processInstanceID, activityID)
	}

	body := map[string]any{
		"action":      "messageEventReceived",
		"messageName": messageName,
		"variables":   toRestVariables(variables, ""),
	}
	if err := c.do(ctx, "trigger_message", http.MethodPut, "/runtime/executions/"+url.PathEscape(executionID), body, nil); err != nil {
		return "", err
	}
	logger.Log.WithFields(logrus.Fields{"process_id": processInstanceID, "execution_id": executionID, "message": messageName}).
		Info("[workflow][flowable] message delivered")
	return executionID, nil
}

func (c *FlowableClient) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.WithField("operation", op).WithError(err).Warn("[workflow][flowable] request failed")
		return fmt.Errorf("flowable %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.Log.WithFields(logrus.Fields{"operation": op, "status": resp.StatusCode}).Warn("[workflow][flowable] unexpected status")
		return &StatusError{Operation: op, StatusCode: resp.StatusCode, Body: string(msg)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("flowable %s: decode response: %w", op, err)
	}
	return nil
}

func toRestVariables(vars map[string]any, typ string) []restVariable {
	out := make([]restVariable, 0, len(vars))
	for name, value := range vars {
		out = append(out, restVariable{Name: name, Value: value, Type: typ})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Flowable writes offsets without a colon (2025-01-10T09:00:00.000+0000).
func parseFlowableTime(s string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05.000-0700", time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func fromRestVariables(vars []restVariable) map[string]any {
	out := make(map[string]any, len(vars))
	for _, v := range vars {
		out[v.Name] = v.Value
	}
	return out
}
