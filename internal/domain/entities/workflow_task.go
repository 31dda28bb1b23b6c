package entities

import "time"

// WorkflowTask is a human task waiting in the workflow engine.
type WorkflowTask struct {
	ID                string         `json:"task_id"`
	Name              string         `json:"task_name"`
	ProcessInstanceID string         `json:"process_instance_id"`
	CreatedAt         time.Time      `json:"created_time"`
	Assignee          string         `json:"assignee,omitempty"`
	Variables         map[string]any `json:"variables"`
}

// StringVariable returns a string process variable, or "" when missing.
func (t WorkflowTask) StringVariable(name string) string {
	v, ok := t.Variables[name]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
