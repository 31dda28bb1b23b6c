package workflow

import (
	"context"
	"sort"
	"sync"
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Candidate groups used by the in-memory engine.
const (
	MockRequestReviewGroup = "request-reviewers"
	MockOfferReviewGroup   = "offer-reviewers"
)

type mockTask struct {
	task  entities.WorkflowTask
	group string
}

// MockEngine stands in for Flowable in local runs. Starting a process opens a
// request review task and every delivered message opens an offer review task.
type MockEngine struct {
	mu        sync.Mutex
	processes map[string]bool
	tasks     map[string]mockTask
	now       func() time.Time
}

var _ interfaces.IWorkflowEngine = (*MockEngine)(nil)

func NewMockEngine() *MockEngine {
	return &MockEngine{
		processes: map[string]bool{},
		tasks:     map[string]mockTask{},
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (m *MockEngine) StartProcess(_ context.Context, _ string, variables map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	processID := "mock-process-" + uuid.NewString()
	m.processes[processID] = true
	m.addTask(processID, "Validate service request", MockRequestReviewGroup, variables)
	return processID, nil
}

func (m *MockEngine) ListTasksForGroup(_ context.Context, group string) ([]entities.WorkflowTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entities.WorkflowTask{}
	for _, t := range m.tasks {
		if t.group == group {
			out = append(out, t.task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockEngine) GetTaskVariables(_ context.Context, taskID string) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[taskID]
	if !ok {
		return nil, entities.NewNotFoundError("task %s not found", taskID)
	}
	vars := make(map[string]any, len(t.task.Variables))
	for k, v := range t.task.Variables {
		vars[k] = v
	}
	return vars, nil
}

func (m *MockEngine) CompleteTask(_ context.Context, taskID string, _ map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[taskID]; !ok {
		return entities.NewNotFoundError("task %s not found", taskID)
	}
	delete(m.tasks, taskID)
	return nil
}

func (m *MockEngine) TriggerMessage(_ context.Context, processInstanceID, _, _ string, variables map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.processes[processInstanceID] {
		return "", entities.NewNotFoundError("process %s not found", processInstanceID)
	}
	m.addTask(processInstanceID, "Review service offer", MockOfferReviewGroup, variables)
	return "mock-execution-" + processInstanceID, nil
}

// addTask must be called with the lock held.
func (m *MockEngine) addTask(processID, name, group string, variables map[string]any) {
	vars := make(map[string]any, len(variables))
	for k, v := range variables {
		vars[k] = v
	}
	id := uuid.NewString()
	m.tasks[id] = mockTask{
		group: group,
		task: entities.WorkflowTask{
			ID:                id,
			Name:              name,
			ProcessInstanceID: processID,
			CreatedAt:         m.now(),
			Variables:         vars,
		},
	}
}
