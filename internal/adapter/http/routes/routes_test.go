package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staffing_service/internal/adapter/persistence/memory"
	"staffing_service/internal/infrastructure/catalog"
	"staffing_service/internal/infrastructure/config"
	"staffing_service/internal/infrastructure/logger"
	"staffing_service/internal/infrastructure/workflow"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
}

type apiClient struct {
	t      *testing.T
	router http.Handler
}

func newAPIClient(t *testing.T) apiClient {
	t.Helper()
	cfg := config.Config{StorageDriver: config.StorageMemory, WorkflowEngineMock: true, CatalogNotifierMock: true}
	router, err := newRouter(cfg, dependencies{
		storage:  memoryStorage(memory.NewStore()),
		engine:   workflow.New(cfg),
		catalog:  catalog.New(cfg),
		registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	return apiClient{t: t, router: router}
}

func (a apiClient) do(method, path, body string) (int, []byte) {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func (a apiClient) object(method, path, body string, wantStatus int) map[string]any {
	a.t.Helper()
	status, raw := a.do(method, path, body)
	require.Equal(a.t, wantStatus, status, string(raw))
	var out map[string]any
	require.NoError(a.t, json.Unmarshal(raw, &out))
	return out
}

func (a apiClient) list(path string) []map[string]any {
	a.t.Helper()
	status, raw := a.do(http.MethodGet, path, "")
	require.Equal(a.t, http.StatusOK, status, string(raw))
	var out []map[string]any
	require.NoError(a.t, json.Unmarshal(raw, &out))
	return out
}

func TestRouter_PingAndMetrics(t *testing.T) {
	api := newAPIClient(t)

	pong := api.object(http.MethodGet, "/v1/ping", "", http.StatusOK)
	assert.Equal(t, "pong", pong["message"])

	status, body := api.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestRouter_RequestToOrderToExtension(t *testing.T) {
	api := newAPIClient(t)

	req := api.object(http.MethodPost, "/v1/service-requests", `{
		"title":"Backend engineer","role_name":"backend","technology":"go",
		"start_date":"2025-01-01","end_date":"2025-01-31","expected_man_days":20
	}`, http.StatusCreated)
	requestID := req["id"].(string)
	require.NotEmpty(t, req["process_id"])

	requestTasks := api.list("/v1/service-requests/tasks?group=" + workflow.MockRequestReviewGroup)
	require.Len(t, requestTasks, 1)
	api.object(http.MethodPost, fmt.Sprintf("/v1/service-requests/tasks/%s/complete", requestTasks[0]["task_id"]), `{"decision":"approved"}`, http.StatusOK)

	submitted := api.object(http.MethodPost, "/v1/service-offers", fmt.Sprintf(`{
		"service_request_id":%q,"provider_id":"sup-1","provider_name":"Acme",
		"specialist_id":"spec-a","specialist_name":"Alice","daily_rate":"500","total_cost":"10000"
	}`, requestID), http.StatusCreated)
	require.NotEmpty(t, submitted["execution_id"])

	offerTasks := api.list("/v1/service-offers/tasks?group=" + workflow.MockOfferReviewGroup)
	require.Len(t, offerTasks, 1)
	decision := api.object(http.MethodPost, fmt.Sprintf("/v1/service-offers/tasks/%s/complete", offerTasks[0]["task_id"]), `{"decision":"final_approval"}`, http.StatusOK)
	order := decision["service_order"].(map[string]any)
	orderID := order["id"].(string)
	assert.Equal(t, "ACTIVE", order["status"])
	assert.Equal(t, "10000.00", order["current_contract_value"])

	ext := api.object(http.MethodPost, "/v1/service-orders/"+orderID+"/extensions",
		`{"additional_man_days":5,"new_end_date":"2025-02-07","additional_cost":"2500","reason":"scope grew"}`, http.StatusCreated)
	assert.Equal(t, "PENDING_SUPPLIER", ext["status"])

	pending := api.object(http.MethodGet, "/v1/service-orders/"+orderID, "", http.StatusOK)
	assert.Equal(t, "PENDING_EXTENSION", pending["status"])

	status, _ := api.do(http.MethodPost, "/v1/service-orders/"+orderID+"/complete", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(http.MethodPost, "/v1/extensions/"+ext["id"].(string)+"/approve", `{"user_role":"PROJECT_MANAGER"}`)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = api.do(http.MethodPost, "/v1/extensions/"+ext["id"].(string)+"/approve", `{}`)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = api.do(http.MethodPost, "/v1/extensions/"+ext["id"].(string)+"/reject", `{"user_role":"GUEST","reason":"no"}`)
	assert.Equal(t, http.StatusForbidden, status)

	api.object(http.MethodPost, "/v1/extensions/"+ext["id"].(string)+"/approve", `{"user_role":"SUPPLIER_REP"}`, http.StatusOK)
	status, _ = api.do(http.MethodPost, "/v1/extensions/"+ext["id"].(string)+"/approve", `{"user_role":"SUPPLIER_REP"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	extended := api.object(http.MethodGet, "/v1/service-orders/"+orderID, "", http.StatusOK)
	assert.Equal(t, "ACTIVE", extended["status"])
	assert.Equal(t, float64(25), extended["current_man_days"])
	assert.Equal(t, "2025-02-07", extended["current_end_date"])
	assert.Equal(t, "12500.00", extended["current_contract_value"])
	assert.Equal(t, true, extended["has_been_extended"])

	history := api.list("/v1/service-orders/" + orderID + "/extensions")
	require.Len(t, history, 1)
	assert.Equal(t, "APPROVED", history[0]["status"])

	done := api.object(http.MethodPost, "/v1/service-orders/"+orderID+"/complete", "", http.StatusOK)
	assert.Equal(t, "COMPLETED", done["status"])
	assert.NotNil(t, done["actual_end_date"])
}

func TestRouter_SubstitutionRouting(t *testing.T) {
	api := newAPIClient(t)

	order := api.object(http.MethodPost, "/v1/service-orders", `{
		"title":"QA","specialist_id":"spec-a","specialist_name":"Alice",
		"start_date":"2025-01-01","end_date":"2025-03-31","man_days":40,"daily_rate":"300"
	}`, http.StatusCreated)
	orderID := order["id"].(string)

	sub := api.object(http.MethodPost, "/v1/service-orders/"+orderID+"/substitutions", `{
		"initiated_by":"SUPPLIER_REPRESENTATIVE","outgoing_specialist_id":"spec-a",
		"incoming_specialist_id":"spec-b","incoming_specialist_name":"Bob","reason":"JOB_CHANGE"
	}`, http.StatusCreated)
	assert.Equal(t, "PENDING_CLIENT", sub["status"])

	status, body := api.do(http.MethodPost, "/v1/substitutions/"+sub["id"].(string)+"/reject", `{"user_role":"PROJECT_MANAGER","reason":"  "}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.True(t, strings.Contains(string(body), "VALIDATION_ERROR"), string(body))

	api.object(http.MethodPost, "/v1/substitutions/"+sub["id"].(string)+"/reject", `{"user_role":"PROJECT_MANAGER","reason":"keep Alice"}`, http.StatusOK)

	after := api.object(http.MethodGet, "/v1/service-orders/"+orderID, "", http.StatusOK)
	assert.Equal(t, "ACTIVE", after["status"])
	assert.Equal(t, "spec-a", after["current_specialist_id"])
	assert.Equal(t, false, after["has_been_substituted"])

	filtered := api.list("/v1/service-orders?specialist_name=ali&status=active")
	require.Len(t, filtered, 1)
	assert.Empty(t, api.list("/v1/service-orders?status=completed"))
}
