package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"staffing_service/internal/adapter/http/validation"
	"staffing_service/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
	if err := validation.RegisterWithGin(); err != nil {
		panic(err)
	}
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
