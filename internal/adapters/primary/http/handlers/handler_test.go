package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	ports "loan-approval-service/internal/core/ports/output"
	"loan-approval-service/internal/core/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAPI(scorer ports.Scorer, snap ports.Snapshot) *gin.Engine {
	h := New(
		services.NewPredictionService(scorer, 0.5),
		services.NewAnalyticsService(snap),
	)
	r := gin.New()
	h.RegisterAPI(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
