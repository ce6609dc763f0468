package normalizer_api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_normalizers "github.com/rapidaai/tts-utils/api/normalizer-api/internal/normalizers"
	"github.com/rapidaai/tts-utils/config"
	"github.com/rapidaai/tts-utils/pkg/commons"
)

type stubNormalizer struct {
	err error
}

func (s stubNormalizer) Normalize(ctx context.Context, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "ok.", nil
}

func newTestEngine(normalizer TextNormalizer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.AppConfig{Name: "tts-utils", Version: "test", Locale: "pt-BR"}
	api := New(cfg, commons.NewNopLogger(), normalizer)

	engine := gin.New()
	engine.POST("/v1/normalize", api.Normalize)
	engine.GET("/healthz/", api.Healthz)
	engine.GET("/readiness/", api.Readiness)
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNormalize_WithPipeline(t *testing.T) {
	pipeline := internal_normalizers.BuildNormalizerPipeline(commons.NewNopLogger(), internal_normalizers.DefaultNormalizerConfig())
	engine := newTestEngine(pipeline)

	w := doRequest(engine, http.MethodPost, "/v1/normalize", `{"text": "Paguei R$10,50 pelo produto"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp NormalizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Paguei R$10,50 pelo produto", resp.Text)
	assert.Equal(t, "Paguei dez reais e cinquenta centavos pelo produto.", resp.Normalized)
	assert.NotEmpty(t, w.Header().Get(commons.HEADER_REQUEST_ID))
}

func TestNormalize_EchoesRequestID(t *testing.T) {
	engine := newTestEngine(stubNormalizer{})

	w := doRequest(engine, http.MethodPost, "/v1/normalize", `{"text": "x"}`, map[string]string{commons.HEADER_REQUEST_ID: "req-42"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(commons.HEADER_REQUEST_ID))
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name       string
		normalizer TextNormalizer
		body       string
		status     int
	}{
		{"missing text", stubNormalizer{}, `{}`, http.StatusBadRequest},
		{"invalid json", stubNormalizer{}, `{"text":`, http.StatusBadRequest},
		{"overflow", stubNormalizer{err: internal_normalizers.ErrNumericOverflow}, `{"text": "1"}`, http.StatusUnprocessableEntity},
		{"malformed", stubNormalizer{err: internal_normalizers.ErrMalformedInput}, `{"text": "1"}`, http.StatusUnprocessableEntity},
		{"unexpected", stubNormalizer{err: errors.New("boom")}, `{"text": "1"}`, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(newTestEngine(tt.normalizer), http.MethodPost, "/v1/normalize", tt.body, nil)
			assert.Equal(t, tt.status, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHealthEndpoints(t *testing.T) {
	engine := newTestEngine(stubNormalizer{})

	w := doRequest(engine, http.MethodGet, "/healthz/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locale":"pt-BR"`)

	w = doRequest(engine, http.MethodGet, "/readiness/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
