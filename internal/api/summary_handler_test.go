package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(authCfg config.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	tracker := service.NewTrackerService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	api.SetupRoutes(router, authCfg, tracker)
	return router
}

func postSummary(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateSummary(t *testing.T) {
	router := newTestRouter(config.AuthConfig{})

	rr := postSummary(router, `{"workoutType":"RUN","data":[15000,1,75]}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp api.SummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Running", resp.TrainingType)
	assert.InDelta(t, 9.75, resp.Distance, 1e-9)
	assert.InDelta(t, 9.75, resp.Speed, 1e-9)
	assert.InDelta(t, 699.75, resp.Calories, 1e-6)
	assert.Equal(t,
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		resp.Message)
}

func TestCreateSummaryUnknownType(t *testing.T) {
	router := newTestRouter(config.AuthConfig{})

	rr := postSummary(router, `{"workoutType":"XXX","data":[1]}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "XXX")
}

func TestCreateSummaryArityMismatch(t *testing.T) {
	router := newTestRouter(config.AuthConfig{})

	rr := postSummary(router, `{"workoutType":"SWM","data":[720,1,80]}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateSummaryInvalidBody(t *testing.T) {
	router := newTestRouter(config.AuthConfig{})

	rr := postSummary(router, `{"data":[15000,1,75]}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateSummaryAuth(t *testing.T) {
	const secret = "test-secret"
	router := newTestRouter(config.AuthConfig{Enabled: true, Secret: secret})

	t.Run("missing token", func(t *testing.T) {
		rr := postSummary(router, `{"workoutType":"RUN","data":[15000,1,75]}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rr := postSummary(router, `{"workoutType":"RUN","data":[15000,1,75]}`, map[string]string{
			"Authorization": "Token abc",
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "sensor-hub",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		rr := postSummary(router, `{"workoutType":"RUN","data":[15000,1,75]}`, map[string]string{
			"Authorization": "Bearer " + signed,
		})
		assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "sensor-hub",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		rr := postSummary(router, `{"workoutType":"RUN","data":[15000,1,75]}`, map[string]string{
			"Authorization": "Bearer " + signed,
		})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestPing(t *testing.T) {
	router := newTestRouter(config.AuthConfig{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "pong")
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(config.AuthConfig{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
