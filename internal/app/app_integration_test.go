//go:build integration

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
)

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func newIntegrationApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{
		Server: config.ServerConfig{RequestTimeout: 10 * time.Second},
		Auth: config.AuthConfig{
			JWTSecretKey:     "integration-secret",
			JWTRefreshSecret: "integration-refresh-secret",
			AccessTokenTTL:   time.Minute,
			RefreshTokenTTL:  time.Hour,
			BcryptCost:       4,
			AdminEmail:       "admin@example.com",
			AdminPassword:    "admin-password",
		},
		Database: testDatabaseConfig(t),
		Domain: config.DomainConfig{
			Companies:        []string{"Bombela", "Unamusa"},
			MaterialUnitMass: 25,
			DefaultPageSize:  50,
			MaxPageSize:      500,
		},
	}

	a, err := InitializeApp(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a
}

func call(t *testing.T, a *App, method, path, token string, body interface{}) (*httptest.ResponseRecorder, json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env.Data
}

func login(t *testing.T, a *App, email, password string) string {
	t.Helper()
	w, data := call(t, a, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp.Token
}

// A full work order round trip: the admin assigns a job and the laborer records a pothole on it.
func TestRoadworks_Integration(t *testing.T) {
	a := newIntegrationApp(t)
	adminToken := login(t, a, "admin@example.com", "admin-password")

	w, data := call(t, a, http.MethodPost, "/api/users", adminToken, map[string]string{
		"email": "crew1@example.com", "password": "crew-password", "role": "laborer", "company": "Unamusa",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var laborer struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &laborer))
	laborerToken := login(t, a, "crew1@example.com", "crew-password")

	w, data = call(t, a, http.MethodPost, "/api/jobs", adminToken, map[string]interface{}{
		"name": "N1 Resurfacing Km 12", "jobType": []string{"POTHOLE"}, "company": "Unamusa",
		"user": laborer.ID, "isActive": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &job))

	t.Run("laborer records pothole with derived metrics", func(t *testing.T) {
		w, data := call(t, a, http.MethodPost, "/api/potholes", laborerToken, map[string]interface{}{
			"job": job.ID, "dimensions": map[string]float64{"l": 2, "w": 3, "d": 0.5}, "numberOfBags": 4,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var p struct {
			Area          float64 `json:"area"`
			Volume        float64 `json:"volume"`
			MaterialsInKg float64 `json:"materialsInKg"`
			Weather       string  `json:"weather"`
		}
		require.NoError(t, json.Unmarshal(data, &p))
		assert.Equal(t, 6.0, p.Area)
		assert.Equal(t, 3.0, p.Volume)
		assert.Equal(t, 100.0, p.MaterialsInKg)
		assert.Equal(t, "Sunny", p.Weather)
	})

	t.Run("zero depth rejected", func(t *testing.T) {
		w, _ := call(t, a, http.MethodPost, "/api/potholes", laborerToken, map[string]interface{}{
			"job": job.ID, "dimensions": map[string]float64{"l": 2, "w": 3, "d": 0}, "numberOfBags": 4,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("laborer sees own jobs only", func(t *testing.T) {
		w, data := call(t, a, http.MethodGet, "/api/jobs?isComplete=false", laborerToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var list struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(data, &list))
		assert.Equal(t, 1, list.Count)
	})

	t.Run("invalid boolean filter", func(t *testing.T) {
		w, _ := call(t, a, http.MethodGet, "/api/jobs?isComplete=maybe", adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("laborer cannot export", func(t *testing.T) {
		w, _ := call(t, a, http.MethodGet, "/api/potholes/export", laborerToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin exports workbook", func(t *testing.T) {
		w, _ := call(t, a, http.MethodGet, "/api/potholes/export?job="+job.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-Export-Rows"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
	})

	t.Run("readiness reports mongodb", func(t *testing.T) {
		w, _ := call(t, a, http.MethodGet, "/readyz", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mongodb_jobs_circuit")
	})

	t.Run("idempotent job creation", func(t *testing.T) {
		body := map[string]interface{}{
			"name": "R21 Km 4", "jobType": []string{"POTHOLE"}, "company": "Unamusa",
			"user": laborer.ID, "isActive": true,
		}
		send := func() *httptest.ResponseRecorder {
			raw, _ := json.Marshal(body)
			req := httptest.NewRequest(http.MethodPost, "/api/jobs", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+adminToken)
			req.Header.Set(middleware.IdempotencyKeyHeader, "r21-km4")
			w := httptest.NewRecorder()
			a.Router.ServeHTTP(w, req)
			return w
		}

		first, second := send(), send()
		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	})
}
