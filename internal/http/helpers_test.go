package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/mocks"
)

const (
	adminToken   = "admin-token"
	laborerToken = "laborer-token"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v, []string{"Bombela", "Unamusa"}); err != nil {
			panic(err)
		}
	}
}

var (
	testAdmin = dto.Claims{
		UserID:  primitive.NewObjectID(),
		Email:   "admin@example.com",
		Role:    model.RoleAdmin,
		Company: "Bombela",
	}
	testLaborer = dto.Claims{
		UserID:  primitive.NewObjectID(),
		Email:   "crew1@example.com",
		Role:    model.RoleLaborer,
		Company: "Unamusa",
	}
)

// testServer wires the full router to service mocks.
type testServer struct {
	router   *gin.Engine
	auth     *mocks.MockAuthService
	users    *mocks.MockUserService
	jobs     *mocks.MockJobService
	potholes *mocks.MockPotholeService
	jobTypes *mocks.MockJobTypeService
	logs     *mocks.MockLoggingService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		auth:     new(mocks.MockAuthService),
		users:    new(mocks.MockUserService),
		jobs:     new(mocks.MockJobService),
		potholes: new(mocks.MockPotholeService),
		jobTypes: new(mocks.MockJobTypeService),
		logs:     new(mocks.MockLoggingService),
	}

	admin, laborer := testAdmin, testLaborer
	s.auth.On("ValidateToken", mock.Anything, adminToken).Return(&admin, nil).Maybe()
	s.auth.On("ValidateToken", mock.Anything, laborerToken).Return(&laborer, nil).Maybe()

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.AuthService = s.auth
	cfg.UserService = s.users
	cfg.JobService = s.jobs
	cfg.PotholeService = s.potholes
	cfg.JobTypeService = s.jobTypes
	cfg.LoggingService = s.logs

	s.router = NewRouter(NewHealthHandler(), cfg)

	t.Cleanup(func() {
		s.users.AssertExpectations(t)
		s.jobs.AssertExpectations(t)
		s.potholes.AssertExpectations(t)
		s.jobTypes.AssertExpectations(t)
		s.logs.AssertExpectations(t)
	})
	return s
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// decodeData unmarshals the data field of a success envelope into v.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var envelope struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.NotEmpty(t, envelope.RequestID)
	require.NoError(t, json.Unmarshal(envelope.Data, v))
}

type listEnvelope[T any] struct {
	Items  []T `json:"items"`
	Count  int `json:"count"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func assertStatus(t *testing.T, expected int, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, expected, w.Code, "body: %s", w.Body.String())
}


func (s *testServer) newRequest(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
