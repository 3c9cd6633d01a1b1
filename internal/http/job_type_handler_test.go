package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/formula"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

func TestJobTypeHandler_ListTypes(t *testing.T) {
	s := newTestServer(t)
	s.jobTypes.On("ListTypes", mock.Anything).Return([]*model.JobType{
		{ID: primitive.NewObjectID(), Name: "Road marking", Formula: "PAINT", Company: "Bombela"},
	}, nil)

	w := s.do(http.MethodGet, "/api/job-types", laborerToken, nil)

	assertStatus(t, http.StatusOK, w)
	var list listEnvelope[model.JobType]
	decodeData(t, w, &list)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "PAINT", list.Items[0].Formula)
}

func TestJobTypeHandler_CreateType(t *testing.T) {
	valid := dto.CreateJobTypeRequest{
		Name:           "Road marking",
		Formula:        "PAINT",
		RequiredInputs: []dto.RequiredInputRequest{{Name: "area", Unit: "m2"}},
		Company:        "Bombela",
	}

	tests := []struct {
		name           string
		token          string
		setupMocks     func(*testServer)
		expectedStatus int
	}{
		{
			name:  "created",
			token: adminToken,
			setupMocks: func(s *testServer) {
				s.jobTypes.On("CreateType", mock.Anything, valid).
					Return(&model.JobType{ID: primitive.NewObjectID(), Name: valid.Name, Formula: valid.Formula}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:  "unknown formula",
			token: adminToken,
			setupMocks: func(s *testServer) {
				s.jobTypes.On("CreateType", mock.Anything, valid).Return(nil, service.ErrUnknownFormula)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "duplicate name",
			token: adminToken,
			setupMocks: func(s *testServer) {
				s.jobTypes.On("CreateType", mock.Anything, valid).Return(nil, service.ErrJobTypeExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "laborer forbidden",
			token:          laborerToken,
			setupMocks:     func(*testServer) {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setupMocks(s)
			assertStatus(t, tt.expectedStatus, s.do(http.MethodPost, "/api/job-types", tt.token, valid))
		})
	}
}

func TestJobTypeHandler_SubmitSheet(t *testing.T) {
	jobTypeID := primitive.NewObjectID()
	valid := dto.CreateJobSheetRequest{
		JobType: jobTypeID.Hex(),
		Inputs:  []dto.QuantityRequest{{Name: "area", Value: 12.5, Unit: "m2"}},
	}

	t.Run("outputs computed", func(t *testing.T) {
		s := newTestServer(t)
		s.jobTypes.On("SubmitSheet", mock.Anything, testLaborer, valid).Return(&model.JobSheet{
			ID:      primitive.NewObjectID(),
			JobType: jobTypeID,
			User:    testLaborer.UserID,
			Outputs: []model.Quantity{{Name: "paint", Value: 3.75, Unit: "l"}},
		}, nil)

		w := s.do(http.MethodPost, "/api/job-sheets", laborerToken, valid)

		assertStatus(t, http.StatusCreated, w)
		var got model.JobSheet
		decodeData(t, w, &got)
		assert.Equal(t, 3.75, got.Outputs[0].Value)
	})

	t.Run("missing formula input", func(t *testing.T) {
		s := newTestServer(t)
		s.jobTypes.On("SubmitSheet", mock.Anything, testLaborer, valid).
			Return(nil, &formula.MissingInputError{Formula: "PAINT", Input: "coats"})

		w := s.do(http.MethodPost, "/api/job-sheets", laborerToken, valid)

		assertStatus(t, http.StatusUnprocessableEntity, w)
		assert.Equal(t, "coats is required", decodeError(t, w).Details["inputs"])
	})

	t.Run("duplicate inputs", func(t *testing.T) {
		s := newTestServer(t)
		body := dto.CreateJobSheetRequest{
			JobType: jobTypeID.Hex(),
			Inputs: []dto.QuantityRequest{
				{Name: "area", Value: 1, Unit: "m2"},
				{Name: "area", Value: 2, Unit: "m2"},
			},
		}
		w := s.do(http.MethodPost, "/api/job-sheets", laborerToken, body)
		assertStatus(t, http.StatusBadRequest, w)
		assert.Contains(t, decodeError(t, w).Details, "inputs")
	})

	t.Run("unknown job type", func(t *testing.T) {
		s := newTestServer(t)
		s.jobTypes.On("SubmitSheet", mock.Anything, testLaborer, valid).Return(nil, service.ErrJobTypeNotFound)
		assertStatus(t, http.StatusNotFound, s.do(http.MethodPost, "/api/job-sheets", laborerToken, valid))
	})
}

func TestJobTypeHandler_ListSheets(t *testing.T) {
	s := newTestServer(t)
	s.jobTypes.On("ListSheets", mock.Anything, testLaborer, query.Params{}, repository.ListOptions{Limit: 10, Skip: 10}).
		Return([]*model.JobSheet{}, nil)

	w := s.do(http.MethodGet, "/api/job-sheets?limit=10&offset=10", laborerToken, nil)

	assertStatus(t, http.StatusOK, w)
	var list listEnvelope[model.JobSheet]
	decodeData(t, w, &list)
	assert.Equal(t, 10, list.Offset)
	assert.Empty(t, list.Items)
}
