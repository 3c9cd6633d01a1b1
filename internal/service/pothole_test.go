package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/measure"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/mocks"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

func newPotholeService(unitMass float64) (service.PotholeService, *mocks.MockPotholeRepositoryInterface, *mocks.MockJobRepositoryInterface) {
	potholes := new(mocks.MockPotholeRepositoryInterface)
	jobs := new(mocks.MockJobRepositoryInterface)
	calc := measure.NewCalculator(measure.WithUnitMass(unitMass))
	return service.NewPotholeService(potholes, jobs, calc), potholes, jobs
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestPotholeService_Record(t *testing.T) {
	laborer := laborerClaims()
	jobID := primitive.NewObjectID()
	ownJob := &model.Job{ID: jobID, User: laborer.UserID.Hex()}

	valid := dto.CreatePotholeRequest{
		Job:          jobID.Hex(),
		Dimensions:   dto.DimensionsRequest{L: 2, W: 3, D: 0.5},
		NumberOfBags: 4,
	}

	t.Run("derives metrics on the server", func(t *testing.T) {
		svc, potholes, jobs := newPotholeService(25)
		jobs.On("FindByID", mock.Anything, jobID).Return(ownJob, nil)
		potholes.On("Create", mock.Anything, mock.AnythingOfType("*model.Pothole")).Return(nil)

		p, err := svc.Record(context.Background(), laborer, valid)

		require.NoError(t, err)
		assert.Equal(t, 6.0, p.Area)
		assert.Equal(t, 3.0, p.Volume)
		assert.Equal(t, 100.0, p.MaterialsInKg)
		assert.Equal(t, model.DefaultWeather, p.Weather)
		assert.Equal(t, jobID, p.Job)
	})

	t.Run("uses the configured unit mass", func(t *testing.T) {
		svc, potholes, jobs := newPotholeService(20)
		jobs.On("FindByID", mock.Anything, jobID).Return(ownJob, nil)
		potholes.On("Create", mock.Anything, mock.AnythingOfType("*model.Pothole")).Return(nil)

		p, err := svc.Record(context.Background(), laborer, valid)

		require.NoError(t, err)
		assert.Equal(t, 80.0, p.MaterialsInKg)
	})

	t.Run("negative dimension is rejected before any lookup", func(t *testing.T) {
		svc, potholes, jobs := newPotholeService(25)
		req := valid
		req.Dimensions.W = -1

		_, err := svc.Record(context.Background(), laborer, req)

		var invalid *measure.DomainInvalidError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "dimensions.w", invalid.Field)
		jobs.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		potholes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown job", func(t *testing.T) {
		svc, _, jobs := newPotholeService(25)
		jobs.On("FindByID", mock.Anything, jobID).Return(nil, nil)

		_, err := svc.Record(context.Background(), laborer, valid)

		assert.ErrorIs(t, err, service.ErrJobNotFound)
	})

	t.Run("job of another laborer", func(t *testing.T) {
		svc, _, jobs := newPotholeService(25)
		jobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, User: "someone"}, nil)

		_, err := svc.Record(context.Background(), laborer, valid)

		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

func TestPotholeService_Update(t *testing.T) {
	admin := adminClaims()
	id := primitive.NewObjectID()

	stored := func() *model.Pothole {
		p := &model.Pothole{ID: id, Job: primitive.NewObjectID(), Dimensions: model.Dimensions{L: 2, W: 3, D: 0.5}, NumberOfBags: 4, Weather: "Sunny"}
		p.ApplyMetrics(measure.NewCalculator().Derive(p.Measurement()))
		return p
	}

	t.Run("merges and recomputes", func(t *testing.T) {
		svc, potholes, _ := newPotholeService(25)
		potholes.On("FindByID", mock.Anything, id).Return(stored(), nil)
		potholes.On("Replace", mock.Anything, mock.AnythingOfType("*model.Pothole")).Return(true, nil)

		p, err := svc.Update(context.Background(), admin, id, dto.UpdatePotholeRequest{
			Dimensions:   &dto.DimensionsPatch{D: floatPtr(1)},
			NumberOfBags: intPtr(6),
		})

		require.NoError(t, err)
		assert.Equal(t, model.Dimensions{L: 2, W: 3, D: 1}, p.Dimensions)
		assert.Equal(t, 6.0, p.Area)
		assert.Equal(t, 6.0, p.Volume)
		assert.Equal(t, 150.0, p.MaterialsInKg)
		assert.Equal(t, "Sunny", p.Weather)
	})

	t.Run("merged values must stay valid", func(t *testing.T) {
		svc, potholes, _ := newPotholeService(25)
		potholes.On("FindByID", mock.Anything, id).Return(stored(), nil)

		_, err := svc.Update(context.Background(), admin, id, dto.UpdatePotholeRequest{NumberOfBags: intPtr(-2)})

		var invalid *measure.DomainInvalidError
		assert.True(t, errors.As(err, &invalid))
		potholes.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("missing sheet", func(t *testing.T) {
		svc, potholes, _ := newPotholeService(25)
		potholes.On("FindByID", mock.Anything, id).Return(nil, nil)

		_, err := svc.Update(context.Background(), admin, id, dto.UpdatePotholeRequest{NumberOfBags: intPtr(1)})

		assert.ErrorIs(t, err, service.ErrPotholeNotFound)
	})
}

func TestPotholeService_ListByJob(t *testing.T) {
	laborer := laborerClaims()
	jobID := primitive.NewObjectID()

	t.Run("unknown job has no sheets", func(t *testing.T) {
		svc, potholes, jobs := newPotholeService(25)
		jobs.On("FindByID", mock.Anything, jobID).Return(nil, nil)

		got, err := svc.ListByJob(context.Background(), laborer, jobID, repository.ListOptions{})

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
		potholes.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("assignee lists sheets of own job", func(t *testing.T) {
		svc, potholes, jobs := newPotholeService(25)
		jobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID, User: laborer.UserID.Hex()}, nil)
		potholes.On("List", mock.Anything, bson.M{"job": jobID}, repository.ListOptions{}).Return([]*model.Pothole{{Job: jobID}}, nil)

		got, err := svc.ListByJob(context.Background(), laborer, jobID, repository.ListOptions{})

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestPotholeService_List(t *testing.T) {
	laborer := laborerClaims()
	jobA, jobB := primitive.NewObjectID(), primitive.NewObjectID()

	t.Run("laborer without job filter sees sheets of assigned jobs", func(t *testing.T) {
		svc, potholes, jobs := newPotholeService(25)
		jobs.On("List", mock.Anything, bson.M{"user": laborer.UserID.Hex()}, repository.ListOptions{}).
			Return([]*model.Job{{ID: jobA}, {ID: jobB}}, nil)
		potholes.On("List", mock.Anything, bson.M{
			"job":     bson.M{"$in": []interface{}{jobA, jobB}},
			"$or":     []bson.M{{"weather": primitive.Regex{Pattern: "rain", Options: "i"}}},
		}, repository.ListOptions{}).Return([]*model.Pothole{}, nil)

		_, err := svc.List(context.Background(), laborer, query.Params{"search": "rain"}, repository.ListOptions{})

		require.NoError(t, err)
		potholes.AssertExpectations(t)
	})

	t.Run("admin filters by job id", func(t *testing.T) {
		svc, potholes, _ := newPotholeService(25)
		potholes.On("List", mock.Anything, bson.M{"job": jobA}, repository.ListOptions{Limit: 10}).Return([]*model.Pothole{}, nil)

		_, err := svc.List(context.Background(), adminClaims(), query.Params{"job": jobA.Hex()}, repository.ListOptions{Limit: 10})

		require.NoError(t, err)
		potholes.AssertExpectations(t)
	})

	t.Run("malformed job id", func(t *testing.T) {
		svc, _, _ := newPotholeService(25)

		_, err := svc.List(context.Background(), adminClaims(), query.Params{"job": "nope"}, repository.ListOptions{})

		var ve *query.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "job", ve.Param)
	})
}

func TestPotholeService_Export(t *testing.T) {
	svc, potholes, _ := newPotholeService(25)
	jobID := primitive.NewObjectID()
	rows := []*model.Pothole{
		{ID: primitive.NewObjectID(), Job: jobID, Dimensions: model.Dimensions{L: 2, W: 3, D: 0.5}, NumberOfBags: 4, Area: 6, Volume: 3, MaterialsInKg: 100, Weather: "Sunny"},
		{ID: primitive.NewObjectID(), Job: jobID, Dimensions: model.Dimensions{L: 1, W: 1, D: 0.1}, NumberOfBags: 1, Area: 1, Volume: 0.1, MaterialsInKg: 25, Weather: "Rain"},
	}
	potholes.On("List", mock.Anything, bson.M{"job": jobID}, repository.ListOptions{}).Return(rows, nil)

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), query.Params{"job": jobID.Hex()}, &buf)

	require.NoError(t, err)
	assert.Equal(t, 2, n)

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = book.Close() }()

	got, err := book.GetRows("Potholes")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Sheet ID", got[0][0])
	assert.Equal(t, "Materials (kg)", got[0][8])
	assert.Equal(t, rows[0].ID.Hex(), got[1][0])
	assert.Equal(t, "100", got[1][8])
	assert.Equal(t, "Rain", got[2][9])
}
