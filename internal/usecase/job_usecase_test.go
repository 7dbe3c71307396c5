package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestListJobsPaging(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		page     int
		size     int
		expected domain.JobQuery
	}{
		{"first page", 1, 10, domain.JobQuery{Skip: 0, Limit: 10}},
		{"third page", 3, 5, domain.JobQuery{Skip: 10, Limit: 5}},
		{"page below one is first page", 0, 4, domain.JobQuery{Skip: 0, Limit: 4}},
		{"no size means no limit", 2, 0, domain.JobQuery{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockJobRepo)
			uc := usecase.NewJobUsecase(repo)

			repo.On("Find", ctx, tc.expected).Return([]domain.Document{}, nil).Once()

			jobs, err := uc.ListJobs(ctx, tc.page, tc.size, "", "")
			require.NoError(t, err)
			assert.Empty(t, jobs)
			repo.AssertExpectations(t)
		})
	}

	t.Run("Should return nothing for a page beyond any offset", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		jobs, err := uc.ListJobs(ctx, math.MaxInt64, 10, "", "")
		require.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
		repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	})

	t.Run("Should keep the largest representable offset", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		size := 10
		page := int(math.MaxInt64/int64(size)) + 1
		q := domain.JobQuery{Skip: int64(page-1) * int64(size), Limit: int64(size)}
		repo.On("Find", ctx, q).Return([]domain.Document{}, nil).Once()

		_, err := uc.ListJobs(ctx, page, size, "", "")
		require.NoError(t, err)
		repo.AssertExpectations(t)
		assert.GreaterOrEqual(t, q.Skip, int64(0))
	})

	t.Run("Should pass category and search through", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		q := domain.JobQuery{Category: "Remote", Search: "engineer", Skip: 2, Limit: 2}
		repo.On("Find", ctx, q).Return([]domain.Document{{"jobTitle": "Software Engineer"}}, nil)

		jobs, err := uc.ListJobs(ctx, 2, 2, "Remote", "engineer")
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})
}

func TestListJobsByOwnerIdentity(t *testing.T) {
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo)

	t.Run("Should fail when token email does not match path email", func(t *testing.T) {
		_, err := uc.ListJobsByOwner(authed("host@jobquest.dev"), "other@jobquest.dev")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		assert.Equal(t, "forbidden access", appErr.Message)
		repo.AssertNotCalled(t, "FindByOwner", mock.Anything, mock.Anything)
	})

	t.Run("Should fail safely when context email is missing", func(t *testing.T) {
		_, err := uc.ListJobsByOwner(context.Background(), "host@jobquest.dev")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("Should list jobs of the matching owner", func(t *testing.T) {
		ctx := authed("host@jobquest.dev")
		owned := []domain.Document{{"jobOwner": map[string]any{"email": "host@jobquest.dev"}}}
		repo.On("FindByOwner", ctx, "host@jobquest.dev").Return(owned, nil)

		jobs, err := uc.ListJobsByOwner(ctx, "host@jobquest.dev")
		require.NoError(t, err)
		assert.Equal(t, owned, jobs)
	})
}

func TestCreateJobDropsClientID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo)

	repo.On("Insert", ctx, domain.Document{"jobTitle": "Designer"}).
		Return(&domain.InsertResult{Acknowledged: true, InsertedID: "generated"}, nil)

	res, err := uc.CreateJob(ctx, domain.Document{"_id": "client", "jobTitle": "Designer"})
	require.NoError(t, err)
	assert.Equal(t, "generated", res.InsertedID)
}

func TestGetJobInvalidID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo)

	repo.On("FindByID", ctx, "nope").Return(nil, domain.ErrInvalidID)
	repo.On("FindByID", ctx, "missing").Return(nil, nil)

	_, err := uc.GetJob(ctx, "nope")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "invalid id", appErr.Message)

	job, err := uc.GetJob(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestDeleteJobPassesStoreErrors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo)

	boom := errors.New("connection reset")
	repo.On("DeleteByID", ctx, "abc").Return(nil, boom)

	_, err := uc.DeleteJob(ctx, "abc")
	assert.ErrorIs(t, err, boom)
}

func TestPatchJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should upsert the patched fields without _id", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		upsertedID := "abc"
		repo.On("UpsertFields", ctx, "abc", domain.Document{"category": "Hybrid"}).
			Return(&domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &upsertedID}, nil)

		res, err := uc.PatchJob(ctx, "abc", domain.Document{"_id": "other", "category": "Hybrid"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.UpsertedCount)
	})

	t.Run("Should reject an empty patch", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		_, err := uc.PatchJob(ctx, "abc", domain.Document{"_id": "abc"})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		repo.AssertNotCalled(t, "UpsertFields", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCountJobs(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo)

	repo.On("Count", ctx).Return(int64(7), nil)

	n, err := uc.CountJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestExportJobs(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo)

	repo.On("Find", ctx, domain.JobQuery{}).Return([]domain.Document{
		{
			"_id":        "j1",
			"jobTitle":   "Software Engineer",
			"category":   "Remote",
			"jobOwner":   map[string]any{"email": "host@jobquest.dev"},
			"applicants": float64(3),
		},
		{"_id": "j2", "jobTitle": "Designer"},
	}, nil)

	data, filename, err := uc.ExportJobs(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^jobs_\d{8}_\d{6}\.xlsx$`, filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Job Title", "Category", "Owner Email", "Applicants"}, rows[0])
	assert.Equal(t, []string{"j1", "Software Engineer", "Remote", "host@jobquest.dev", "3"}, rows[1])
	assert.Equal(t, "j2", rows[2][0])
	assert.Equal(t, "0", rows[2][4])
}
