package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Should upsert a first-time user", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo)

		user := domain.Document{"email": "new@jobquest.dev", "name": "New"}
		repo.On("FindByEmail", ctx, "new@jobquest.dev").Return(nil, nil)
		repo.On("UpsertByEmail", ctx, "new@jobquest.dev", user).
			Return(&domain.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil)

		out, err := uc.Login(ctx, user)
		require.NoError(t, err)
		require.NotNil(t, out.Update)
		assert.Equal(t, int64(1), out.Update.UpsertedCount)
		assert.Nil(t, out.Existing)
	})

	t.Run("Should only update status for a Requested login", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo)

		repo.On("FindByEmail", ctx, "host@jobquest.dev").Return(domain.Document{"email": "host@jobquest.dev", "role": ""}, nil)
		repo.On("UpdateByEmail", ctx, "host@jobquest.dev", domain.Document{"status": "Requested"}).
			Return(&domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

		out, err := uc.Login(ctx, domain.Document{"email": "host@jobquest.dev", "status": "Requested", "role": "admin"})
		require.NoError(t, err)
		require.NotNil(t, out.Update)
		assert.Equal(t, int64(1), out.Update.ModifiedCount)
	})

	t.Run("Should return the stored user unchanged otherwise", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo)

		stored := domain.Document{"_id": "u1", "email": "a@jobquest.dev", "role": "admin"}
		repo.On("FindByEmail", ctx, "a@jobquest.dev").Return(stored, nil)

		out, err := uc.Login(ctx, domain.Document{"email": "a@jobquest.dev", "role": "host"})
		require.NoError(t, err)
		assert.Nil(t, out.Update)
		assert.Equal(t, stored, out.Existing)
		repo.AssertNotCalled(t, "UpsertByEmail", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "UpdateByEmail", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should merge fields without _id", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo)

		repo.On("UpdateByEmail", ctx, "a@jobquest.dev", domain.Document{"role": "host"}).
			Return(&domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

		res, err := uc.UpdateUser(ctx, "a@jobquest.dev", domain.Document{"_id": "x", "role": "host"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
	})

	t.Run("Should map an email collision to conflict", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo)

		repo.On("UpdateByEmail", ctx, "a@jobquest.dev", domain.Document{"email": "b@jobquest.dev"}).
			Return(nil, domain.ErrEmailTaken)

		_, err := uc.UpdateUser(ctx, "a@jobquest.dev", domain.Document{"email": "b@jobquest.dev"})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusConflict, appErr.Code)
		assert.Equal(t, "email already in use", appErr.Message)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("Should reject an empty body", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(repo)

		_, err := uc.UpdateUser(ctx, "a@jobquest.dev", domain.Document{})
		assert.Error(t, err)
	})
}

func TestHasRole(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(repo)

	repo.On("FindByEmail", ctx, "admin@jobquest.dev").Return(domain.Document{"role": "admin"}, nil)
	repo.On("FindByEmail", ctx, "ghost@jobquest.dev").Return(nil, nil)

	ok, err := uc.HasRole(ctx, "admin@jobquest.dev", domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.HasRole(ctx, "admin@jobquest.dev", domain.RoleHost)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.HasRole(ctx, "ghost@jobquest.dev", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}
