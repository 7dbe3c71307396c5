package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

// Login registers a first-time user, lets an existing user move to the
// "Requested" status, and otherwise hands back the stored user untouched.
func (u *userUsecase) Login(ctx context.Context, user domain.Document) (*domain.LoginOutcome, error) {
	user = user.Without(domain.IDField)
	email := user.String(domain.UserEmailField)

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		res, err := u.userRepo.UpsertByEmail(ctx, email, user)
		if err != nil {
			return nil, err
		}
		return &domain.LoginOutcome{Update: res}, nil
	}

	if user.String(domain.UserStatusField) == domain.StatusRequested {
		res, err := u.userRepo.UpdateByEmail(ctx, email, domain.Document{
			domain.UserStatusField: domain.StatusRequested,
		})
		if err != nil {
			return nil, err
		}
		return &domain.LoginOutcome{Update: res}, nil
	}

	return &domain.LoginOutcome{Existing: existing}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, email string) (domain.Document, error) {
	return u.userRepo.FindByEmail(ctx, email)
}

func (u *userUsecase) UpdateUser(ctx context.Context, email string, fields domain.Document) (*domain.UpdateResult, error) {
	fields = fields.Without(domain.IDField)
	if len(fields) == 0 {
		return nil, apperror.BadRequest("update body must contain at least one field")
	}

	res, err := u.userRepo.UpdateByEmail(ctx, email, fields)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apperror.Conflict("email already in use", err)
		}
		return nil, err
	}
	return res, nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]domain.Document, error) {
	return u.userRepo.FindAll(ctx)
}

// HasRole reads the user fresh on every call; roles are never cached.
func (u *userUsecase) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.String(domain.UserRoleField) == role, nil
}
