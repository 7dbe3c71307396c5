package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	appRepo domain.ApplicationRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository) domain.ApplicationUsecase {
	return &applicationUsecase{appRepo: appRepo}
}

// Apply records one application per (email, jobId) and bumps the job's
// applicant counter in the same store transaction.
func (u *applicationUsecase) Apply(ctx context.Context, application domain.Document) (*domain.InsertResult, error) {
	application = application.Without(domain.IDField)
	email := application.String(domain.ApplicationEmailField)
	jobID := application.String(domain.ApplicationJobIDField)

	exists, err := u.appRepo.Exists(ctx, email, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.PlainBadRequest(domain.AlreadyAppliedMessage)
	}

	res, err := u.appRepo.Submit(ctx, application)
	if err != nil {
		// Lost the race against a concurrent submit of the same pair.
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.PlainBadRequest(domain.AlreadyAppliedMessage)
		}
		return nil, storeError(err)
	}
	return res, nil
}

func (u *applicationUsecase) ListByApplicant(ctx context.Context, email, category string) ([]domain.Document, error) {
	if err := requireIdentity(ctx, email); err != nil {
		return nil, err
	}
	return u.appRepo.FindByApplicant(ctx, email, category)
}

func (u *applicationUsecase) ListAll(ctx context.Context) ([]domain.Document, error) {
	return u.appRepo.FindAll(ctx)
}
