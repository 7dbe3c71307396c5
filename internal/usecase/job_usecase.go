package usecase

import (
	"context"
	"math"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
	now     func() time.Time
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

// CreateJob stores the posted document as is. Any client supplied _id is dropped
// so the store always generates the id.
func (u *jobUsecase) CreateJob(ctx context.Context, job domain.Document) (*domain.InsertResult, error) {
	return u.jobRepo.Insert(ctx, job.Without(domain.IDField))
}

// ListJobs pages through jobs in insertion order. A page below 1 is treated as 1
// and a size of 0 or less returns everything after the skip. A page whose
// offset does not fit in int64 lies past every job.
func (u *jobUsecase) ListJobs(ctx context.Context, page, size int, category, search string) ([]domain.Document, error) {
	if page < 1 {
		page = 1
	}
	q := domain.JobQuery{
		Category: category,
		Search:   search,
	}
	if size > 0 {
		if int64(page-1) > math.MaxInt64/int64(size) {
			return []domain.Document{}, nil
		}
		q.Skip = int64(page-1) * int64(size)
		q.Limit = int64(size)
	}
	return u.jobRepo.Find(ctx, q)
}

func (u *jobUsecase) ListJobsByOwner(ctx context.Context, email string) ([]domain.Document, error) {
	if err := requireIdentity(ctx, email); err != nil {
		return nil, err
	}
	return u.jobRepo.FindByOwner(ctx, email)
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (domain.Document, error) {
	job, err := u.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := u.jobRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return res, nil
}

// PatchJob merges fields into the job, creating it under id when missing.
func (u *jobUsecase) PatchJob(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	fields = fields.Without(domain.IDField)
	if len(fields) == 0 {
		return nil, apperror.BadRequest("update body must contain at least one field")
	}

	res, err := u.jobRepo.UpsertFields(ctx, id, fields)
	if err != nil {
		return nil, storeError(err)
	}
	return res, nil
}

func (u *jobUsecase) CountJobs(ctx context.Context) (int64, error) {
	return u.jobRepo.Count(ctx)
}
