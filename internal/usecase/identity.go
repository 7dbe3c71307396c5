package usecase

import (
	"context"
	"errors"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// requireIdentity rechecks that the token email placed on ctx by the auth gate
// matches the email a route is scoped to.
func requireIdentity(ctx context.Context, email string) error {
	tokenEmail, ok := ctx.Value(domain.KeyUserEmail).(string)
	if !ok || tokenEmail == "" {
		return apperror.Unauthenticated("unauthorized access")
	}
	if tokenEmail != email {
		return apperror.Forbidden("forbidden access")
	}
	return nil
}

// storeError translates store sentinels shared by every collection.
func storeError(err error) error {
	if errors.Is(err, domain.ErrInvalidID) {
		return apperror.New(http.StatusBadRequest, "invalid id", err)
	}
	return err
}
