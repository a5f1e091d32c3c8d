package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	apperrors "github.com/petbloom/backend/pkg/errors"
	repositories "github.com/petbloom/backend/repository"
	"gorm.io/gorm"
)

// Authorize loads a resource and checks that it belongs to the acting
// principal. The existence check runs before the owner comparison, so a
// non-owner asking for a nonexistent id sees NotFound rather than
// Forbidden. Every ownership-guarded mutation in the service layer goes
// through this one function, parameterized by loader and owner accessor.
func Authorize[T any](ctx context.Context, principalID uuid.UUID, load func(context.Context) (*T, error), ownerOf func(*T) uuid.UUID) (*T, error) {
	resource, err := load(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	if ownerOf(resource) != principalID {
		return nil, apperrors.ErrForbidden
	}
	return resource, nil
}

// storageErr maps a storage error onto the caller-visible taxonomy:
// serialization conflicts are retryable, everything else is surfaced as a
// generic storage failure without leaking internals.
func storageErr(err error) error {
	if repositories.IsSerializationError(err) {
		return apperrors.Wrap(apperrors.ErrSerializationConflict, err)
	}
	return apperrors.Wrap(apperrors.ErrStorageFailure, err)
}
