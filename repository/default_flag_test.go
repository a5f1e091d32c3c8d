package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// The set-default sequence must serialize on a per-owner advisory lock, not
// on row locks: when the owner has no committed rows yet there is nothing
// for FOR UPDATE to lock, and two first-time inserts could both commit as
// default. The lock has to be taken before any flag is written.
func TestCreateWithDefault_TakesOwnerLockBeforeWriting(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormAddressRepository(gormDB)

	userID := uuid.New()
	addressID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "user_addresses"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(addressID))
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`)).
		WithArgs(userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user_addresses"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user_addresses"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "user_addresses"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.CreateWithDefault(context.Background(), &models.UserAddress{
		UserID:  userID,
		Street:  "1 Elm St",
		City:    "Springfield",
		Country: "US",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithDefault_ConflictingCountAbortsTx(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormAddressRepository(gormDB)

	userID := uuid.New()
	addressID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "user_addresses"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(addressID))
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user_addresses"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "user_addresses"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "user_addresses"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := repo.CreateWithDefault(context.Background(), &models.UserAddress{
		UserID:  userID,
		Street:  "1 Elm St",
		City:    "Springfield",
		Country: "US",
	})
	assert.ErrorIs(t, err, apperrors.ErrConflictingDefault)
	assert.NoError(t, mock.ExpectationsWereMet())
}
