package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/petbloom/backend/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestOrderFindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormOrderRepository(gormDB)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{}))

	order, err := repo.FindByID(context.Background(), id)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Nil(t, order)
}

func TestOrderFindByID_PreloadsItems(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormOrderRepository(gormDB)

	id := uuid.New()
	userID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status", "total_cents", "created_at", "updated_at"}).
			AddRow(id, userID, models.OrderStatusPending, int64(3500), now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "quantity", "price_cents"}).
			AddRow(uuid.New(), id, 2, int64(1000)).
			AddRow(uuid.New(), id, 1, int64(1500)))

	order, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, int64(3500), order.TotalCents)
	assert.Len(t, order.OrderItems, 2)
}

func TestOrderUpdateStatus(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormOrderRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), id, models.OrderStatusShipped)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartUpdateQuantity_WritesOnlyQuantity(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewGormCartRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	// the frozen price column must not appear in the statement
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cart_items" SET "quantity"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateQuantity(context.Background(), id, 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
