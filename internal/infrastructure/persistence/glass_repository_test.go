package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMockGlassRepository(t *testing.T) (*GormGlassRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormGlassRepository(gormDB), mock, mockDB
}

func expectGlassWithLedger(mock sqlmock.Sqlmock, glassID, customerID, installmentID uuid.UUID, now time.Time) {
	mock.ExpectQuery(`SELECT \* FROM "glasses" WHERE id = \$1 ORDER BY .* LIMIT .*`).
		WithArgs(glassID, 1).
		WillReturnRows(sqlmock.NewRows(glassColumns()).
			AddRow(glassID, now, now, customerID, "Aviator", "Progressive",
				"-1.25", "-1.50", decimal.NewFromInt(1000), decimal.NewFromInt(200),
				now, now, "Installments", "Unpaid"))

	mock.ExpectQuery(`SELECT \* FROM "installments" WHERE "installments"\."glass_id" = \$1 ORDER BY paid_date ASC, created_at ASC`).
		WithArgs(glassID).
		WillReturnRows(sqlmock.NewRows(installmentColumns()).
			AddRow(installmentID, now, now, glassID, now,
				decimal.NewFromInt(200), decimal.NewFromInt(200), decimal.NewFromInt(800)))
}

func TestGormGlassRepository_FindByID(t *testing.T) {
	t.Run("loads the order with its ledger ordered by paid date", func(t *testing.T) {
		repo, mock, mockDB := newMockGlassRepository(t)
		defer mockDB.Close()

		now := time.Now()
		glassID := uuid.New()
		customerID := uuid.New()
		installmentID := uuid.New()
		expectGlassWithLedger(mock, glassID, customerID, installmentID, now)

		glass, err := repo.FindByID(context.Background(), glassID)

		require.NoError(t, err)
		assert.Equal(t, glassID, glass.ID)
		assert.Equal(t, customerID, glass.CustomerID)
		assert.Equal(t, "-1.25", glass.Left)
		require.Len(t, glass.Installments, 1)
		assert.Equal(t, installmentID, glass.Installments[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockGlassRepository(t)
		defer mockDB.Close()

		glassID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "glasses" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(glassID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		glass, err := repo.FindByID(context.Background(), glassID)

		assert.Nil(t, glass)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormGlassRepository_FindByInstallmentID(t *testing.T) {
	t.Run("resolves the owning order from an entry id", func(t *testing.T) {
		repo, mock, mockDB := newMockGlassRepository(t)
		defer mockDB.Close()

		now := time.Now()
		glassID := uuid.New()
		customerID := uuid.New()
		installmentID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "installments" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(installmentID, 1).
			WillReturnRows(sqlmock.NewRows(installmentColumns()).
				AddRow(installmentID, now, now, glassID, now,
					decimal.NewFromInt(200), decimal.NewFromInt(200), decimal.NewFromInt(800)))

		expectGlassWithLedger(mock, glassID, customerID, installmentID, now)

		glass, err := repo.FindByInstallmentID(context.Background(), installmentID)

		require.NoError(t, err)
		assert.Equal(t, glassID, glass.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown entry maps to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockGlassRepository(t)
		defer mockDB.Close()

		installmentID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "installments" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(installmentID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		glass, err := repo.FindByInstallmentID(context.Background(), installmentID)

		assert.Nil(t, glass)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormGlassRepository_Delete(t *testing.T) {
	t.Run("removes the ledger before the order", func(t *testing.T) {
		repo, mock, mockDB := newMockGlassRepository(t)
		defer mockDB.Close()

		glassID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "installments" WHERE glass_id = \$1`).
			WithArgs(glassID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "glasses" WHERE id = \$1`).
			WithArgs(glassID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), glassID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing order rolls back as not found", func(t *testing.T) {
		repo, mock, mockDB := newMockGlassRepository(t)
		defer mockDB.Close()

		glassID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "installments" WHERE glass_id = \$1`).
			WithArgs(glassID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM "glasses" WHERE id = \$1`).
			WithArgs(glassID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), glassID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
