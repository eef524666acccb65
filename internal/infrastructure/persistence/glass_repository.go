package persistence

import (
	"context"
	"errors"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/glasses"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormGlassRepository implements glasses.Repository using GORM
type GormGlassRepository struct {
	db *gorm.DB
}

// NewGormGlassRepository creates a new GormGlassRepository
func NewGormGlassRepository(db *gorm.DB) *GormGlassRepository {
	return &GormGlassRepository{db: db}
}

func withInstallments(db *gorm.DB) *gorm.DB {
	return db.Preload("Installments", func(db *gorm.DB) *gorm.DB {
		return db.Order("paid_date ASC, created_at ASC")
	})
}

// FindByID finds an order by its ID with the ledger loaded in paid date order
func (r *GormGlassRepository) FindByID(ctx context.Context, id uuid.UUID) (*glasses.Glass, error) {
	var model models.GlassModel
	if err := withInstallments(r.db.WithContext(ctx)).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer returns all of a customer's orders with ledgers loaded
func (r *GormGlassRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*glasses.Glass, error) {
	var glassModels []models.GlassModel
	if err := withInstallments(r.db.WithContext(ctx)).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&glassModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*glasses.Glass, len(glassModels))
	for i := range glassModels {
		orders[i] = glassModels[i].ToDomain()
	}
	return orders, nil
}

// FindByInstallmentID resolves a ledger entry to its owning order
func (r *GormGlassRepository) FindByInstallmentID(ctx context.Context, installmentID uuid.UUID) (*glasses.Glass, error) {
	var entry models.InstallmentModel
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", installmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.FindByID(ctx, entry.GlassID)
}

// Save persists the order and its full ledger in one transaction. Every
// entry is upserted because a single mutation shifts the running totals
// of the entries after it.
func (r *GormGlassRepository) Save(ctx context.Context, glass *glasses.Glass) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveGlassTx(tx, glass)
	})
	if err != nil {
		return err
	}

	glass.ClearRemovedInstallments()
	return nil
}

// Delete removes an order and its ledger
func (r *GormGlassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("glass_id = ?", id).Delete(&models.InstallmentModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.GlassModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// saveGlassTx upserts the order row, its ledger entries, and deletes
// entries removed from the aggregate since it was loaded.
func saveGlassTx(tx *gorm.DB, glass *glasses.Glass) error {
	model := models.GlassModelFromDomain(glass)
	if err := tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model).Error; err != nil {
		return err
	}

	for _, entry := range glass.Installments {
		entryModel := models.InstallmentModelFromDomain(entry)
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
			Create(entryModel).Error; err != nil {
			return err
		}
	}

	if removed := glass.RemovedInstallmentIDs(); len(removed) > 0 {
		if err := tx.Where("id IN ?", removed).Delete(&models.InstallmentModel{}).Error; err != nil {
			return err
		}
	}

	return nil
}
