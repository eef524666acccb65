package persistence

import (
	"context"
	"errors"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/customer"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements customer.Repository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// withLedger preloads orders and their ledgers. Ledger entries load in
// paid date order so the running totals read top to bottom; created_at
// breaks same-day ties.
func withLedger(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Glasses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Glasses.Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("paid_date ASC, created_at ASC")
		})
}

// FindByID finds a customer by its ID with orders and ledgers nested
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := withLedger(r.db.WithContext(ctx)).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a customer by exact name match
func (r *GormCustomerRepository) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := withLedger(r.db.WithContext(ctx)).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every customer with orders and ledgers nested
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var customerModels []models.CustomerModel
	if err := withLedger(r.db.WithContext(ctx)).Order("created_at ASC").Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = customerModels[i].ToDomain()
	}
	return customers, nil
}

// Save persists the customer and its attached orders in one transaction
func (r *GormCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.CustomerModelFromDomain(c)
		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(model).Error; err != nil {
			return err
		}

		for _, glass := range c.Glasses {
			if err := saveGlassTx(tx, glass); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, glass := range c.Glasses {
		glass.ClearRemovedInstallments()
	}
	return nil
}

// UpdateContact writes only the customer row. Orders and ledgers are
// persisted through the glass repository; re-upserting a nested snapshot
// here could clobber a newer ledger write.
func (r *GormCustomerRepository) UpdateContact(ctx context.Context, c *customer.Customer) error {
	result := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":       c.Name,
			"phone":      c.Phone,
			"address":    c.Address,
			"updated_at": c.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a customer, cascading through its orders and their ledgers
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("glass_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&models.GlassModel{}).
				Select("id").
				Where("customer_id = ?", id),
		).Delete(&models.InstallmentModel{}).Error; err != nil {
			return err
		}

		if err := tx.Where("customer_id = ?", id).Delete(&models.GlassModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.CustomerModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// DeleteAll wipes every customer, order and ledger entry
func (r *GormCustomerRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.InstallmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.GlassModel{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.CustomerModel{}).Error
	})
}
