package models

import (
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/customer"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/glasses"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name    string       `gorm:"type:varchar(200);not null;index"`
	Phone   string       `gorm:"type:varchar(50)"`
	Address string       `gorm:"type:text"`
	Glasses []GlassModel `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *customer.Customer {
	orders := make([]*glasses.Glass, len(m.Glasses))
	for i := range m.Glasses {
		orders[i] = m.Glasses[i].ToDomain()
	}
	return &customer.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Phone:      m.Phone,
		Address:    m.Address,
		Glasses:    orders,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
// Nested orders are persisted through the glass repository, not here.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Phone = c.Phone
	m.Address = c.Address
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
