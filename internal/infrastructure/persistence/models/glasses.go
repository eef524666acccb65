package models

import (
	"time"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/glasses"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GlassModel is the persistence model for the Glass order aggregate.
// The eye prescription columns are named left_eye/right_eye because
// "left" and "right" are reserved words in postgres.
type GlassModel struct {
	BaseModel
	CustomerID    uuid.UUID              `gorm:"type:uuid;not null;index"`
	Frame         string                 `gorm:"type:varchar(200);not null"`
	LensType      string                 `gorm:"type:varchar(200);not null"`
	LeftEye       string                 `gorm:"column:left_eye;type:varchar(50);not null"`
	RightEye      string                 `gorm:"column:right_eye;type:varchar(50);not null"`
	Price         decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Deposit       decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	OrderDate     time.Time              `gorm:"not null"`
	DeliveryDate  time.Time              `gorm:"not null"`
	PaymentMethod glasses.PaymentMethod  `gorm:"type:varchar(20);not null"`
	PaymentStatus glasses.PaymentStatus  `gorm:"type:varchar(20);not null;default:'Unpaid'"`
	Installments  []InstallmentModel     `gorm:"foreignKey:GlassID"`
}

// TableName returns the table name for GORM
func (GlassModel) TableName() string {
	return "glasses"
}

// ToDomain converts the persistence model to a domain Glass aggregate.
func (m *GlassModel) ToDomain() *glasses.Glass {
	entries := make([]*glasses.Installment, len(m.Installments))
	for i := range m.Installments {
		entries[i] = m.Installments[i].ToDomain()
	}
	return &glasses.Glass{
		BaseEntity:    m.BaseModel.ToDomain(),
		CustomerID:    m.CustomerID,
		Frame:         m.Frame,
		LensType:      m.LensType,
		Left:          m.LeftEye,
		Right:         m.RightEye,
		Price:         m.Price,
		Deposit:       m.Deposit,
		OrderDate:     m.OrderDate,
		DeliveryDate:  m.DeliveryDate,
		PaymentMethod: m.PaymentMethod,
		PaymentStatus: m.PaymentStatus,
		Installments:  entries,
	}
}

// FromDomain populates the persistence model from a domain Glass aggregate.
// Ledger entries are persisted separately so removals can be tracked.
func (m *GlassModel) FromDomain(g *glasses.Glass) {
	m.FromDomainBaseEntity(g.BaseEntity)
	m.CustomerID = g.CustomerID
	m.Frame = g.Frame
	m.LensType = g.LensType
	m.LeftEye = g.Left
	m.RightEye = g.Right
	m.Price = g.Price
	m.Deposit = g.Deposit
	m.OrderDate = g.OrderDate
	m.DeliveryDate = g.DeliveryDate
	m.PaymentMethod = g.PaymentMethod
	m.PaymentStatus = g.PaymentStatus
}

// GlassModelFromDomain creates a new persistence model from a domain Glass aggregate.
func GlassModelFromDomain(g *glasses.Glass) *GlassModel {
	m := &GlassModel{}
	m.FromDomain(g)
	return m
}

// InstallmentModel is the persistence model for a ledger entry.
type InstallmentModel struct {
	BaseModel
	GlassID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaidDate  time.Time       `gorm:"not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Remaining decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToDomain converts the persistence model to a domain Installment entity.
func (m *InstallmentModel) ToDomain() *glasses.Installment {
	return &glasses.Installment{
		BaseEntity: m.BaseModel.ToDomain(),
		GlassID:    m.GlassID,
		PaidDate:   m.PaidDate,
		Amount:     m.Amount,
		Total:      m.Total,
		Remaining:  m.Remaining,
	}
}

// FromDomain populates the persistence model from a domain Installment entity.
func (m *InstallmentModel) FromDomain(entry *glasses.Installment) {
	m.FromDomainBaseEntity(entry.BaseEntity)
	m.GlassID = entry.GlassID
	m.PaidDate = entry.PaidDate
	m.Amount = entry.Amount
	m.Total = entry.Total
	m.Remaining = entry.Remaining
}

// InstallmentModelFromDomain creates a new persistence model from a domain Installment entity.
func InstallmentModelFromDomain(entry *glasses.Installment) *InstallmentModel {
	m := &InstallmentModel{}
	m.FromDomain(entry)
	return m
}
