package glasses

import (
	"context"
	"errors"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/glasses"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentService drives the ledger recalculation engine: it loads the
// owning order aggregate, applies the mutation, and saves the recomputed
// ledger in one atomic write.
type InstallmentService struct {
	glassRepo glasses.Repository
}

// NewInstallmentService creates a new InstallmentService
func NewInstallmentService(glassRepo glasses.Repository) *InstallmentService {
	return &InstallmentService{glassRepo: glassRepo}
}

// Add inserts a dated payment into an order's ledger
func (s *InstallmentService) Add(ctx context.Context, glassID uuid.UUID, req AddInstallmentRequest) (*InstallmentResponse, error) {
	glass, err := s.glassRepo.FindByID(ctx, glassID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Glass not found")
		}
		return nil, err
	}

	entry, err := glass.AddInstallment(decimal.NewFromFloat(req.Amount), req.PaidDate)
	if err != nil {
		return nil, err
	}
	if err := s.glassRepo.Save(ctx, glass); err != nil {
		return nil, err
	}

	resp := ToInstallmentResponse(entry)
	return &resp, nil
}

// Edit changes an existing payment's amount and date
func (s *InstallmentService) Edit(ctx context.Context, installmentID uuid.UUID, req EditInstallmentRequest) (*InstallmentResponse, error) {
	glass, err := s.glassRepo.FindByInstallmentID(ctx, installmentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Installment not found")
		}
		return nil, err
	}

	entry, err := glass.EditInstallment(installmentID, decimal.NewFromFloat(req.Amount), req.PaidDate)
	if err != nil {
		return nil, err
	}
	if err := s.glassRepo.Save(ctx, glass); err != nil {
		return nil, err
	}

	resp := ToInstallmentResponse(entry)
	return &resp, nil
}

// DeleteLatest removes the newest payment from an order's ledger
func (s *InstallmentService) DeleteLatest(ctx context.Context, glassID uuid.UUID) (*InstallmentResponse, error) {
	glass, err := s.glassRepo.FindByID(ctx, glassID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("No installment found to delete.")
		}
		return nil, err
	}

	removed, err := glass.RemoveLatestInstallment()
	if err != nil {
		return nil, err
	}
	if err := s.glassRepo.Save(ctx, glass); err != nil {
		return nil, err
	}

	resp := ToInstallmentResponse(removed)
	return &resp, nil
}
