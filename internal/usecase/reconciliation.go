package usecase

import (
	"context"
	"fmt"

	"sentinel-recon/internal/domain"
	"sentinel-recon/internal/engine"
)

// ReconciliationUseCase orchestrates the reconciliation process: load both
// datasets through the repository, run the engine, hand back the result.
// Errors are surfaced immediately with no partial result.
type ReconciliationUseCase struct {
	repo RecordRepository
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(repo RecordRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo}
}

// Reconcile loads the sales log and bank feed and reconciles them.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, salesPath, bankPath string) (*domain.ReconciliationResult, error) {
	billing, err := uc.repo.GetBillingRecords(ctx, salesPath)
	if err != nil {
		return nil, fmt.Errorf("could not get billing records: %w", err)
	}

	payments, err := uc.repo.GetPaymentRecords(ctx, bankPath)
	if err != nil {
		return nil, fmt.Errorf("could not get payment records: %w", err)
	}

	result, err := engine.Reconcile(billing, payments)
	if err != nil {
		return nil, fmt.Errorf("reconciliation failed: %w", err)
	}
	return result, nil
}
