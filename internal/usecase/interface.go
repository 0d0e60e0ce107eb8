package usecase

import (
	"context"

	"sentinel-recon/internal/domain"
)

// RecordRepository defines the interface for fetching billing and payment
// records. The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go RecordRepository
type RecordRepository interface {
	GetBillingRecords(ctx context.Context, path string) ([]domain.BillingRecord, error)
	GetPaymentRecords(ctx context.Context, path string) ([]domain.PaymentRecord, error)
}
