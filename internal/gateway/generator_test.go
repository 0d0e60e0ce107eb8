package gateway

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinel-recon/internal/domain"
	"sentinel-recon/internal/engine"
)

func TestDatasetGenerator_Generate(t *testing.T) {
	dir := t.TempDir()

	salesPath, bankPath, err := NewDatasetGenerator().Generate(dir)
	require.NoError(t, err)

	repo := NewCSVRecordRepository()
	ctx := context.Background()

	billing, err := repo.GetBillingRecords(ctx, salesPath)
	require.NoError(t, err)
	payments, err := repo.GetPaymentRecords(ctx, bankPath)
	require.NoError(t, err)

	assert.Len(t, billing, 10)
	assert.Len(t, payments, 9)

	// TXN-1005 is the seeded missing payment
	for _, p := range payments {
		assert.NotEqual(t, "TXN-1005", p.TransactionID)
	}
}

func TestDatasetGenerator_SeededAnomaliesReconcile(t *testing.T) {
	dir := t.TempDir()

	salesPath, bankPath, err := NewDatasetGenerator().Generate(dir)
	require.NoError(t, err)

	repo := NewCSVRecordRepository()
	ctx := context.Background()

	billing, err := repo.GetBillingRecords(ctx, salesPath)
	require.NoError(t, err)
	payments, err := repo.GetPaymentRecords(ctx, bankPath)
	require.NoError(t, err)

	result, err := engine.Reconcile(billing, payments)
	require.NoError(t, err)

	assert.Equal(t, 10, result.Summary.TotalProcessed)
	assert.Equal(t, 8, result.Summary.Matched)
	assert.Equal(t, 1, result.Summary.Variance)
	assert.Equal(t, 1, result.Summary.Missing)
	assert.True(t, result.Summary.TotalExposure.Equal(decimal.RequireFromString("7700")),
		"exposure = %s", result.Summary.TotalExposure)

	statuses := make(map[string]domain.OutcomeStatus, len(result.Outcomes))
	for _, o := range result.Outcomes {
		statuses[o.Billing.TransactionID] = o.Status
	}
	assert.Equal(t, domain.StatusMissing, statuses["TXN-1005"])
	assert.Equal(t, domain.StatusVariance, statuses["TXN-1003"])
	assert.Equal(t, domain.StatusMatched, statuses["TXN-1008"])
}
