package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentinel-recon/internal/domain"
)

func TestNewBillingRecord(t *testing.T) {
	ts := time.Date(2025, 12, 1, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name      string
		rawAmount string
		want      string
		wantErr   bool
	}{
		{name: "integer amount", rawAmount: "12000", want: "12000"},
		{name: "two decimal places", rawAmount: "7200.00", want: "7200.00"},
		{name: "zero is allowed", rawAmount: "0", want: "0"},
		{name: "negative amount", rawAmount: "-50.00", wantErr: true},
		{name: "malformed amount", rawAmount: "twelve", wantErr: true},
		{name: "empty amount", rawAmount: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewBillingRecord("TXN-1001", "Acme Corp", tt.rawAmount, ts)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *domain.InvalidAmountError
				require.True(t, errors.As(err, &invalid))
				assert.Equal(t, "TXN-1001", invalid.TransactionID)
				assert.Equal(t, tt.rawAmount, invalid.Raw)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "TXN-1001", got.TransactionID)
			assert.Equal(t, "Acme Corp", got.ClientName)
			assert.True(t, got.BilledAmount.Equal(decimal.RequireFromString(tt.want)))
			assert.Equal(t, ts, got.Timestamp)
		})
	}
}

func TestNewPaymentRecord(t *testing.T) {
	settled := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)

	t.Run("valid payment", func(t *testing.T) {
		got, err := domain.NewPaymentRecord("TXN-1003", "BNK-REF-A003", "4500.00", settled)
		require.NoError(t, err)
		assert.Equal(t, "TXN-1003", got.TransactionID)
		assert.Equal(t, "BNK-REF-A003", got.BankRef)
		assert.True(t, got.ReceivedAmount.Equal(decimal.RequireFromString("4500")))
		assert.Equal(t, settled, got.SettledDate)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := domain.NewPaymentRecord("TXN-1003", "BNK-REF-A003", "-4500.00", settled)
		var invalid *domain.InvalidAmountError
		require.True(t, errors.As(err, &invalid))
	})
}

func TestErrorMessages(t *testing.T) {
	dup := &domain.DuplicateKeyError{TransactionID: "TXN-1001"}
	assert.Contains(t, dup.Error(), "TXN-1001")

	invalid := &domain.InvalidAmountError{TransactionID: "TXN-1002", Raw: "oops", Reason: "not a decimal"}
	assert.Contains(t, invalid.Error(), "TXN-1002")
	assert.Contains(t, invalid.Error(), "oops")
}
