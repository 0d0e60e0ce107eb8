package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OutcomeStatus tags the classification of a single billed transaction.
type OutcomeStatus string

const (
	StatusMatched  OutcomeStatus = "MATCHED"
	StatusVariance OutcomeStatus = "VARIANCE"
	StatusMissing  OutcomeStatus = "MISSING"
)

// Outcome is the classification of one billing record against the payment
// feed. Payment is nil for StatusMissing. Delta is billed minus received and
// is only meaningful for StatusVariance.
type Outcome struct {
	Billing BillingRecord   `json:"billing"`
	Payment *PaymentRecord  `json:"payment,omitempty"`
	Status  OutcomeStatus   `json:"status"`
	Delta   decimal.Decimal `json:"delta"`
}

// Summary provides aggregate statistics of the reconciliation pass. Exposure
// sums unpaid billed amounts and absolute variance deltas.
type Summary struct {
	TotalProcessed int             `json:"total_processed"`
	Matched        int             `json:"matched"`
	Variance       int             `json:"variance"`
	Missing        int             `json:"missing"`
	TotalExposure  decimal.Decimal `json:"total_exposure"`
}

// ReconciliationResult is the sole handoff artifact from the engine to the
// report formatter. Outcomes follow billing input order, one per billing
// record. The result is constructed by a single reconciliation pass and is
// not mutated afterwards.
type ReconciliationResult struct {
	Outcomes []Outcome `json:"outcomes"`
	Summary  Summary   `json:"summary"`

	// Diagnostics, not part of the primary outcome set.
	OrphanPayments           []PaymentRecord `json:"orphan_payments,omitempty"`
	DuplicatePaymentsIgnored int             `json:"duplicate_payments_ignored,omitempty"`
}

// DuplicateKeyError reports two billing records sharing a transaction id.
// This is a data-integrity violation in the upstream ledger and is never
// resolved by the engine.
type DuplicateKeyError struct {
	TransactionID string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate billing transaction id %s", e.TransactionID)
}
