package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvalidAmountError reports a monetary amount that is negative or not a
// well-formed decimal. It is raised when a record is constructed, never
// during reconciliation.
type InvalidAmountError struct {
	TransactionID string
	Raw           string
	Reason        string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q for transaction %s: %s", e.Raw, e.TransactionID, e.Reason)
}

// BillingRecord is an internal ledger entry for an amount invoiced to a
// client. TransactionID is the natural key and must be unique within a
// billing collection.
type BillingRecord struct {
	TransactionID string          `json:"txn_id"`
	ClientName    string          `json:"client"`
	BilledAmount  decimal.Decimal `json:"billed_amount"`
	Timestamp     time.Time       `json:"timestamp"`
}

// PaymentRecord is an external confirmation of an amount actually received
// for a transaction. Absence of a payment for a billed transaction signals
// non-payment.
type PaymentRecord struct {
	TransactionID  string          `json:"txn_id"`
	BankRef        string          `json:"bank_ref"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	SettledDate    time.Time       `json:"settled_date"`
}

// NewBillingRecord parses the raw amount into an exact decimal and returns
// the record. A malformed or negative amount yields InvalidAmountError.
func NewBillingRecord(txnID, client, rawAmount string, ts time.Time) (BillingRecord, error) {
	amount, err := parseAmount(txnID, rawAmount)
	if err != nil {
		return BillingRecord{}, err
	}
	return BillingRecord{
		TransactionID: txnID,
		ClientName:    client,
		BilledAmount:  amount,
		Timestamp:     ts,
	}, nil
}

// NewPaymentRecord parses the raw amount into an exact decimal and returns
// the record. A malformed or negative amount yields InvalidAmountError.
func NewPaymentRecord(txnID, bankRef, rawAmount string, settled time.Time) (PaymentRecord, error) {
	amount, err := parseAmount(txnID, rawAmount)
	if err != nil {
		return PaymentRecord{}, err
	}
	return PaymentRecord{
		TransactionID:  txnID,
		BankRef:        bankRef,
		ReceivedAmount: amount,
		SettledDate:    settled,
	}, nil
}

func parseAmount(txnID, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &InvalidAmountError{TransactionID: txnID, Raw: raw, Reason: "not a decimal"}
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, &InvalidAmountError{TransactionID: txnID, Raw: raw, Reason: "amount is negative"}
	}
	return amount, nil
}
