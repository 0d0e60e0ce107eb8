// Package engine implements the reconciliation pass: a left outer join of
// billing records on payment records keyed by transaction id, followed by a
// per-row classification.
package engine

import (
	"github.com/shopspring/decimal"

	"sentinel-recon/internal/domain"
)

// Reconcile classifies every billing record against the payment feed and
// returns the full result in one pass. It is pure: inputs are not mutated
// and identical inputs always produce identical results.
//
// Outcomes follow billing input order. Duplicate billing transaction ids
// fail with domain.DuplicateKeyError before any outcome is produced.
// Duplicate payment transaction ids are tolerated: the first occurrence
// wins and later ones are counted as ignored diagnostics.
func Reconcile(billing []domain.BillingRecord, payments []domain.PaymentRecord) (*domain.ReconciliationResult, error) {
	billed := make(map[string]struct{}, len(billing))
	for _, b := range billing {
		if _, ok := billed[b.TransactionID]; ok {
			return nil, &domain.DuplicateKeyError{TransactionID: b.TransactionID}
		}
		billed[b.TransactionID] = struct{}{}
	}

	lookup := make(map[string]domain.PaymentRecord, len(payments))
	ignored := 0
	for _, p := range payments {
		if _, ok := lookup[p.TransactionID]; ok {
			ignored++
			continue
		}
		lookup[p.TransactionID] = p
	}

	result := &domain.ReconciliationResult{
		Outcomes:                 make([]domain.Outcome, 0, len(billing)),
		DuplicatePaymentsIgnored: ignored,
	}
	exposure := decimal.Zero

	for _, b := range billing {
		payment, ok := lookup[b.TransactionID]
		switch {
		case !ok:
			result.Outcomes = append(result.Outcomes, domain.Outcome{
				Billing: b,
				Status:  domain.StatusMissing,
			})
			result.Summary.Missing++
			exposure = exposure.Add(b.BilledAmount)
		case b.BilledAmount.Equal(payment.ReceivedAmount):
			p := payment
			result.Outcomes = append(result.Outcomes, domain.Outcome{
				Billing: b,
				Payment: &p,
				Status:  domain.StatusMatched,
			})
			result.Summary.Matched++
		default:
			p := payment
			delta := b.BilledAmount.Sub(p.ReceivedAmount)
			result.Outcomes = append(result.Outcomes, domain.Outcome{
				Billing: b,
				Payment: &p,
				Status:  domain.StatusVariance,
				Delta:   delta,
			})
			result.Summary.Variance++
			exposure = exposure.Add(delta.Abs())
		}
	}

	// Orphan payments are a secondary diagnostic, collected in payment
	// input order with the same first-occurrence policy as the lookup.
	orphanSeen := make(map[string]struct{})
	for _, p := range payments {
		if _, ok := billed[p.TransactionID]; ok {
			continue
		}
		if _, ok := orphanSeen[p.TransactionID]; ok {
			continue
		}
		orphanSeen[p.TransactionID] = struct{}{}
		result.OrphanPayments = append(result.OrphanPayments, p)
	}

	result.Summary.TotalProcessed = len(billing)
	result.Summary.TotalExposure = exposure
	return result, nil
}
