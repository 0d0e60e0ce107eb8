// Package report renders a reconciliation result into a human-readable
// audit document. Rendering is a presentation concern: it never reclassifies
// outcomes and it is deterministic for a given result.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"sentinel-recon/internal/domain"
)

const ruleWidth = 80

const noFindings = "No findings in this category.\n"

// Format renders the three report sections in fixed order: critical
// findings (missing payments), warning findings (amount variances), and the
// executive summary. Empty sections are still emitted for audit
// completeness.
func Format(result *domain.ReconciliationResult) string {
	var b strings.Builder

	heavy := strings.Repeat("=", ruleWidth) + "\n"
	light := strings.Repeat("-", ruleWidth) + "\n"

	b.WriteString(heavy)
	b.WriteString("SENTINEL FORENSIC AUDIT REPORT\n")
	b.WriteString("Automated Data Integrity Protocol\n")
	b.WriteString(heavy)
	fmt.Fprintf(&b, "Total Transactions Analyzed: %d\n", result.Summary.TotalProcessed)
	b.WriteString(heavy)
	b.WriteString("\n")

	writeMissingSection(&b, light, result)
	b.WriteString("\n")
	writeVarianceSection(&b, light, result)
	b.WriteString("\n")
	writeSummarySection(&b, light, result)

	b.WriteString("\n")
	b.WriteString(heavy)
	b.WriteString("END OF REPORT\n")
	b.WriteString(heavy)

	return b.String()
}

func writeMissingSection(b *strings.Builder, light string, result *domain.ReconciliationResult) {
	b.WriteString("[CRITICAL FINDINGS] - MISSING PAYMENTS\n")
	b.WriteString(light)

	if result.Summary.Missing == 0 {
		b.WriteString(noFindings)
		b.WriteString(light)
		return
	}

	fmt.Fprintf(b, "Status: %d UNPAID TRANSACTION(S) IDENTIFIED\n\n", result.Summary.Missing)
	for _, o := range result.Outcomes {
		if o.Status != domain.StatusMissing {
			continue
		}
		fmt.Fprintf(b, "Transaction ID: %s\n", o.Billing.TransactionID)
		fmt.Fprintf(b, "Client: %s\n", o.Billing.ClientName)
		fmt.Fprintf(b, "Billed Amount: %s\n", Money(o.Billing.BilledAmount))
		fmt.Fprintf(b, "Billing Date: %s\n", o.Billing.Timestamp.Format(time.DateTime))
		b.WriteString("Status: UNPAID\n")
		b.WriteString(light)
	}
}

func writeVarianceSection(b *strings.Builder, light string, result *domain.ReconciliationResult) {
	b.WriteString("[WARNING FINDINGS] - AMOUNT DISCREPANCIES\n")
	b.WriteString(light)

	if result.Summary.Variance == 0 {
		b.WriteString(noFindings)
		b.WriteString(light)
		return
	}

	fmt.Fprintf(b, "Status: %d VARIANCE(S) DETECTED\n\n", result.Summary.Variance)
	for _, o := range result.Outcomes {
		if o.Status != domain.StatusVariance {
			continue
		}
		fmt.Fprintf(b, "Transaction ID: %s\n", o.Billing.TransactionID)
		fmt.Fprintf(b, "Billed Amount: %s\n", Money(o.Billing.BilledAmount))
		fmt.Fprintf(b, "Received Amount: %s\n", Money(o.Payment.ReceivedAmount))
		fmt.Fprintf(b, "Variance: %s\n", SignedMoney(o.Delta))
		b.WriteString(light)
	}
}

func writeSummarySection(b *strings.Builder, light string, result *domain.ReconciliationResult) {
	b.WriteString("[EXECUTIVE SUMMARY]\n")
	b.WriteString(light)
	fmt.Fprintf(b, "Total Records Processed: %d\n", result.Summary.TotalProcessed)
	fmt.Fprintf(b, "Matched: %d\n", result.Summary.Matched)
	fmt.Fprintf(b, "Variance: %d\n", result.Summary.Variance)
	fmt.Fprintf(b, "Missing: %d\n", result.Summary.Missing)
	fmt.Fprintf(b, "Total Financial Exposure: %s\n", Money(result.Summary.TotalExposure))
	b.WriteString(light)
}

// Money renders an amount with a fixed currency symbol and two decimal
// places, e.g. "$7200.00".
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// SignedMoney renders a delta with an explicit sign, e.g. "+$500.00".
func SignedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "+$" + d.StringFixed(2)
}
