package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"sentinel-recon/internal/domain"
	"sentinel-recon/internal/gateway"
	"sentinel-recon/internal/report"
	"sentinel-recon/internal/usecase"
)

func main() {
	// Define command-line flags
	salesFile := flag.String("sales", "", "Path to the sales log CSV file (required)")
	bankFile := flag.String("bank", "", "Path to the bank feed CSV file (required)")
	outFile := flag.String("out", "FORENSIC_REPORT.txt", "Path for the audit report, or '-' for stdout")
	verbose := flag.Bool("v", false, "Enable debug logging")
	quiet := flag.Bool("q", false, "Log warnings and errors only")
	flag.Parse()

	logger := newLogger(*verbose, *quiet)

	// Validate required flags
	if *salesFile == "" || *bankFile == "" {
		fmt.Println("Error: the -sales and -bank flags are required.")
		flag.Usage()
		os.Exit(1)
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the repository (the outermost layer)
	csvRepo := gateway.NewCSVRecordRepository()

	// 2. Create the usecase and inject the repository (the core logic layer)
	reconciliationUseCase := usecase.NewReconciliationUseCase(csvRepo)

	// --- Execute the Usecase ---
	logger.Info().Str("sales", *salesFile).Str("bank", *bankFile).Msg("commencing reconciliation")

	result, err := reconciliationUseCase.Reconcile(context.Background(), *salesFile, *bankFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("reconciliation failed")
	}

	logFindings(logger, result)

	// --- Present the Output ---
	// The formatter only ever sees a cleanly reconciled result.
	document := report.Format(result)
	if *outFile == "-" {
		fmt.Print(document)
	} else {
		if err := os.WriteFile(*outFile, []byte(document), 0o644); err != nil {
			logger.Fatal().Err(err).Msg("failed to write audit report")
		}
		logger.Info().Str("path", *outFile).Msg("audit report written")
	}
}

// newLogger configures console logging on stderr. -v wins over -q.
func newLogger(verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// logFindings maps outcome severities onto log levels: MISSING is logged as
// an error, VARIANCE as a warning, aggregates and orphans as info.
func logFindings(logger zerolog.Logger, result *domain.ReconciliationResult) {
	for _, o := range result.Outcomes {
		switch o.Status {
		case domain.StatusMissing:
			logger.Error().
				Str("txn_id", o.Billing.TransactionID).
				Str("client", o.Billing.ClientName).
				Str("billed", report.Money(o.Billing.BilledAmount)).
				Msg("missing payment: status UNPAID")
		case domain.StatusVariance:
			logger.Warn().
				Str("txn_id", o.Billing.TransactionID).
				Str("billed", report.Money(o.Billing.BilledAmount)).
				Str("received", report.Money(o.Payment.ReceivedAmount)).
				Str("variance", report.SignedMoney(o.Delta)).
				Msg("amount variance detected")
		}
	}

	for _, p := range result.OrphanPayments {
		logger.Info().
			Str("txn_id", p.TransactionID).
			Str("bank_ref", p.BankRef).
			Str("received", report.Money(p.ReceivedAmount)).
			Msg("orphan payment has no billing record")
	}

	if result.DuplicatePaymentsIgnored > 0 {
		logger.Info().
			Int("count", result.DuplicatePaymentsIgnored).
			Msg("duplicate payment rows ignored (first occurrence wins)")
	}

	logger.Info().
		Int("matched", result.Summary.Matched).
		Int("variance", result.Summary.Variance).
		Int("missing", result.Summary.Missing).
		Str("exposure", report.Money(result.Summary.TotalExposure)).
		Msg("reconciliation complete")
}
