package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"sentinel-recon/internal/domain"
)

// Column layouts of the two feeds. Both carry a header row.
const (
	salesTimeLayout   = "2006-01-02 15:04:05"
	settledDateLayout = "2006-01-02"
)

// CSVRecordRepository implements the RecordRepository interface for CSV
// files: a sales log (txn_id,client,billed_amount,timestamp) and a bank
// feed (txn_id,bank_ref,received_amount,settled_date).
type CSVRecordRepository struct{}

// NewCSVRecordRepository creates a new repository instance.
func NewCSVRecordRepository() *CSVRecordRepository {
	return &CSVRecordRepository{}
}

// GetBillingRecords reads and parses the sales log CSV file.
func (r *CSVRecordRepository) GetBillingRecords(ctx context.Context, path string) ([]domain.BillingRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales log %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var records []domain.BillingRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		ts, err := time.Parse(salesTimeLayout, row[3])
		if err != nil {
			return nil, fmt.Errorf("could not parse timestamp '%s': %w", row[3], err)
		}

		record, err := domain.NewBillingRecord(row[0], row[1], row[2], ts)
		if err != nil {
			return nil, fmt.Errorf("invalid sales log row in %s: %w", path, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// GetPaymentRecords reads and parses the bank feed CSV file.
func (r *CSVRecordRepository) GetPaymentRecords(ctx context.Context, path string) ([]domain.PaymentRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bank feed %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var records []domain.PaymentRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		settled, err := time.Parse(settledDateLayout, row[3])
		if err != nil {
			return nil, fmt.Errorf("could not parse settled_date '%s': %w", row[3], err)
		}

		record, err := domain.NewPaymentRecord(row[0], row[1], row[2], settled)
		if err != nil {
			return nil, fmt.Errorf("invalid bank feed row in %s: %w", path, err)
		}
		records = append(records, record)
	}
	return records, nil
}
