package gateway

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Mock dataset file names.
const (
	SalesLogFile = "sales_log.csv"
	BankFeedFile = "bank_feed.csv"
)

// DatasetGenerator writes synthetic sales and bank datasets with seeded
// anomalies for QA runs: TXN-1005 is billed but never paid, TXN-1003 is
// underpaid by $500, and TXN-1008 is a perfect-match control.
type DatasetGenerator struct{}

// NewDatasetGenerator creates a new generator instance.
func NewDatasetGenerator() *DatasetGenerator {
	return &DatasetGenerator{}
}

var salesRows = [][]string{
	{"txn_id", "client", "billed_amount", "timestamp"},
	{"TXN-1001", "Acme Corp", "12000", "2025-12-01 09:15:00"},
	{"TXN-1002", "GlobalTech Inc", "8500", "2025-12-02 11:30:00"},
	{"TXN-1003", "Beta Industries", "5000", "2025-12-03 14:20:00"},
	{"TXN-1004", "Omega Solutions", "15000", "2025-12-04 10:45:00"},
	{"TXN-1005", "Phantom LLC", "7200", "2025-12-05 16:00:00"},
	{"TXN-1006", "Delta Enterprises", "9800", "2025-12-06 13:10:00"},
	{"TXN-1007", "Epsilon Group", "11500", "2025-12-07 08:50:00"},
	{"TXN-1008", "Control Co", "6000", "2025-12-08 15:30:00"},
	{"TXN-1009", "Zenith Partners", "13200", "2025-12-09 12:00:00"},
	{"TXN-1010", "Vortex Systems", "10500", "2025-12-10 17:20:00"},
}

// TXN-1005 is deliberately absent from the feed.
var bankRows = [][]string{
	{"txn_id", "bank_ref", "received_amount", "settled_date"},
	{"TXN-1001", "BNK-REF-A001", "12000", "2025-12-01"},
	{"TXN-1002", "BNK-REF-A002", "8500", "2025-12-02"},
	{"TXN-1003", "BNK-REF-A003", "4500", "2025-12-03"},
	{"TXN-1004", "BNK-REF-A004", "15000", "2025-12-04"},
	{"TXN-1006", "BNK-REF-A006", "9800", "2025-12-06"},
	{"TXN-1007", "BNK-REF-A007", "11500", "2025-12-07"},
	{"TXN-1008", "BNK-REF-A008", "6000", "2025-12-08"},
	{"TXN-1009", "BNK-REF-A009", "13200", "2025-12-09"},
	{"TXN-1010", "BNK-REF-A010", "10500", "2025-12-10"},
}

// Generate writes both datasets into dir, creating it if needed, and
// returns the sales log and bank feed paths.
func (g *DatasetGenerator) Generate(dir string) (salesPath, bankPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	salesPath = filepath.Join(dir, SalesLogFile)
	if err := writeCSV(salesPath, salesRows); err != nil {
		return "", "", err
	}

	bankPath = filepath.Join(dir, BankFeedFile)
	if err := writeCSV(bankPath, bankRows); err != nil {
		return "", "", err
	}
	return salesPath, bankPath, nil
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
