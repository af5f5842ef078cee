package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"

	"momoapi/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTransaction returns a valid SEND transaction with id n.
func NewTransaction(n int) models.Transaction {
	return models.Transaction{
		ID:        strconv.Itoa(n),
		Type:      models.TransactionTypeSend,
		Amount:    float64(n * 100),
		Sender:    "0791234567",
		Receiver:  "0797654321",
		Timestamp: "2024-01-15T10:30:00",
		Status:    models.DefaultStatus,
		Reference: models.Reference(n),
	}
}

// NewTransactions returns count valid transactions with ids 1..count.
func NewTransactions(count int) []models.Transaction {
	records := make([]models.Transaction, count)
	for i := range records {
		records[i] = NewTransaction(i + 1)
	}
	return records
}

// ValidPayload returns a create payload that passes validation.
func ValidPayload() map[string]any {
	return map[string]any{
		"type":     "deposit",
		"amount":   100.0,
		"sender":   "0791234567",
		"receiver": "BANK",
	}
}

// TempDataPath returns a path inside a per-test directory where no file exists yet.
func TempDataPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data", "transactions.json")
}

// WriteDataFile writes content to a fresh file and returns its path.
func WriteDataFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transactions.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	return path
}
