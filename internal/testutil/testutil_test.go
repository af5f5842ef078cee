package testutil_test

import (
	"os"
	"testing"

	"momoapi/internal/errors"
	"momoapi/internal/models"
	"momoapi/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	var count int64
	if err := db.Table("transactions").Count(&count).Error; err != nil {
		t.Fatalf("table %q should exist after migration: %v", "transactions", err)
	}
	if count != 0 {
		t.Errorf("expected empty table, got %d rows", count)
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	second := testutil.SetupTestDB(t)

	record := models.NewTransactionRecord(1, testutil.NewTransaction(1))
	if err := first.Create(&record).Error; err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	var count int64
	second.Model(&models.TransactionRecord{}).Count(&count)
	if count != 0 {
		t.Errorf("expected second database to be empty, got %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	records := testutil.NewTransactions(3)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[2].ID != "3" || records[2].Reference != "TXN000003" {
		t.Errorf("unexpected third record: %+v", records[2])
	}

	path := testutil.WriteDataFile(t, "[]")
	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	if string(data) != "[]" {
		t.Errorf("expected file content %q, got %q", "[]", data)
	}

	if _, err := os.Stat(testutil.TempDataPath(t)); !os.IsNotExist(err) {
		t.Errorf("expected temp data path to not exist, got %v", err)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrTransactionNotFound, "TRANSACTION_NOT_FOUND")
	testutil.AssertAppErrorFields(t,
		errors.WithFields(errors.ErrMissingFields, "Missing required fields: ", "type", "amount"),
		"MISSING_FIELDS", "type", "amount")
}
