package services

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"momoapi/internal/models"
	"momoapi/internal/store"
	"momoapi/internal/testutil"
)

var fixedNow = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func setupService(t *testing.T, seed []models.Transaction) (*transactionService, *store.Store) {
	t.Helper()

	p := store.NewJSONFilePersister(testutil.TempDataPath(t), "")
	if seed != nil {
		testutil.AssertNoError(t, p.Save(seed))
	}
	s := store.New(p)
	s.Load()

	svc := NewTransactionService(s).(*transactionService)
	svc.now = func() time.Time { return fixedNow }
	return svc, s
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	t.Run("fills defaults on an empty collection", func(t *testing.T) {
		svc, _ := setupService(t, nil)

		tx, err := svc.CreateTransaction(map[string]any{
			"type":     "deposit",
			"amount":   json.Number("100"),
			"sender":   "A",
			"receiver": "B",
		})
		testutil.AssertNoError(t, err)

		if tx.ID != "1" {
			t.Errorf("ID = %q, want 1", tx.ID)
		}
		if tx.Type != models.TransactionTypeDeposit {
			t.Errorf("Type = %q, want DEPOSIT", tx.Type)
		}
		if tx.Amount != 100 {
			t.Errorf("Amount = %v, want 100", tx.Amount)
		}
		if tx.Reference != "TXN000001" {
			t.Errorf("Reference = %q, want TXN000001", tx.Reference)
		}
		if tx.Status != "completed" {
			t.Errorf("Status = %q, want completed", tx.Status)
		}
		if tx.Timestamp != "2024-03-01T12:30:00Z" {
			t.Errorf("Timestamp = %q, want current time", tx.Timestamp)
		}
		if tx.Category != nil || tx.Description != nil {
			t.Error("optional fields should stay absent")
		}
	})

	t.Run("keeps supplied optional fields", func(t *testing.T) {
		svc, _ := setupService(t, nil)

		input := testutil.ValidPayload()
		input["timestamp"] = "2024-01-15T10:30:00"
		input["status"] = "pending"
		input["reference"] = "EXT-42"
		input["category"] = "savings"
		input["description"] = "monthly deposit"

		tx, err := svc.CreateTransaction(input)
		testutil.AssertNoError(t, err)

		if tx.Timestamp != "2024-01-15T10:30:00" || tx.Status != "pending" || tx.Reference != "EXT-42" {
			t.Errorf("supplied fields not kept: %+v", tx)
		}
		if tx.Category == nil || *tx.Category != "savings" {
			t.Errorf("Category = %v, want savings", tx.Category)
		}
		if tx.Description == nil || *tx.Description != "monthly deposit" {
			t.Errorf("Description = %v, want monthly deposit", tx.Description)
		}
	})

	t.Run("ignores a client supplied id", func(t *testing.T) {
		svc, _ := setupService(t, testutil.NewTransactions(2))

		input := testutil.ValidPayload()
		input["id"] = "1"

		tx, err := svc.CreateTransaction(input)
		testutil.AssertNoError(t, err)
		if tx.ID != "3" {
			t.Errorf("ID = %q, want 3", tx.ID)
		}
	})

	t.Run("continues after the highest existing id", func(t *testing.T) {
		seed := []models.Transaction{testutil.NewTransaction(4), testutil.NewTransaction(11)}
		svc, _ := setupService(t, seed)

		tx, err := svc.CreateTransaction(testutil.ValidPayload())
		testutil.AssertNoError(t, err)
		if tx.ID != "12" || tx.Reference != "TXN000012" {
			t.Errorf("got (%s, %s), want (12, TXN000012)", tx.ID, tx.Reference)
		}
	})

	t.Run("ids strictly increase", func(t *testing.T) {
		svc, _ := setupService(t, nil)

		for i := 1; i <= 5; i++ {
			tx, err := svc.CreateTransaction(testutil.ValidPayload())
			testutil.AssertNoError(t, err)
			if want := strconv.Itoa(i); tx.ID != want {
				t.Errorf("create %d got id %q, want %q", i, tx.ID, want)
			}
		}
	})

	t.Run("rejected payload writes nothing", func(t *testing.T) {
		svc, s := setupService(t, nil)

		input := testutil.ValidPayload()
		input["amount"] = json.Number("-5")

		_, err := svc.CreateTransaction(input)
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
		if s.Count() != 0 {
			t.Errorf("Count() = %d, want 0", s.Count())
		}
		if s.NextID() != "1" {
			t.Errorf("NextID() = %q, a rejected create must not consume an id", s.NextID())
		}
	})

	t.Run("rejects non-scalar optional field", func(t *testing.T) {
		svc, s := setupService(t, nil)

		input := testutil.ValidPayload()
		input["status"] = map[string]any{"nested": true}

		_, err := svc.CreateTransaction(input)
		testutil.AssertAppErrorFields(t, err, "INVALID_INPUT", "status")
		if s.Count() != 0 {
			t.Errorf("Count() = %d, want 0", s.Count())
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := setupService(t, nil)
		_, err := svc.CreateTransaction(map[string]any{"type": "SEND"})
		testutil.AssertAppErrorFields(t, err, "MISSING_FIELDS", "amount", "sender", "receiver")
	})
}

func TestTransactionService_ListTransactions(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		svc, _ := setupService(t, nil)
		list := svc.ListTransactions()
		if list.Count != 0 || len(list.Transactions) != 0 {
			t.Errorf("expected empty list, got %+v", list)
		}
	})

	t.Run("count matches transactions in insertion order", func(t *testing.T) {
		svc, _ := setupService(t, testutil.NewTransactions(3))
		_, err := svc.CreateTransaction(testutil.ValidPayload())
		testutil.AssertNoError(t, err)

		list := svc.ListTransactions()
		if list.Count != 4 || len(list.Transactions) != 4 {
			t.Fatalf("Count = %d, len = %d, want 4", list.Count, len(list.Transactions))
		}
		for i, want := range []string{"1", "2", "3", "4"} {
			if list.Transactions[i].ID != want {
				t.Errorf("position %d id = %q, want %q", i, list.Transactions[i].ID, want)
			}
		}
	})
}

func TestTransactionService_GetTransactionByID(t *testing.T) {
	svc, _ := setupService(t, testutil.NewTransactions(2))

	tx, err := svc.GetTransactionByID("2")
	testutil.AssertNoError(t, err)
	if tx.Reference != "TXN000002" {
		t.Errorf("Reference = %q, want TXN000002", tx.Reference)
	}

	_, err = svc.GetTransactionByID("999")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestTransactionService_UpdateTransaction(t *testing.T) {
	t.Run("updates whitelisted fields only", func(t *testing.T) {
		svc, _ := setupService(t, testutil.NewTransactions(1))

		tx, err := svc.UpdateTransaction("1", map[string]any{
			"amount":    json.Number("5"),
			"receiver":  "0790000000",
			"reference": "IGNORED",
			"id":        "77",
		})
		testutil.AssertNoError(t, err)

		if tx.Amount != 5 || tx.Receiver != "0790000000" {
			t.Errorf("fields not updated: %+v", tx)
		}
		if tx.ID != "1" || tx.Reference != "TXN000001" {
			t.Errorf("protected fields changed: id=%q reference=%q", tx.ID, tx.Reference)
		}

		got, err := svc.GetTransactionByID("1")
		testutil.AssertNoError(t, err)
		if got.Amount != 5 {
			t.Errorf("stored Amount = %v, want 5", got.Amount)
		}
	})

	t.Run("empty patch returns the record unchanged", func(t *testing.T) {
		svc, _ := setupService(t, testutil.NewTransactions(1))
		tx, err := svc.UpdateTransaction("1", map[string]any{})
		testutil.AssertNoError(t, err)
		if *tx != testutil.NewTransaction(1) {
			t.Errorf("record changed: %+v", tx)
		}
	})

	t.Run("invalid field leaves the record unchanged", func(t *testing.T) {
		svc, _ := setupService(t, testutil.NewTransactions(1))

		_, err := svc.UpdateTransaction("1", map[string]any{"sender": "new", "type": "GIFT"})
		testutil.AssertAppError(t, err, "INVALID_TYPE")

		got, _ := svc.GetTransactionByID("1")
		if got.Sender != "0791234567" {
			t.Errorf("Sender = %q, partial update was applied", got.Sender)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := setupService(t, nil)
		_, err := svc.UpdateTransaction("42", map[string]any{"amount": "-1"})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionService_DeleteTransaction(t *testing.T) {
	svc, s := setupService(t, testutil.NewTransactions(3))

	removed, err := svc.DeleteTransaction("2")
	testutil.AssertNoError(t, err)
	if removed.ID != "2" {
		t.Errorf("removed ID = %q, want 2", removed.ID)
	}

	_, err = svc.GetTransactionByID("2")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

	_, err = svc.DeleteTransaction("2")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}
}
