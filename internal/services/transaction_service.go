package services

import (
	"time"

	"momoapi/internal/models"
	"momoapi/internal/store"
	"momoapi/internal/validator"
)

// transactionService orchestrates validation, id allocation and the store.
type transactionService struct {
	store *store.Store
	now   func() time.Time
}

// NewTransactionService creates a new TransactionServicer over an owned store.
func NewTransactionService(s *store.Store) TransactionServicer {
	return &transactionService{
		store: s,
		now:   time.Now,
	}
}

// ListTransactions returns every transaction in insertion order.
func (s *transactionService) ListTransactions() TransactionList {
	all := s.store.All()
	return TransactionList{Count: len(all), Transactions: all}
}

// CreateTransaction validates input, assigns the next id and stores the record.
// Only a validation failure prevents the write.
func (s *transactionService) CreateTransaction(input map[string]any) (*models.Transaction, error) {
	fields, err := validator.Validate(input)
	if err != nil {
		return nil, err
	}

	// Optional pass-through fields
	timestamp, err := validator.OptionalString(input, "timestamp")
	if err != nil {
		return nil, err
	}
	status, err := validator.OptionalString(input, "status")
	if err != nil {
		return nil, err
	}
	reference, err := validator.OptionalString(input, "reference")
	if err != nil {
		return nil, err
	}
	category, err := validator.OptionalString(input, "category")
	if err != nil {
		return nil, err
	}
	description, err := validator.OptionalString(input, "description")
	if err != nil {
		return nil, err
	}

	created := s.store.Insert(func(id, defaultReference string) models.Transaction {
		t := models.Transaction{
			ID:          id,
			Type:        fields.Type,
			Amount:      fields.Amount,
			Sender:      fields.Sender,
			Receiver:    fields.Receiver,
			Timestamp:   s.now().UTC().Format(time.RFC3339),
			Status:      models.DefaultStatus,
			Reference:   defaultReference,
			Category:    category,
			Description: description,
		}
		if timestamp != nil {
			t.Timestamp = *timestamp
		}
		if status != nil {
			t.Status = *status
		}
		if reference != nil {
			t.Reference = *reference
		}
		return t
	})
	return &created, nil
}

// GetTransactionByID returns the transaction with the given id.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	t, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTransaction applies the whitelisted fields of patch. Every present
// field is validated before anything is written.
func (s *transactionService) UpdateTransaction(id string, patch map[string]any) (*models.Transaction, error) {
	// an unknown id is reported before any field error
	if _, err := s.store.FindByID(id); err != nil {
		return nil, err
	}

	p, err := validator.ValidatePatch(patch)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Update(id, p.Apply)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes the transaction and returns it for confirmation.
func (s *transactionService) DeleteTransaction(id string) (*models.Transaction, error) {
	removed, err := s.store.Delete(id)
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
