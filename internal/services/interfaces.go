package services

import (
	"momoapi/internal/models"
)

// TransactionList is the full collection with its size.
type TransactionList struct {
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
}

// TransactionServicer defines the contract for the transaction collection.
// Inputs are decoded JSON objects; failures are *errors.AppError values.
type TransactionServicer interface {
	ListTransactions() TransactionList
	CreateTransaction(input map[string]any) (*models.Transaction, error)
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id string, patch map[string]any) (*models.Transaction, error)
	DeleteTransaction(id string) (*models.Transaction, error)
}
