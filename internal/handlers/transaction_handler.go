package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"momoapi/internal/models"
	"momoapi/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest documents the payload accepted by CreateTransaction.
// The body is decoded loosely so validation can report every missing field.
type CreateTransactionRequest struct {
	Type        string  `json:"type" example:"deposit"`
	Amount      float64 `json:"amount" example:"100"`
	Sender      string  `json:"sender" example:"0791234567"`
	Receiver    string  `json:"receiver" example:"BANK"`
	Timestamp   string  `json:"timestamp,omitempty" example:"2024-01-15T10:30:00"`
	Status      string  `json:"status,omitempty" example:"completed"`
	Reference   string  `json:"reference,omitempty" example:"TXN000001"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UpdateTransactionRequest documents the mutable fields accepted by UpdateTransaction.
type UpdateTransactionRequest struct {
	Type     string  `json:"type,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
	Sender   string  `json:"sender,omitempty"`
	Receiver string  `json:"receiver,omitempty"`
	Status   string  `json:"status,omitempty"`
}

// TransactionResponse wraps a single transaction, with a message on writes.
type TransactionResponse struct {
	Message     string             `json:"message,omitempty"`
	Transaction models.Transaction `json:"transaction"`
}

// ListTransactions handles the retrieval of every transaction
// @Summary     List transactions
// @Description Get all transactions in insertion order
// @Tags        transactions
// @Produce     json
// @Security    BasicAuth
// @Success     200 {object} services.TransactionList "All transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.transactionService.ListTransactions())
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Validate and store a new transaction. id, reference, timestamp and status are assigned when absent.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BasicAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	input, err := bindObject(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transaction created",
		"transaction": transaction,
	})
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BasicAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles updating an existing transaction
// @Summary     Update transaction
// @Description Update type, amount, sender, receiver or status. Any invalid field rejects the whole update.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BasicAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} TransactionResponse "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id := c.Param("id")

	patch, err := bindObject(c)
	if err != nil {
		// 404 takes precedence over a malformed body
		if _, lookupErr := h.transactionService.GetTransactionByID(id); lookupErr != nil {
			err = lookupErr
		}
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Transaction updated",
		"transaction": transaction,
	})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Security    BasicAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transaction, err := h.transactionService.DeleteTransaction(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Transaction deleted",
		"transaction": transaction,
	})
}
