package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "momoapi/internal/errors"
	"momoapi/internal/middleware"
	"momoapi/internal/models"
	"momoapi/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- mock transaction service ---

type mockTransactionService struct {
	listTransactionsFn   func() services.TransactionList
	createTransactionFn  func(input map[string]any) (*models.Transaction, error)
	getTransactionByIDFn func(id string) (*models.Transaction, error)
	updateTransactionFn  func(id string, patch map[string]any) (*models.Transaction, error)
	deleteTransactionFn  func(id string) (*models.Transaction, error)
}

func (m *mockTransactionService) ListTransactions() services.TransactionList {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn()
	}
	return services.TransactionList{Transactions: []models.Transaction{}}
}

func (m *mockTransactionService) CreateTransaction(input map[string]any) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(input)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(id)
	}
	return &models.Transaction{ID: id}, nil
}

func (m *mockTransactionService) UpdateTransaction(id string, patch map[string]any) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(id, patch)
	}
	return &models.Transaction{ID: id}, nil
}

func (m *mockTransactionService) DeleteTransaction(id string) (*models.Transaction, error) {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return &models.Transaction{ID: id}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/transactions", handler.ListTransactions)
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions/:id", handler.GetTransactionByID)
	r.PUT("/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func notFound(id string) error {
	return apperrors.WithMessage(apperrors.ErrTransactionNotFound, "Transaction "+id+" not found")
}

// --- tests ---

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("returns count and transactions", func(t *testing.T) {
		txSvc := &mockTransactionService{
			listTransactionsFn: func() services.TransactionList {
				return services.TransactionList{
					Count:        2,
					Transactions: []models.Transaction{{ID: "1"}, {ID: "2"}},
				}
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["count"].(float64) != 2 {
			t.Errorf("expected count 2, got %v", result["count"])
		}
		if len(result["transactions"].([]interface{})) != 2 {
			t.Errorf("expected 2 transactions, got %v", result["transactions"])
		}
	})

	t.Run("empty collection renders an empty array", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions", "")

		if !strings.Contains(rec.Body.String(), `"transactions":[]`) {
			t.Errorf("expected empty array, got %s", rec.Body.String())
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var received map[string]any
		txSvc := &mockTransactionService{
			createTransactionFn: func(input map[string]any) (*models.Transaction, error) {
				received = input
				return &models.Transaction{ID: "1", Type: models.TransactionTypeDeposit, Amount: 100, Reference: "TXN000001"}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"deposit","amount":100,"sender":"A","receiver":"B"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Transaction created" {
			t.Errorf("unexpected message %v", result["message"])
		}
		tx := result["transaction"].(map[string]interface{})
		if tx["id"] != "1" || tx["reference"] != "TXN000001" {
			t.Errorf("unexpected transaction %v", tx)
		}
		if _, ok := received["amount"].(json.Number); !ok {
			t.Errorf("expected amount decoded as json.Number, got %T", received["amount"])
		}
	})

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "empty body", body: "", wantCode: "EMPTY_BODY"},
		{name: "whitespace body", body: "  \n", wantCode: "EMPTY_BODY"},
		{name: "malformed json", body: `{"type":`, wantCode: "INVALID_JSON"},
		{name: "array body", body: `[1,2]`, wantCode: "INVALID_JSON"},
		{name: "null body", body: `null`, wantCode: "INVALID_JSON"},
		{name: "trailing data", body: `{"type":"SEND"} {}`, wantCode: "INVALID_JSON"},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			called := false
			txSvc := &mockTransactionService{
				createTransactionFn: func(map[string]any) (*models.Transaction, error) {
					called = true
					return nil, nil
				},
			}
			r := setupTransactionRouter(NewTransactionHandler(txSvc))

			rec := doRequest(r, "POST", "/transactions", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), tt.wantCode)
			if called {
				t.Error("service should not be called for an unreadable body")
			}
		})
	}

	t.Run("renders validation errors with fields", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(map[string]any) (*models.Transaction, error) {
				return nil, apperrors.WithFields(apperrors.ErrMissingFields, "Missing required fields: ", "sender", "receiver")
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "POST", "/transactions", `{"type":"SEND","amount":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "MISSING_FIELDS")
		errObj := result["error"].(map[string]interface{})
		if errObj["message"] != "Missing required fields: sender, receiver" {
			t.Errorf("unexpected message %v", errObj["message"])
		}
		if fields := errObj["fields"].([]interface{}); len(fields) != 2 {
			t.Errorf("expected 2 fields, got %v", fields)
		}
	})
}

func TestTransactionHandler_GetTransactionByID(t *testing.T) {
	t.Run("returns the transaction", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions/7", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["id"] != "7" {
			t.Errorf("expected id 7, got %v", tx["id"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getTransactionByIDFn: func(id string) (*models.Transaction, error) {
				return nil, notFound(id)
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "GET", "/transactions/abc", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("returns 200 with updated transaction", func(t *testing.T) {
		txSvc := &mockTransactionService{
			updateTransactionFn: func(id string, patch map[string]any) (*models.Transaction, error) {
				return &models.Transaction{ID: id, Status: patch["status"].(string)}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "PUT", "/transactions/3", `{"status":"reversed"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Transaction updated" {
			t.Errorf("unexpected message %v", result["message"])
		}
		if tx := result["transaction"].(map[string]interface{}); tx["status"] != "reversed" {
			t.Errorf("expected status reversed, got %v", tx["status"])
		}
	})

	t.Run("unknown id wins over a bad body", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getTransactionByIDFn: func(id string) (*models.Transaction, error) {
				return nil, notFound(id)
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "PUT", "/transactions/99", `not json`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})

	t.Run("valid body is looked up once by the service", func(t *testing.T) {
		lookups := 0
		txSvc := &mockTransactionService{
			getTransactionByIDFn: func(id string) (*models.Transaction, error) {
				lookups++
				return &models.Transaction{ID: id}, nil
			},
			updateTransactionFn: func(id string, patch map[string]any) (*models.Transaction, error) {
				return nil, notFound(id)
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "PUT", "/transactions/99", `{"status":"reversed"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
		if lookups != 0 {
			t.Errorf("handler looked up the id %d times, want 0", lookups)
		}
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "PUT", "/transactions/1", `{"amount":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_JSON")
	})

	t.Run("returns 400 on invalid field", func(t *testing.T) {
		txSvc := &mockTransactionService{
			updateTransactionFn: func(string, map[string]any) (*models.Transaction, error) {
				return nil, apperrors.WithFields(apperrors.ErrInvalidAmount, "Amount must be greater than 0. Offending field: ", "amount")
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "PUT", "/transactions/1", `{"amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns the removed transaction", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "DELETE", "/transactions/5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "Transaction deleted" {
			t.Errorf("unexpected message %v", result["message"])
		}
		if tx := result["transaction"].(map[string]interface{}); tx["id"] != "5" {
			t.Errorf("expected id 5, got %v", tx["id"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(id string) (*models.Transaction, error) {
				return nil, notFound(id)
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "DELETE", "/transactions/5", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("unexpected errors become 500", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(string) (*models.Transaction, error) {
				return nil, http.ErrHandlerTimeout
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "DELETE", "/transactions/5", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}
