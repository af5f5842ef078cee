package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement
type TransactionType string

const (
	TransactionTypeSend     TransactionType = "SEND"
	TransactionTypeReceive  TransactionType = "RECEIVE"
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypePayment  TransactionType = "PAYMENT"
)

// TransactionTypes lists the accepted types in their canonical order.
var TransactionTypes = []TransactionType{
	TransactionTypeSend,
	TransactionTypeReceive,
	TransactionTypeDeposit,
	TransactionTypeWithdraw,
	TransactionTypePayment,
}

// Valid reports whether t is one of the accepted transaction types.
func (t TransactionType) Valid() bool {
	for _, v := range TransactionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// DefaultStatus is applied when a new transaction does not carry a status.
const DefaultStatus = "completed"

// Transaction represents a single recorded money-movement event.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Sender      string          `json:"sender"`
	Receiver    string          `json:"receiver"`
	Timestamp   string          `json:"timestamp"`
	Status      string          `json:"status"`
	Reference   string          `json:"reference"`
	Category    *string         `json:"category,omitempty"`
	Description *string         `json:"description,omitempty"`
}

// UnmarshalJSON accepts ids persisted as JSON numbers as well as strings and
// stores them in their canonical string form. Amounts may be JSON numbers or
// numeric strings.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		ID     any `json:"id"`
		Amount any `json:"amount"`
		*alias
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.ID = CanonicalID(aux.ID)

	amount, err := decodeAmount(aux.Amount)
	if err != nil {
		return err
	}
	t.Amount = amount
	return nil
}

func decodeAmount(v any) (float64, error) {
	switch a := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return a, nil
	case json.Number:
		return a.Float64()
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(a))
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", a)
		}
		f, _ := d.Float64()
		return f, nil
	default:
		return 0, fmt.Errorf("invalid amount %v", a)
	}
}

// CanonicalID converts a decoded JSON id into the string used for comparison.
func CanonicalID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}

// Reference formats the default human reference code for a numeric id.
func Reference[N ~int | ~int64 | ~uint64](n N) string {
	return fmt.Sprintf("TXN%06d", n)
}
