// Package validator checks inbound transaction payloads and normalizes their
// fields. All functions are pure over their input.
package validator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "momoapi/internal/errors"
	"momoapi/internal/models"
)

// RequiredFields are the keys every new transaction must carry, in report order.
var RequiredFields = []string{"type", "amount", "sender", "receiver"}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	return v
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

// NormalizedFields holds the required transaction fields after validation.
type NormalizedFields struct {
	Type     models.TransactionType
	Amount   float64
	Sender   string
	Receiver string
}

// Validate checks the required fields of a create payload. Missing keys are
// reported together; the remaining checks stop at the first failure.
func Validate(input map[string]any) (*NormalizedFields, error) {
	var missing []string
	for _, field := range RequiredFields {
		if _, ok := input[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrMissingFields, "Missing required fields: ", missing...)
	}

	txType, err := ParseType(input["type"])
	if err != nil {
		return nil, err
	}

	amount, err := ParseAmount(input["amount"])
	if err != nil {
		return nil, err
	}

	sender, err := ParseParty("sender", input["sender"])
	if err != nil {
		return nil, err
	}

	receiver, err := ParseParty("receiver", input["receiver"])
	if err != nil {
		return nil, err
	}

	return &NormalizedFields{
		Type:     txType,
		Amount:   amount,
		Sender:   sender,
		Receiver: receiver,
	}, nil
}

// ParseType uppercases v and checks it against the transaction type enum.
func ParseType(v any) (models.TransactionType, error) {
	s, _ := ScalarString(v)
	txType := strings.ToUpper(strings.TrimSpace(s))
	if err := validate.Var(txType, "transaction_type"); err != nil {
		return "", apperrors.WithFields(apperrors.ErrInvalidType,
			"Invalid transaction type. Must be one of: "+typeList()+". Offending field: ", "type")
	}
	return models.TransactionType(txType), nil
}

// ParseAmount accepts JSON numbers and numeric strings and requires a finite
// value greater than zero.
func ParseAmount(v any) (float64, error) {
	var d decimal.Decimal
	var err error

	switch a := v.(type) {
	case json.Number:
		d, err = decimal.NewFromString(a.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(a))
	case float64:
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return 0, invalidAmount()
		}
		d = decimal.NewFromFloat(a)
	case int:
		d = decimal.NewFromInt(int64(a))
	case int64:
		d = decimal.NewFromInt(a)
	default:
		return 0, invalidAmount()
	}
	if err != nil {
		return 0, invalidAmount()
	}

	if !d.IsPositive() {
		return 0, apperrors.WithFields(apperrors.ErrInvalidAmount, "Amount must be greater than 0. Offending field: ", "amount")
	}

	amount, _ := d.Float64()
	if math.IsInf(amount, 0) || amount <= 0 {
		return 0, invalidAmount()
	}
	return amount, nil
}

// ParseParty trims a sender or receiver value and rejects it when empty.
func ParseParty(field string, v any) (string, error) {
	s, ok := ScalarString(v)
	if !ok {
		return "", apperrors.WithFields(apperrors.ErrInvalidInput, "Field must be a string: ", field)
	}
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required"); err != nil {
		return "", apperrors.WithFields(apperrors.ErrEmptyField, capitalize(field)+" cannot be empty. Offending field: ", field)
	}
	return s, nil
}

// ScalarString renders a decoded JSON scalar as a string. It reports false for
// objects and arrays. A JSON null renders as the empty string.
func ScalarString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

// OptionalString returns the string form of input[key] when the key is present.
func OptionalString(input map[string]any, key string) (*string, error) {
	v, ok := input[key]
	if !ok {
		return nil, nil
	}
	s, ok := ScalarString(v)
	if !ok {
		return nil, apperrors.WithFields(apperrors.ErrInvalidInput, "Field must be a string: ", key)
	}
	return &s, nil
}

func invalidAmount() error {
	return apperrors.WithFields(apperrors.ErrInvalidAmount, "Invalid amount format. Offending field: ", "amount")
}

func typeList() string {
	names := make([]string, len(models.TransactionTypes))
	for i, t := range models.TransactionTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
