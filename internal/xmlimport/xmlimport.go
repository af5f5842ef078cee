// Package xmlimport converts SMS backup exports into transaction records.
//
// Every <sms> element, at any depth, becomes one record. Its attributes map
// onto the transaction fields by name.
package xmlimport

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"momoapi/internal/models"
	"momoapi/internal/validator"
)

// UnknownType is assigned to elements without a type attribute.
const UnknownType = "UNKNOWN"

type smsElement struct {
	Type      *string `xml:"type,attr"`
	Amount    *string `xml:"amount,attr"`
	Sender    string  `xml:"sender,attr"`
	Receiver  string  `xml:"receiver,attr"`
	Timestamp string  `xml:"timestamp,attr"`
	Status    *string `xml:"status,attr"`
	Reference *string `xml:"reference,attr"`
}

// Parse streams r and returns one transaction per <sms> element, numbered
// from 1 in document order.
func Parse(r io.Reader) ([]models.Transaction, error) {
	dec := xml.NewDecoder(r)
	var records []models.Transaction

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml parse error: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "sms" {
			continue
		}

		var el smsElement
		if err := dec.DecodeElement(&el, &start); err != nil {
			return nil, fmt.Errorf("xml parse error: %w", err)
		}

		n := len(records) + 1
		t, err := el.transaction(n)
		if err != nil {
			return nil, fmt.Errorf("sms element %d: %w", n, err)
		}
		records = append(records, t)
	}

	return records, nil
}

func (el smsElement) transaction(n int) (models.Transaction, error) {
	t := models.Transaction{
		ID:        strconv.Itoa(n),
		Type:      models.TransactionType(UnknownType),
		Sender:    el.Sender,
		Receiver:  el.Receiver,
		Timestamp: el.Timestamp,
		Status:    models.DefaultStatus,
		Reference: models.Reference(n),
	}
	if el.Type != nil {
		t.Type = models.TransactionType(strings.ToUpper(*el.Type))
	}
	if el.Amount != nil {
		d, err := decimal.NewFromString(strings.TrimSpace(*el.Amount))
		if err != nil {
			return models.Transaction{}, fmt.Errorf("invalid amount %q", *el.Amount)
		}
		t.Amount, _ = d.Float64()
	}
	if el.Status != nil {
		t.Status = *el.Status
	}
	if el.Reference != nil {
		t.Reference = *el.Reference
	}
	return t, nil
}

// Rejection explains why a parsed record was not admitted.
type Rejection struct {
	ID     string `json:"id" yaml:"id"`
	Reason string `json:"reason" yaml:"reason"`
}

// Admit runs every record through the transaction validator. Admitted
// records keep their parsed values with the normalized required fields.
func Admit(records []models.Transaction) ([]models.Transaction, []Rejection) {
	admitted := make([]models.Transaction, 0, len(records))
	var rejected []Rejection

	for _, t := range records {
		fields, err := validator.Validate(map[string]any{
			"type":     string(t.Type),
			"amount":   t.Amount,
			"sender":   t.Sender,
			"receiver": t.Receiver,
		})
		if err != nil {
			rejected = append(rejected, Rejection{ID: t.ID, Reason: err.Error()})
			continue
		}
		t.Type = fields.Type
		t.Amount = fields.Amount
		t.Sender = fields.Sender
		t.Receiver = fields.Receiver
		admitted = append(admitted, t)
	}

	return admitted, rejected
}
