package validator

import (
	apperrors "momoapi/internal/errors"
	"momoapi/internal/models"
)

// Patch holds the validated subset of mutable fields present in an update.
// Nil pointers mean "leave unchanged".
type Patch struct {
	Type     *models.TransactionType
	Amount   *float64
	Sender   *string
	Receiver *string
	Status   *string
}

// Empty reports whether the patch changes nothing.
func (p *Patch) Empty() bool {
	return p.Type == nil && p.Amount == nil && p.Sender == nil && p.Receiver == nil && p.Status == nil
}

// Apply writes the present fields onto t.
func (p *Patch) Apply(t *models.Transaction) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Sender != nil {
		t.Sender = *p.Sender
	}
	if p.Receiver != nil {
		t.Receiver = *p.Receiver
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// ValidatePatch validates every whitelisted field present in patch with the
// same rules as Validate. Keys outside the whitelist are ignored. The first
// failing field rejects the whole patch.
func ValidatePatch(patch map[string]any) (*Patch, error) {
	p := &Patch{}

	if v, ok := patch["type"]; ok {
		txType, err := ParseType(v)
		if err != nil {
			return nil, err
		}
		p.Type = &txType
	}

	if v, ok := patch["amount"]; ok {
		amount, err := ParseAmount(v)
		if err != nil {
			return nil, err
		}
		p.Amount = &amount
	}

	if v, ok := patch["sender"]; ok {
		sender, err := ParseParty("sender", v)
		if err != nil {
			return nil, err
		}
		p.Sender = &sender
	}

	if v, ok := patch["receiver"]; ok {
		receiver, err := ParseParty("receiver", v)
		if err != nil {
			return nil, err
		}
		p.Receiver = &receiver
	}

	if v, ok := patch["status"]; ok {
		status, isScalar := v.(string)
		if !isScalar {
			return nil, apperrors.WithFields(apperrors.ErrInvalidInput, "Field must be a string: ", "status")
		}
		p.Status = &status
	}

	return p, nil
}
