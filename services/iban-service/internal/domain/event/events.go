package event

import (
	"github.com/bibbank/iban/pkg/events"
	"github.com/bibbank/iban/services/iban-service/internal/domain/model"
)

const (
	AggregateTypeValidation = "Validation"
	EventTypeIBANValidated  = "iban.validated"
)

// IBANValidated is emitted after every validation request.
type IBANValidated struct {
	events.BaseEvent
	Outcome     string `json:"outcome"`
	CountryCode string `json:"country_code,omitempty"`
	MaskedValue string `json:"masked_value"`
	Method      string `json:"method"`
	ClientID    string `json:"client_id,omitempty"`
}

// NewIBANValidated creates the event for an audit record.
func NewIBANValidated(rec model.ValidationRecord) IBANValidated {
	return IBANValidated{
		BaseEvent:   events.NewBaseEventAt(EventTypeIBANValidated, rec.ID().String(), AggregateTypeValidation, rec.CreatedAt()),
		Outcome:     rec.Outcome().String(),
		CountryCode: rec.CountryCode(),
		MaskedValue: rec.MaskedValue(),
		Method:      rec.Method().String(),
		ClientID:    rec.ClientID(),
	}
}
