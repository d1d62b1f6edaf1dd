package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"sts-agendamento/pkg/models"
)

var (
	ErrFormIncomplete     = errors.New("required fields missing or invalid")
	ErrDocumentIncomplete = errors.New("tax id must have 11 or 14 digits")
	ErrPhoneIncomplete    = errors.New("phone must have at least 10 digits")
)

// Validator checks the local state of the form before it is sent
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// CheckRequired runs each field's rules against its current value
func (v *Validator) CheckRequired(form *models.Form) error {
	for _, field := range form.Fields() {
		if field.Rules == "" {
			continue
		}
		value := strings.TrimSpace(form.Get(field.Name))
		if !field.Required() && value == "" {
			continue
		}
		if err := v.validate.Var(value, field.Rules); err != nil {
			return ErrFormIncomplete
		}
	}
	return nil
}

// Check runs every local check in order: field rules, tax id, phone
func (v *Validator) Check(form *models.Form, document, phone string) error {
	if err := v.CheckRequired(form); err != nil {
		return err
	}
	if !DocumentComplete(document) {
		return ErrDocumentIncomplete
	}
	if !PhoneComplete(phone) {
		return ErrPhoneIncomplete
	}
	return nil
}

// DocumentComplete accepts a CPF (11 digits) or a CNPJ (14 digits)
func DocumentComplete(unmasked string) bool {
	n := len(unmasked)
	return n == 11 || n == 14
}

// PhoneComplete requires the area code and the full number
func PhoneComplete(unmasked string) bool {
	return len(unmasked) >= 10
}
