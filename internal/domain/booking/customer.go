package booking

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"billboard-booking/internal/pkg/errs"
)

const PhoneDigits = 10

// Name and email limits match the ledger's VARCHAR(255) columns.
const (
	MaxNameLength  = 255
	MaxEmailLength = 255
)

// Field names used in validation error maps.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
	FieldHours = "hours"
)

var validate = validator.New()

// Customer holds the contact fields attached to every booking of a submission.
type Customer struct {
	name  string
	email string
	phone string
}

// NewCustomer validates all contact fields and reports every offending field
// at once in an errs.ValidationError.
func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = normalizePhone(phone)

	fields := map[string]string{}
	if msg := checkName(name); msg != "" {
		fields[FieldName] = msg
	}
	if msg := checkEmail(email); msg != "" {
		fields[FieldEmail] = msg
	}
	if msg := checkPhone(phone); msg != "" {
		fields[FieldPhone] = msg
	}
	if err := errs.NewValidationError(fields); err != nil {
		return Customer{}, err
	}

	return Customer{name: name, email: email, phone: phone}, nil
}

// ReconstructCustomer skips validation for rows already persisted.
func ReconstructCustomer(name, email, phone string) Customer {
	return Customer{name: name, email: email, phone: phone}
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }

func checkName(name string) string {
	if name == "" {
		return "name is required"
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Sprintf("name must be at most %d characters", MaxNameLength)
	}
	if strings.ContainsFunc(name, unicode.IsDigit) {
		return "name must not contain digits"
	}
	return ""
}

func checkEmail(email string) string {
	if email == "" {
		return "email is required"
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return fmt.Sprintf("email must be at most %d characters", MaxEmailLength)
	}
	if err := validate.Var(email, "email"); err != nil {
		return "email is not a valid address"
	}
	return ""
}

func checkPhone(phone string) string {
	if phone == "" {
		return "phone is required"
	}
	if len(phone) != PhoneDigits {
		return "phone must have exactly 10 digits"
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return "phone must have exactly 10 digits"
		}
	}
	return ""
}

// normalizePhone strips the separators people commonly type.
func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}
