package intake

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/aiya/event-intake/internal/domain"
)

// RegistrationInput is the raw registration submission as received over HTTP.
type RegistrationInput struct {
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	BusinessType string `json:"businessType"`
	Position     string `json:"position"`
	CompanySize  string `json:"companySize"`
}

// OrderInput is the raw ticket-order submission as received over HTTP.
type OrderInput struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Amount       float64 `json:"amount"`
	PackageType  string  `json:"packageType"`
	ReferralCode string  `json:"referralCode"`
	SlipURL      string  `json:"slipUrl"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateRegistration checks a registration submission and returns every
// violation found. Nil means the submission is acceptable. No side effects,
// deterministic.
func ValidateRegistration(in RegistrationInput) ValidationErrors {
	var errs ValidationErrors

	errs = checkEmail(errs, in.Email)
	errs = checkLength(errs, "firstName", in.FirstName, 1, 100)
	errs = checkLength(errs, "lastName", in.LastName, 1, 100)
	errs = checkLength(errs, "phone", in.Phone, 9, 20)
	errs = checkLength(errs, "company", in.Company, 1, 255)
	errs = checkLength(errs, "businessType", in.BusinessType, 1, 100)
	errs = checkLength(errs, "position", in.Position, 1, 100)

	if in.CompanySize == "" {
		errs = append(errs, FieldError{Field: "companySize", Message: "is required"})
	} else if !domain.ValidCompanySize(in.CompanySize) {
		errs = append(errs, FieldError{Field: "companySize", Message: "must be one of the listed size ranges"})
	}

	return errs
}

// ValidateOrder checks a ticket-order submission and returns every violation
// found. The package type is optional and defaults to SINGLE; any other
// value must be a known package.
func ValidateOrder(in OrderInput) ValidationErrors {
	var errs ValidationErrors

	errs = checkLength(errs, "firstName", in.FirstName, 1, 100)
	errs = checkLength(errs, "lastName", in.LastName, 1, 100)
	errs = checkEmail(errs, in.Email)
	errs = checkLength(errs, "phone", in.Phone, 9, 20)

	if in.Amount <= 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if in.PackageType != "" && !domain.ValidPackageType(domain.PackageType(in.PackageType)) {
		errs = append(errs, FieldError{Field: "packageType", Message: "is not a known package"})
	}
	if len(in.ReferralCode) > 50 {
		errs = append(errs, FieldError{Field: "referralCode", Message: "must be at most 50 characters"})
	}

	return errs
}

func checkEmail(errs ValidationErrors, email string) ValidationErrors {
	if email == "" {
		return append(errs, FieldError{Field: "email", Message: "is required"})
	}
	if utf8.RuneCountInString(email) > 255 || !emailPattern.MatchString(email) {
		return append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	return errs
}

// checkLength bounds the field in characters, not bytes: names and company
// fields arrive in Thai as often as in English, and the column limits are
// character counts.
func checkLength(errs ValidationErrors, field, value string, min, max int) ValidationErrors {
	if value == "" {
		return append(errs, FieldError{Field: field, Message: "is required"})
	}
	n := utf8.RuneCountInString(value)
	if n < min {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("must be at least %d characters", min)})
	}
	if n > max {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)})
	}
	return errs
}
