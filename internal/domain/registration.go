package domain

import "time"

// Registration is a single seminar registration. Rows are created exactly
// once by a successful intake call and never mutated afterwards. The
// database enforces that at most one registration exists per email.
type Registration struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company"`
	BusinessType string    `json:"businessType"`
	Position     string    `json:"position"`
	CompanySize  string    `json:"companySize"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CompanySizes is the fixed set of accepted company-size buckets.
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}

// ValidCompanySize reports whether s is one of the accepted buckets.
func ValidCompanySize(s string) bool {
	for _, b := range CompanySizes {
		if s == b {
			return true
		}
	}
	return false
}
