package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/aiya/event-intake/internal/domain"
	"github.com/aiya/event-intake/internal/intake"
)

// uniqueViolation is the PostgreSQL error code raised when an insert hits a
// unique constraint.
const uniqueViolation = "23505"

// CreateRegistration inserts a registration. The registrations.email UNIQUE
// constraint resolves duplicate races inside the database: of two concurrent
// inserts for the same email, exactly one returns a row and the other
// surfaces as intake.ErrDuplicateEmail.
func (r *Repo) CreateRegistration(ctx context.Context, reg *domain.Registration) (int64, time.Time, error) {
	var (
		id        int64
		createdAt time.Time
	)
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO registrations (
			email, first_name, last_name, phone,
			company, business_type, position, company_size
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, reg.Email, reg.FirstName, reg.LastName, reg.Phone,
		reg.Company, reg.BusinessType, reg.Position, reg.CompanySize,
	).Scan(&id, &createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, time.Time{}, intake.ErrDuplicateEmail
		}
		return 0, time.Time{}, fmt.Errorf("insert registration: %w", err)
	}
	return id, createdAt, nil
}

// RegistrationExists probes for an existing registration by exact email
// match. Advisory only; see intake.Repository.
func (r *Repo) RegistrationExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check registration exists: %w", err)
	}
	return exists, nil
}
