package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aiya/event-intake/internal/domain"
)

// CreateOrder inserts a ticket order. No uniqueness constraint applies;
// one email may place any number of orders.
func (r *Repo) CreateOrder(ctx context.Context, o *domain.Order) (int64, time.Time, error) {
	var (
		id        int64
		createdAt time.Time
	)
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			first_name, last_name, email, phone,
			amount, package_type, referral_code, slip_url, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, o.FirstName, o.LastName, o.Email, o.Phone,
		o.Amount, string(o.PackageType), nullable(o.ReferralCode), nullable(o.SlipURL), string(o.Status),
	).Scan(&id, &createdAt)

	if err != nil {
		return 0, time.Time{}, fmt.Errorf("insert order: %w", err)
	}
	return id, createdAt, nil
}

// nullable maps an empty string to SQL NULL for optional columns.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
