package intake

import (
	"context"
	"time"

	"github.com/aiya/event-intake/internal/domain"
)

// Repository defines the data access contract for intake.
// Implementations must be safe for concurrent use.
type Repository interface {
	// CreateRegistration inserts a registration and returns its assigned id
	// and creation timestamp. Returns ErrDuplicateEmail when the email
	// uniqueness constraint is violated. The constraint check happens inside
	// the insert itself, so two concurrent submissions for the same email
	// cannot both succeed.
	CreateRegistration(ctx context.Context, r *domain.Registration) (int64, time.Time, error)

	// RegistrationExists reports whether a registration with the given email
	// already exists. Advisory only: a duplicate submission can still race
	// past this probe, and CreateRegistration remains the authority.
	RegistrationExists(ctx context.Context, email string) (bool, error)

	// CreateOrder inserts an order and returns its assigned id and creation
	// timestamp. Multiple orders per email are permitted.
	CreateOrder(ctx context.Context, o *domain.Order) (int64, time.Time, error)

	// Ping verifies database connectivity. Used by the health endpoint, not
	// by the intake path.
	Ping(ctx context.Context) error
}

// ConfirmationSender dispatches the best-effort confirmation email.
// Implementations never return an error; every provider failure is folded
// into the outcome.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, toEmail, firstName string) domain.NotificationOutcome
}

// OrderDispatcher submits an order for fire-and-forget external sync.
// Dispatch must not block the caller.
type OrderDispatcher interface {
	Dispatch(o *domain.Order)
}
