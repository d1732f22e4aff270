package intake

import (
	"context"
	"errors"
	"fmt"

	"github.com/aiya/event-intake/internal/domain"
	"github.com/aiya/event-intake/internal/pkg/logger"
)

// Service orchestrates intake: validate, store, then fire the decoupled
// side effects. The durable write is the only step that can fail the
// request; email and order sync are best effort.
type Service struct {
	repo   Repository
	mailer ConfirmationSender
	sync   OrderDispatcher
}

// NewService creates an intake service. mailer and sync may be nil, in which
// case the corresponding side effect is skipped (useful in tests and when
// the sync endpoint is not configured).
func NewService(repo Repository, mailer ConfirmationSender, sync OrderDispatcher) *Service {
	return &Service{repo: repo, mailer: mailer, sync: sync}
}

// RegistrationResult is the outcome of a successful registration intake.
type RegistrationResult struct {
	Registration *domain.Registration
	Email        domain.NotificationOutcome
}

// OrderResult is the outcome of a successful order intake.
type OrderResult struct {
	Order *domain.Order
}

// Register validates and durably records a registration, then sends the
// confirmation email. Returns ValidationErrors for bad input and
// ErrDuplicateEmail when the email is already registered. A failed email
// dispatch is reported in the result, never as an error.
func (s *Service) Register(ctx context.Context, in RegistrationInput) (*RegistrationResult, error) {
	if errs := ValidateRegistration(in); len(errs) > 0 {
		return nil, errs
	}

	reg := &domain.Registration{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Company:      in.Company,
		BusinessType: in.BusinessType,
		Position:     in.Position,
		CompanySize:  in.CompanySize,
	}

	id, createdAt, err := s.repo.CreateRegistration(ctx, reg)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	reg.ID = id
	reg.CreatedAt = createdAt

	logger.Info("registration created", "id", id, "email", reg.Email)

	result := &RegistrationResult{Registration: reg}
	if s.mailer != nil {
		result.Email = s.mailer.SendConfirmation(ctx, reg.Email, reg.FirstName)
		if !result.Email.Sent {
			logger.Warn("confirmation email failed",
				"registration_id", id, "email", reg.Email, "error", result.Email.Err)
		} else {
			logger.Info("confirmation email sent",
				"registration_id", id, "message_id", result.Email.MessageID)
		}
	}

	return result, nil
}

// PlaceOrder validates and durably records a ticket order, then hands it to
// the sync dispatcher. The dispatch is not awaited and its outcome is not
// part of the result.
func (s *Service) PlaceOrder(ctx context.Context, in OrderInput) (*OrderResult, error) {
	if errs := ValidateOrder(in); len(errs) > 0 {
		return nil, errs
	}

	pkg := domain.PackageType(in.PackageType)
	if in.PackageType == "" {
		pkg = domain.PackageSingle
	}

	order := &domain.Order{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Amount:       in.Amount,
		PackageType:  pkg,
		ReferralCode: in.ReferralCode,
		SlipURL:      in.SlipURL,
		// Orders are written as paid directly: there is no payment
		// verification step in this flow yet, so the pending state is never
		// observed. TODO: drive the pending→paid transition from a payment
		// provider webhook instead of assuming it at intake.
		Status: domain.OrderPaid,
	}

	id, createdAt, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	order.ID = id
	order.CreatedAt = createdAt

	logger.Info("order created", "id", id, "email", order.Email,
		"amount", order.Amount, "package", string(order.PackageType))

	if s.sync != nil {
		s.sync.Dispatch(order)
	}

	return &OrderResult{Order: order}, nil
}

// CheckRegistration reports whether an email is already registered. The UI
// uses this to pre-empt duplicate submissions; the database constraint in
// CreateRegistration remains the authority when submissions race.
func (s *Service) CheckRegistration(ctx context.Context, email string) (bool, error) {
	exists, err := s.repo.RegistrationExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}
	return exists, nil
}
