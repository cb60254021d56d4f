// Package booking implements the seat-reservation core: the atomic
// "book one ticket" protocol and the per-user ticket history query.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
	"github.com/iliyamo/movie-ticket-sales/internal/queue"
	"github.com/iliyamo/movie-ticket-sales/internal/repository"
	"github.com/iliyamo/movie-ticket-sales/internal/utils"
)

// CustomerStore resolves customers for the credential check. Customers
// are immutable after creation, so reads need no synchronization.
type CustomerStore interface {
	GetByUserName(ctx context.Context, userName string) (model.Customer, error)
}

// ScreeningStore resolves screenings before the atomic issue step.
type ScreeningStore interface {
	GetByID(ctx context.Context, id uint64) (model.Screening, error)
}

// TicketStore owns the atomic issue step (guarded decrement + insert
// in one transaction) and the history query.
type TicketStore interface {
	Issue(ctx context.Context, userName string, screeningID uint64) (uint64, error)
	SummariesByUser(ctx context.Context, userName string) ([]model.TicketSummary, error)
}

// Locker is the optional per-screening advisory lock. It sheds
// contention in front of the store; correctness does not depend on it
// because the store's decrement is conditional.
type Locker interface {
	AcquireScreeningLock(ctx context.Context, screeningID uint64) (bool, error)
	ReleaseScreeningLock(ctx context.Context, screeningID uint64) error
	InvalidatePerformances(ctx context.Context)
}

// Publisher sends ticket.issued events to the message broker.
type Publisher interface {
	PublishTicketIssued(ctx context.Context, ev queue.TicketIssuedEvent) error
}

// Service is the booking engine. All dependencies are injected; locks
// and publisher may be nil, in which case those steps are skipped.
type Service struct {
	customers  CustomerStore
	screenings ScreeningStore
	tickets    TicketStore
	locks      Locker
	publisher  Publisher

	lockWait     time.Duration
	lockInterval time.Duration
}

// NewService constructs the booking engine. customers, screenings and
// tickets must be non-nil.
func NewService(customers CustomerStore, screenings ScreeningStore, tickets TicketStore, locks Locker, publisher Publisher) *Service {
	if customers == nil || screenings == nil || tickets == nil {
		panic("nil store passed to booking.NewService")
	}
	return &Service{
		customers:    customers,
		screenings:   screenings,
		tickets:      tickets,
		locks:        locks,
		publisher:    publisher,
		lockWait:     600 * time.Millisecond,
		lockInterval: 50 * time.Millisecond,
	}
}

// Book attempts to reserve one seat on the screening for the user.
// The protocol:
//
//  1. credential check against the customer record (no state change on
//     failure),
//  2. screening resolution,
//  3. bounded acquisition of the per-screening lock,
//  4. atomic guarded decrement + ticket insert in the store.
//
// On success it returns the new ticket id and publishes a
// ticket.issued event best-effort. Every failure path is
// side-effect-free.
func (s *Service) Book(ctx context.Context, userName, password string, screeningID uint64) (uint64, error) {
	customer, err := s.customers.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return 0, ErrUnauthorized
		}
		return 0, fmt.Errorf("fetch customer: %w", err)
	}
	if !utils.VerifyPassword(customer.PasswordHash, password) {
		return 0, ErrUnauthorized
	}

	screening, err := s.screenings.GetByID(ctx, screeningID)
	if err != nil {
		if errors.Is(err, repository.ErrScreeningNotFound) {
			return 0, ErrScreeningNotFound
		}
		return 0, fmt.Errorf("fetch screening: %w", err)
	}

	if s.locks != nil {
		if err := s.acquireLock(ctx, screeningID); err != nil {
			return 0, err
		}
		defer func() {
			_ = s.locks.ReleaseScreeningLock(ctx, screeningID)
		}()
	}

	ticketID, err := s.tickets.Issue(ctx, customer.UserName, screeningID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSoldOut):
			return 0, ErrSoldOut
		case errors.Is(err, repository.ErrScreeningNotFound):
			return 0, ErrScreeningNotFound
		default:
			return 0, fmt.Errorf("issue ticket: %w", err)
		}
	}

	if s.locks != nil {
		s.locks.InvalidatePerformances(ctx)
	}
	if s.publisher != nil {
		ev := queue.TicketIssuedEvent{
			EventID:     uuid.NewString(),
			TicketID:    ticketID,
			UserName:    customer.UserName,
			ScreeningID: screeningID,
			ImdbKey:     screening.ImdbKey,
			TheaterName: screening.TheaterName,
			StartDate:   screening.StartDate,
			StartTime:   screening.StartTime,
			IssuedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishTicketIssued(ctx, ev); err != nil {
			log.Printf("booking: publish ticket.issued failed: %v", err)
		}
	}
	return ticketID, nil
}

// TicketsForUser returns the user's tickets grouped per screening.
// An unknown user yields an empty history.
func (s *Service) TicketsForUser(ctx context.Context, userName string) ([]model.TicketSummary, error) {
	return s.tickets.SummariesByUser(ctx, userName)
}

// acquireLock polls the advisory lock until it is taken or the bounded
// wait elapses. The wait is short so one contended screening cannot
// stall unrelated requests; giving up maps to the retryable ErrBusy.
func (s *Service) acquireLock(ctx context.Context, screeningID uint64) error {
	deadline := time.Now().Add(s.lockWait)
	for {
		ok, err := s.locks.AcquireScreeningLock(ctx, screeningID)
		if err != nil {
			return fmt.Errorf("acquire screening lock: %w", err)
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrBusy
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.lockInterval):
		}
	}
}
