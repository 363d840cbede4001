// lending/service.go
package lending

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"library_lending/models"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrAlreadyBorrowed = errors.New("item already borrowed")
	ErrNoOpenLoan      = errors.New("no open loan for this item")
)

// Store is the durable state the service coordinates: item rows and the
// loan ledger. Transact runs fn against a store bound to one transaction;
// inside it GetItemForUpdate must lock the item row so checkout and return
// of the same item serialize.
type Store interface {
	Transact(ctx context.Context, fn func(Store) error) error

	GetItemForUpdate(ctx context.Context, id string) (*models.LibraryItem, error)
	SetItemBorrowed(ctx context.Context, id string, borrowed bool) error

	OpenLoan(ctx context.Context, loan *models.Loan) error
	ListOpenLoans(ctx context.Context, itemID string) ([]models.Loan, error)
	CloseOpenLoans(ctx context.Context, itemID string, at time.Time) (int64, error)
}

// Service owns the checkout/return lifecycle. All writes to item status
// and the ledger go through here, one transaction per operation.
type Service struct {
	store Store
	log   *slog.Logger
}

func NewService(store Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, log: log}
}

// Checkout opens a loan for the item and flips its status, or fails with
// ErrItemNotFound / ErrAlreadyBorrowed. The status check and both writes
// happen under the item row lock, so two concurrent checkouts of the same
// item cannot both succeed; the partial unique index on open loans backs
// this up at the storage layer.
func (s *Service) Checkout(ctx context.Context, itemID, borrower string) (*models.LibraryItem, error) {
	var out *models.LibraryItem
	err := s.store.Transact(ctx, func(tx Store) error {
		it, err := tx.GetItemForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if it.IsBorrowed {
			return ErrAlreadyBorrowed
		}
		open, err := tx.ListOpenLoans(ctx, itemID)
		if err != nil {
			return fmt.Errorf("list open loans: %w", err)
		}
		if len(open) > 0 {
			// status column lagged behind the ledger; refuse rather than
			// stack a second open loan
			s.log.Warn("item flagged available but has open loans",
				"itemId", itemID, "openLoans", len(open))
			return ErrAlreadyBorrowed
		}

		loan := &models.Loan{
			ID:         uuid.NewString(),
			ItemID:     it.ID,
			Borrower:   borrower,
			BorrowDate: time.Now().UTC(),
		}
		if err := tx.OpenLoan(ctx, loan); err != nil {
			return fmt.Errorf("open loan: %w", err)
		}
		if err := tx.SetItemBorrowed(ctx, it.ID, true); err != nil {
			return fmt.Errorf("set item borrowed: %w", err)
		}
		it.IsBorrowed = true
		out = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("item checked out", "itemId", itemID, "borrower", borrower)
	return out, nil
}

// Return closes the item's open loan and flips its status back. Returning
// an item with no open loan is ErrNoOpenLoan, not a silent success — but the
// borrowed flag is still forced to false, so an item whose flag drifted
// ahead of the ledger repairs itself instead of staying stuck. If more than
// one open loan exists (a prior consistency breach) every one of them is
// closed.
func (s *Service) Return(ctx context.Context, itemID string) (*models.LibraryItem, error) {
	var out *models.LibraryItem
	var closed int64
	err := s.store.Transact(ctx, func(tx Store) error {
		it, err := tx.GetItemForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		n, err := tx.CloseOpenLoans(ctx, itemID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("close open loans: %w", err)
		}
		closed = n
		if n == 0 && !it.IsBorrowed {
			return ErrNoOpenLoan
		}
		if n > 1 {
			s.log.Warn("closed more than one open loan", "itemId", itemID, "count", n)
		}
		if err := tx.SetItemBorrowed(ctx, it.ID, false); err != nil {
			return fmt.Errorf("set item returned: %w", err)
		}
		it.IsBorrowed = false
		out = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	if closed == 0 {
		// the flag said borrowed while the ledger had no open loan; the
		// cleared flag is committed, the caller still sees the conflict
		s.log.Warn("cleared borrowed flag without an open loan", "itemId", itemID)
		return nil, ErrNoOpenLoan
	}
	s.log.Info("item returned", "itemId", itemID)
	return out, nil
}
