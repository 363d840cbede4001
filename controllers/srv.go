// controllers/srv.go
package controllers

import (
	"context"
	"log/slog"

	"library_lending/app"
	"library_lending/cache"
	"library_lending/db"
	"library_lending/lending"
	"library_lending/models"
)

// LendingService is what the item controller needs from the
// checkout/return lifecycle.
type LendingService interface {
	Checkout(ctx context.Context, itemID, borrower string) (*models.LibraryItem, error)
	Return(ctx context.Context, itemID string) (*models.LibraryItem, error)
}

// ItemStore is the slice of the repo the item controller reads and writes.
type ItemStore interface {
	CreateItem(ctx context.Context, it *models.LibraryItem) error
	ListItems(ctx context.Context, kind string) ([]models.LibraryItem, error)
}

// HistoryReader answers borrowing-history queries.
type HistoryReader interface {
	ListHistory(ctx context.Context, q db.HistoryQuery) ([]db.HistoryRow, error)
}

// Srv bundles the controller dependencies. The interface fields let
// handler tests drop in fakes.
type Srv struct {
	Items   ItemStore
	History HistoryReader
	Lending LendingService
	Cache   *cache.ListingCache // nil disables caching
	Log     *slog.Logger
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB)
	return &Srv{
		Items:   repo,
		History: repo,
		Lending: lending.NewService(repo, a.Log),
		Cache:   cache.NewListingCache(a.RDB, a.Config.ListingCacheTTL),
		Log:     a.Log,
	}
}
