package db

import (
	"context"
	"time"

	"library_lending/models"
)

// Ledger. Loan rows are append-mostly: inserted at checkout, closed at
// return, never deleted.

func (r *Repo) OpenLoan(ctx context.Context, loan *models.Loan) error {
	return r.DB.WithContext(ctx).Create(loan).Error
}

func (r *Repo) ListOpenLoans(ctx context.Context, itemID string) ([]models.Loan, error) {
	var ls []models.Loan
	err := r.DB.WithContext(ctx).
		Where("item_id = ? AND return_date IS NULL", itemID).
		Find(&ls).Error
	return ls, err
}

// CloseOpenLoans stamps return_date on every open loan of the item and
// reports how many it closed.
func (r *Repo) CloseOpenLoans(ctx context.Context, itemID string, at time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&models.Loan{}).
		Where("item_id = ? AND return_date IS NULL", itemID).
		Update("return_date", at)
	return res.RowsAffected, res.Error
}
