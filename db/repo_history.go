// db/repo_history.go
package db

import (
	"context"
	"strings"
	"time"

	"library_lending/models"
)

// HistoryRow is one borrowing event joined with its item's title and kind.
type HistoryRow struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"itemId"`
	ItemType   string     `json:"itemType"`
	Title      string     `json:"title"`
	Borrower   string     `json:"borrower"`
	BorrowDate time.Time  `json:"borrowDate"`
	ReturnDate *time.Time `json:"returnDate"`
}

type HistoryQuery struct {
	Q          string // substring match on title or borrower
	BorrowedOn string // exact calendar day of borrow_date, "2006-01-02"
	ItemID     string
	Borrower   string // exact borrower
	Status     string // "", "open", "returned"
}

// ListHistory reads the ledger joined with item titles, newest borrow
// first. Read-only; safe to retry.
func (r *Repo) ListHistory(ctx context.Context, q HistoryQuery) ([]HistoryRow, error) {
	qry := r.DB.WithContext(ctx).
		Table(models.LoanTable+" l").
		Select(`
			l.id, l.item_id, l.borrower, l.borrow_date, l.return_date,
			i.kind  AS item_type,
			i.title AS title
		`).
		Joins("JOIN " + models.ItemTable + " i ON i.id = l.item_id")

	if s := strings.TrimSpace(q.Q); s != "" {
		pat := "%" + strings.ToLower(s) + "%"
		qry = qry.Where("LOWER(i.title) LIKE ? OR LOWER(l.borrower) LIKE ?", pat, pat)
	}
	if q.BorrowedOn != "" {
		qry = qry.Where("DATE(l.borrow_date) = ?", q.BorrowedOn)
	}
	if q.ItemID != "" {
		qry = qry.Where("l.item_id = ?", q.ItemID)
	}
	if q.Borrower != "" {
		qry = qry.Where("l.borrower = ?", q.Borrower)
	}
	switch q.Status {
	case "open":
		qry = qry.Where("l.return_date IS NULL")
	case "returned":
		qry = qry.Where("l.return_date IS NOT NULL")
	}

	var rows []HistoryRow
	if err := qry.Order("l.borrow_date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []HistoryRow{} // JSON [] rather than null
	}
	return rows, nil
}
