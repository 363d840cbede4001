// models/loan.go
package models

import "time"

// Loan is one borrowing event. ReturnDate == nil means the loan is open;
// it is set exactly once, on return, and never cleared. Rows are never
// deleted.
type Loan struct {
	ID         string     `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID     string     `gorm:"type:uuid;index;not null" json:"itemId"`
	Borrower   string     `gorm:"size:200;not null" json:"borrower"`
	BorrowDate time.Time  `gorm:"index;not null" json:"borrowDate"`
	ReturnDate *time.Time `gorm:"index" json:"returnDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Loan) TableName() string { return LoanTable }

func (l *Loan) Open() bool { return l.ReturnDate == nil }
