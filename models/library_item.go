// models/library_item.go
package models

import "time"

const ItemTable = "lib_items"
const LoanTable = "lib_loans"

// Item kinds. A closed set; dispatch on kind is explicit, not polymorphic.
const (
	KindBook = "book"
	KindDVD  = "dvd"
)

func ValidKind(k string) bool { return k == KindBook || k == KindDVD }

// LibraryItem is one loanable item. Books and DVDs share a table; the
// kind column discriminates and the kind-specific columns are nullable.
type LibraryItem struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Kind  string `gorm:"size:10;index;not null" json:"kind"`
	Title string `gorm:"size:300;not null" json:"title"`

	// book
	Author      *string `gorm:"size:300" json:"author,omitempty"`
	ISBN        *string `gorm:"size:20;column:isbn" json:"isbn,omitempty"`
	PublishYear *int    `json:"publishYear,omitempty"`

	// dvd
	Director    *string `gorm:"size:200" json:"director,omitempty"`
	Duration    *int    `json:"duration,omitempty"` // minutes
	ReleaseYear *int    `json:"releaseYear,omitempty"`

	// Redundant status column, cache of "an open loan exists in lib_loans".
	// Only the lending service writes it, inside the same transaction that
	// touches the loans table.
	IsBorrowed bool `gorm:"not null;default:false" json:"isBorrowed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (LibraryItem) TableName() string { return ItemTable }
