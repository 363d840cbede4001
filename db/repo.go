package db

import (
	"context"
	"errors"

	"library_lending/lending"
	"library_lending/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(gdb *gorm.DB) *Repo { return &Repo{DB: gdb} }

// Transact runs fn against a Repo bound to one database transaction.
func (r *Repo) Transact(ctx context.Context, fn func(lending.Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repo{DB: tx})
	})
}

// Items

func (r *Repo) CreateItem(ctx context.Context, it *models.LibraryItem) error {
	return r.DB.WithContext(ctx).Create(it).Error
}

func (r *Repo) FindItemByID(ctx context.Context, id string) (*models.LibraryItem, error) {
	var it models.LibraryItem
	if err := r.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lending.ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

// ListItems returns all items of a kind, most recently created first.
// Clients rely on that ordering.
func (r *Repo) ListItems(ctx context.Context, kind string) ([]models.LibraryItem, error) {
	var items []models.LibraryItem
	err := r.DB.WithContext(ctx).
		Where("kind = ?", kind).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// GetItemForUpdate locks the item row for the rest of the transaction.
func (r *Repo) GetItemForUpdate(ctx context.Context, id string) (*models.LibraryItem, error) {
	var it models.LibraryItem
	if err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&it, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lending.ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *Repo) SetItemBorrowed(ctx context.Context, id string, borrowed bool) error {
	return r.DB.WithContext(ctx).Model(&models.LibraryItem{}).
		Where("id = ?", id).
		Update("is_borrowed", borrowed).Error
}
