package listing

import (
	"fmt"
	"testing"

	"library_lending/models"

	"github.com/stretchr/testify/assert"
)

func book(title, author string) models.LibraryItem {
	return models.LibraryItem{Kind: models.KindBook, Title: title, Author: &author}
}

func dvd(title, director string) models.LibraryItem {
	return models.LibraryItem{Kind: models.KindDVD, Title: title, Director: &director}
}

func TestFilter(t *testing.T) {
	items := []models.LibraryItem{
		book("The Great Gatsby", "F. Scott Fitzgerald"),
		book("1984", "George Orwell"),
		dvd("Dune", "Denis Villeneuve"),
	}

	t.Run("empty query keeps everything", func(t *testing.T) {
		assert.Len(t, Filter(items, ""), 3)
		assert.Len(t, Filter(items, "   "), 3)
	})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got := Filter(items, "gatsby")
		assert.Len(t, got, 1)
		assert.Equal(t, "The Great Gatsby", got[0].Title)
	})

	t.Run("matches author", func(t *testing.T) {
		got := Filter(items, "orwell")
		assert.Len(t, got, 1)
		assert.Equal(t, "1984", got[0].Title)
	})

	t.Run("matches director", func(t *testing.T) {
		got := Filter(items, "villeneuve")
		assert.Len(t, got, 1)
		assert.Equal(t, "Dune", got[0].Title)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Filter(items, "tolkien"))
	})

	t.Run("preserves input order", func(t *testing.T) {
		got := Filter(items, "e")
		assert.Equal(t, []string{"The Great Gatsby", "1984", "Dune"},
			[]string{got[0].Title, got[1].Title, got[2].Title})
	})
}

func TestPaginate(t *testing.T) {
	var items []models.LibraryItem
	for i := 0; i < 25; i++ {
		items = append(items, book(fmt.Sprintf("Book %02d", i), "A"))
	}

	t.Run("first page", func(t *testing.T) {
		p := Paginate(items, 1)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, 25, p.Total)
		assert.Len(t, p.Items, PageSize)
		assert.Equal(t, "Book 00", p.Items[0].Title)
	})

	t.Run("last page is short", func(t *testing.T) {
		p := Paginate(items, 3)
		assert.Len(t, p.Items, 5)
		assert.Equal(t, "Book 20", p.Items[0].Title)
	})

	t.Run("page past the end clamps to last", func(t *testing.T) {
		p := Paginate(items, 99)
		assert.Equal(t, 3, p.Page)
		assert.Len(t, p.Items, 5)
	})

	t.Run("page below one clamps to first", func(t *testing.T) {
		p := Paginate(items, 0)
		assert.Equal(t, 1, p.Page)
		p = Paginate(items, -4)
		assert.Equal(t, 1, p.Page)
	})

	t.Run("empty sequence yields one empty page", func(t *testing.T) {
		p := Paginate(nil, 1)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 1, p.TotalPages)
		assert.Equal(t, 0, p.Total)
		assert.Empty(t, p.Items)
	})

	t.Run("same input twice pages identically", func(t *testing.T) {
		assert.Equal(t, Paginate(items, 2), Paginate(items, 2))
	})
}
