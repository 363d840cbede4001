// listing/listing.go
package listing

import (
	"strings"

	"library_lending/models"
)

// PageSize matches the fixed page length the item tables render.
const PageSize = 10

// Filter keeps items whose title or kind-specific fields contain q,
// case-insensitively. Empty q keeps everything. Input order is preserved.
func Filter(items []models.LibraryItem, q string) []models.LibraryItem {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}
	out := make([]models.LibraryItem, 0, len(items))
	for _, it := range items {
		if matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it models.LibraryItem, q string) bool {
	fields := []*string{&it.Title, it.Author, it.ISBN, it.Director}
	for _, f := range fields {
		if f != nil && strings.Contains(strings.ToLower(*f), q) {
			return true
		}
	}
	return false
}

// ItemPage is one page of an ordered item sequence.
type ItemPage struct {
	Items      []models.LibraryItem `json:"items"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
}

// Paginate slices out 1-indexed page number page. Out-of-range pages clamp
// to [1, totalPages]; an empty sequence yields a single empty page.
func Paginate(items []models.LibraryItem, page int) ItemPage {
	totalPages := (len(items) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lo := (page - 1) * PageSize
	hi := lo + PageSize
	if lo > len(items) {
		lo = len(items)
	}
	if hi > len(items) {
		hi = len(items)
	}

	slice := items[lo:hi]
	if slice == nil {
		slice = []models.LibraryItem{} // JSON [] rather than null
	}

	return ItemPage{
		Items:      slice,
		Total:      len(items),
		Page:       page,
		TotalPages: totalPages,
	}
}
