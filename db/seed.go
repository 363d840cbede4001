// db/seed.go
package db

import (
	"context"

	"library_lending/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

// Seed loads a starter catalog. No-op if any item already exists.
func Seed(ctx context.Context, gdb *gorm.DB) error {
	var n int64
	if err := gdb.WithContext(ctx).Model(&models.LibraryItem{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	items := []models.LibraryItem{
		{Kind: models.KindBook, Title: "The Great Gatsby", Author: strp("F. Scott Fitzgerald"), ISBN: strp("9780743273565"), PublishYear: intp(1925)},
		{Kind: models.KindBook, Title: "To Kill a Mockingbird", Author: strp("Harper Lee"), ISBN: strp("9780446310789"), PublishYear: intp(1960)},
		{Kind: models.KindBook, Title: "1984", Author: strp("George Orwell"), ISBN: strp("9780451524935"), PublishYear: intp(1949)},
		{Kind: models.KindBook, Title: "Design Patterns: Elements of Reusable Object-Oriented Software", Author: strp("Erich Gamma, Richard Helm, Ralph Johnson, John Vlissides"), ISBN: strp("9780201633610"), PublishYear: intp(1994)},
		{Kind: models.KindBook, Title: "Object-Oriented Analysis and Design with Applications", Author: strp("Grady Booch"), ISBN: strp("9780201895513"), PublishYear: intp(2007)},
		{Kind: models.KindBook, Title: "Clean Code: A Handbook of Agile Software Craftsmanship", Author: strp("Robert C. Martin"), ISBN: strp("9780132350884"), PublishYear: intp(2008)},
		{Kind: models.KindBook, Title: "The Pragmatic Programmer: Your Journey To Mastery", Author: strp("Andrew Hunt, David Thomas"), ISBN: strp("9780135957059"), PublishYear: intp(1999)},
		{Kind: models.KindBook, Title: "Head First Design Patterns", Author: strp("Eric Freeman, Bert Bates, Kathy Sierra, Elisabeth Robson"), ISBN: strp("9780596007126"), PublishYear: intp(2004)},
		{Kind: models.KindDVD, Title: "Dune", Director: strp("Denis Villeneuve"), Duration: intp(155), ReleaseYear: intp(2021)},
		{Kind: models.KindDVD, Title: "The Matrix", Director: strp("Lana Wachowski, Lilly Wachowski"), Duration: intp(136), ReleaseYear: intp(1999)},
	}

	for i := range items {
		items[i].ID = uuid.NewString()
	}
	return gdb.WithContext(ctx).Create(&items).Error
}
