// controllers/item_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"library_lending/app"
	"library_lending/lending"
	"library_lending/listing"
	"library_lending/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

// 列表：?q= 按标题/作者/导演模糊过滤，?page= 固定每页 10 条
func (ic *ItemController) ListItems(c *gin.Context) {
	kind := c.Param("kind")
	if !models.ValidKind(kind) {
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown item kind"})
		return
	}

	ctx := c.Request.Context()
	items, ok := ic.cachedList(c, kind)
	if !ok {
		var err error
		items, err = ic.Items.ListItems(ctx, kind)
		if err != nil {
			ic.Log.Error("list items failed", "kind", kind, "err", err)
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
			return
		}
		if ic.Cache != nil {
			ic.Cache.Set(ctx, kind, items)
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	res := listing.Paginate(listing.Filter(items, c.Query("q")), page)
	c.JSON(http.StatusOK, res)
}

func (ic *ItemController) cachedList(c *gin.Context, kind string) ([]models.LibraryItem, bool) {
	if ic.Cache == nil {
		return nil, false
	}
	return ic.Cache.Get(c.Request.Context(), kind)
}

// 创建：按 kind 显式分派字段
func (ic *ItemController) CreateItem(c *gin.Context) {
	kind := c.Param("kind")

	var it *models.LibraryItem
	switch kind {
	case models.KindBook:
		var in struct {
			Title       string `json:"title" binding:"required"`
			Author      string `json:"author" binding:"required"`
			ISBN        string `json:"isbn" binding:"required"`
			PublishYear int    `json:"publishYear" binding:"required"`
			IsBorrowed  bool   `json:"isBorrowed"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
			return
		}
		it = &models.LibraryItem{
			ID: uuid.NewString(), Kind: kind, Title: in.Title,
			Author: &in.Author, ISBN: &in.ISBN, PublishYear: &in.PublishYear,
			IsBorrowed: in.IsBorrowed,
		}
	case models.KindDVD:
		var in struct {
			Title       string `json:"title" binding:"required"`
			Director    string `json:"director" binding:"required"`
			Duration    int    `json:"duration" binding:"required"`
			ReleaseYear int    `json:"releaseYear" binding:"required"`
			IsBorrowed  bool   `json:"isBorrowed"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
			return
		}
		it = &models.LibraryItem{
			ID: uuid.NewString(), Kind: kind, Title: in.Title,
			Director: &in.Director, Duration: &in.Duration, ReleaseYear: &in.ReleaseYear,
			IsBorrowed: in.IsBorrowed,
		}
	default:
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown item kind"})
		return
	}

	if err := ic.Items.CreateItem(c.Request.Context(), it); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	ic.invalidate(c, kind)
	c.JSON(http.StatusCreated, it)
}

// 借出
func (ic *ItemController) Checkout(c *gin.Context) {
	itemID := c.Param("id")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing item id"})
		return
	}
	var in struct {
		Borrower string `json:"borrower" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	it, err := ic.Lending.Checkout(c.Request.Context(), itemID, in.Borrower)
	if err != nil {
		ic.writeLendingError(c, err)
		return
	}
	ic.invalidate(c, it.Kind)
	c.JSON(http.StatusOK, it)
}

// 归还
func (ic *ItemController) Return(c *gin.Context) {
	itemID := c.Param("id")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing item id"})
		return
	}

	it, err := ic.Lending.Return(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, lending.ErrNoOpenLoan) && models.ValidKind(c.Param("kind")) {
			// the conflict may still have cleared a stale borrowed flag
			ic.invalidate(c, c.Param("kind"))
		}
		ic.writeLendingError(c, err)
		return
	}
	ic.invalidate(c, it.Kind)
	c.JSON(http.StatusOK, it)
}

// NotFound, Conflict and storage failures each get their own status code.
func (ic *ItemController) writeLendingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lending.ErrItemNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.Is(err, lending.ErrAlreadyBorrowed), errors.Is(err, lending.ErrNoOpenLoan):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	default:
		ic.Log.Error("lending operation failed", "err", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}

func (ic *ItemController) invalidate(c *gin.Context, kind string) {
	if ic.Cache != nil {
		ic.Cache.Invalidate(c.Request.Context(), kind)
	}
}
