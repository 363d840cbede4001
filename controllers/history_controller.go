// controllers/history_controller.go
package controllers

import (
	"net/http"
	"time"

	"library_lending/app"
	"library_lending/db"

	"github.com/gin-gonic/gin"
)

type HistoryController struct{ *Srv }

func NewHistoryController(s *Srv) *HistoryController { return &HistoryController{Srv: s} }

// 借还记录：?q=标题/借阅人模糊 &date=2006-01-02 &itemId= &borrower= &status=open|returned
func (hc *HistoryController) ListHistory(c *gin.Context) {
	q := db.HistoryQuery{
		Q:        c.Query("q"),
		ItemID:   c.Query("itemId"),
		Borrower: c.Query("borrower"),
		Status:   c.Query("status"),
	}
	if d := c.Query("date"); d != "" {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		q.BorrowedOn = d
	}

	rows, err := hc.History.ListHistory(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"items": rows})
}
