package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"library_lending/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHistory(t *testing.T) {
	now := time.Now().UTC()
	hist := &fakeHistory{rows: []db.HistoryRow{
		{ID: "l2", ItemID: "i2", ItemType: "dvd", Title: "Dune", Borrower: "Jane Smith", BorrowDate: now},
		{ID: "l1", ItemID: "i1", ItemType: "book", Title: "1984", Borrower: "John Doe", BorrowDate: now.Add(-24 * time.Hour), ReturnDate: &now},
	}}
	r := newTestRouter(&Srv{History: hist})

	w := doJSON(t, r, http.MethodGet, "/api/history?q=dune&date=2024-02-01&status=open", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "dune", hist.got.Q)
	assert.Equal(t, "2024-02-01", hist.got.BorrowedOn)
	assert.Equal(t, "open", hist.got.Status)

	var res struct {
		Items []db.HistoryRow `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Dune", res.Items[0].Title)
	assert.Nil(t, res.Items[0].ReturnDate)
	assert.NotNil(t, res.Items[1].ReturnDate)
}

func TestListHistoryBadDate(t *testing.T) {
	r := newTestRouter(&Srv{History: &fakeHistory{}})

	w := doJSON(t, r, http.MethodGet, "/api/history?date=last-tuesday", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListHistoryStorageError(t *testing.T) {
	r := newTestRouter(&Srv{History: &fakeHistory{err: errors.New("connection refused")}})

	w := doJSON(t, r, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
