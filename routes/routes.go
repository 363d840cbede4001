package routes

import (
	"library_lending/app"
	"library_lending/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	itemCtl := controllers.NewItemController(s)
	histCtl := controllers.NewHistoryController(s)

	// ------------------------------
	// 物品：列表/创建/借出/归还
	// ------------------------------
	items := r.Group("/api/items")
	{
		items.GET("/:kind", itemCtl.ListItems)    // ?q=&page=
		items.POST("/:kind", itemCtl.CreateItem)
		items.POST("/:kind/:id/checkout", itemCtl.Checkout)
		items.POST("/:kind/:id/return", itemCtl.Return)
	}

	// ------------------------------
	// 借还历史
	// ------------------------------
	r.GET("/api/history", histCtl.ListHistory) // ?q=&date=&itemId=&borrower=&status=
}
