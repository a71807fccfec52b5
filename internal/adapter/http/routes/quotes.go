package routes

import (
	"comunikapp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/orcamentos"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// calcular é um dry-run: mesmo payload do POST, nada é persistido.
		quotes.POST("/calcular", quoteHandler.Calculate)
		quotes.POST("", quoteHandler.Create)
		quotes.GET("", quoteHandler.List)
		quotes.GET("/:id", quoteHandler.Get)
		quotes.PATCH("/:id", quoteHandler.Update)
		quotes.DELETE("/:id", quoteHandler.Delete)
	}
}
