package routes

import (
	"comunikapp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStoreSettings = "/loja/configuracoes"
)

func addStoreRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settings := rg.Group(PathStoreSettings)
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("", settingsHandler.Save)
	}
}
