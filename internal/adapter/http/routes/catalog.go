package routes

import (
	"comunikapp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMaterials = "/insumos"
	PathMachines  = "/maquinas"
	PathRoles     = "/funcoes"
	PathClients   = "/clientes"
)

func addCatalogRoutes(
	rg *gin.RouterGroup,
	materialHandler *handlers.MaterialHandler,
	machineHandler *handlers.MachineHandler,
	roleHandler *handlers.RoleHandler,
	clientHandler *handlers.ClientHandler,
) {
	materials := rg.Group(PathMaterials)
	{
		materials.POST("", materialHandler.Create)
		materials.GET("", materialHandler.List)
		materials.GET("/:id", materialHandler.Get)
		materials.PATCH("/:id", materialHandler.Update)
		materials.DELETE("/:id", materialHandler.Delete)
	}

	machines := rg.Group(PathMachines)
	{
		machines.POST("", machineHandler.Create)
		machines.GET("", machineHandler.List)
		machines.GET("/:id", machineHandler.Get)
		machines.PATCH("/:id", machineHandler.Update)
		machines.DELETE("/:id", machineHandler.Delete)
	}

	roles := rg.Group(PathRoles)
	{
		roles.POST("", roleHandler.Create)
		roles.GET("", roleHandler.List)
		roles.GET("/:id", roleHandler.Get)
		roles.PATCH("/:id", roleHandler.Update)
		roles.DELETE("/:id", roleHandler.Delete)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.Get)
		clients.PATCH("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}
}
