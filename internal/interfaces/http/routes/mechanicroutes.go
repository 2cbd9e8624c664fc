package routes

import (
	"github.com/gin-gonic/gin"

	mechanichandlers "github.com/shopfloor-inc/shopfloor/internal/interfaces/http/handlers/mechanic"
)

type MechanicRouteConfig struct {
	MechanicHandler *mechanichandlers.Handler
}

func SetupMechanicRoutes(engine *gin.Engine, config *MechanicRouteConfig) {
	mechanics := engine.Group("/mechanics")
	{
		// Collection operations keep the trailing slash
		mechanics.POST("/",
			config.MechanicHandler.CreateMechanic)
		mechanics.GET("/",
			config.MechanicHandler.ListMechanics)

		mechanics.GET("/:id",
			config.MechanicHandler.GetMechanic)
		mechanics.PUT("/:id",
			config.MechanicHandler.UpdateMechanic)
		mechanics.DELETE("/:id",
			config.MechanicHandler.DeleteMechanic)
	}
}
