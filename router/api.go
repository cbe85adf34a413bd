package router

import (
	"reserva_bot/controller"

	"github.com/gin-gonic/gin"
)

func addApiRouter(engine *gin.Engine) {

	api := engine.Group("/api/v1")
	{
		api.POST("/chat", controller.Chat)
		api.GET("/history", controller.History)
		api.GET("/reservations", controller.Reservations)
	}
}
