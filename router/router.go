package router

import (
	"sync"

	"reserva_bot/middleware"

	"github.com/gin-gonic/gin"
)

var once sync.Once
var instance *gin.Engine

func init() {
	once.Do(func() {
		instance = gin.New()
		instance.Use(middleware.Logger, gin.Recovery())
		addBasicRouter(instance)
		addApiRouter(instance)
	})
}

func GetInstance() *gin.Engine {
	return instance
}
