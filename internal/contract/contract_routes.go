package contract

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	contracts := r.Group("/contracts")
	{
		contracts.GET("", handler.GetAll)
		contracts.GET("/:id", handler.GetById)
		contracts.POST("", handler.Create)
		contracts.PUT("/:id", handler.Update)
		contracts.DELETE("/:id", handler.Delete)
	}
}
