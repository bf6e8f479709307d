package pensionfund

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	funds := r.Group("/pension-funds")
	{
		funds.GET("", handler.GetAll)
		funds.GET("/:id", handler.GetById)
		funds.POST("", handler.Create)
		funds.PUT("/:id", handler.Update)
		funds.DELETE("/:id", handler.Delete)
	}
}
