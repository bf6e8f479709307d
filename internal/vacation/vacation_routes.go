package vacation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	vacations := r.Group("/vacations")
	{
		vacations.GET("", handler.GetAll)
		vacations.GET("/:id", handler.GetById)
		vacations.POST("", handler.Request)
	}
}
