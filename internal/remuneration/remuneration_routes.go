package remuneration

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	rems := r.Group("/remunerations")
	{
		rems.GET("", handler.GetAll)
		rems.GET("/:id", handler.GetById)
		rems.POST("", handler.Create)
		rems.PUT("/:id", handler.Update)
		rems.DELETE("/:id", handler.Delete)
	}
}
