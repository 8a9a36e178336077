package api

import (
	"LyvoAdmin/internal/api/middleware"
	"LyvoAdmin/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		notificationGroup := apiGroup.Group("/notifications")
		{
			notificationGroup.GET("", group.NotificationHandler.GetFeed)
			notificationGroup.GET("/unread", group.NotificationHandler.GetUnread)
			notificationGroup.POST("/refresh", group.NotificationHandler.Refresh)
			notificationGroup.DELETE("/:notification_id", group.NotificationHandler.Dismiss)

			notificationGroup.GET("/ws", group.WsHandler.Connect)
		}
	}

	return r
}
