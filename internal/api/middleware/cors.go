package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS 跨域中间件。未配置来源时放开全部（前后端同源部署时无感）。
func CORS(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(allowOrigins) > 0 {
		cfg.AllowOrigins = allowOrigins
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}
