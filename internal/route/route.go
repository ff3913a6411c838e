package route

import (
	"time"

	"terminal-terrace/mp-article/config"
	"terminal-terrace/mp-article/internal/article"
	"terminal-terrace/mp-article/internal/cleanup"
	"terminal-terrace/mp-article/internal/dto"
	"terminal-terrace/mp-article/internal/event"
	"terminal-terrace/mp-article/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func initRoute(r *gin.Engine, db *gorm.DB, conf *config.AppConfig) {
	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", healthCheck(db))

	auth := middleware.JWTAuth(conf.JWT.Secret)

	// 初始化依赖
	articleService := article.NewArticleService(db, article.ServiceOptions{
		HardDelete: conf.Article.TrueDelete,
	})
	cleanupService := cleanup.NewCleanupService(db)
	eventService := event.NewEventService(db)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	articles := apiV1.Group("/wx/articles")
	{
		cleanup.RegisterRoutes(articles, cleanup.NewCleanupHandler(cleanupService, cleanupService), auth)
		article.RegisterRoutes(articles, article.NewArticleHandler(articleService), auth)
		event.RegisterRoutes(articles, event.NewEventHandler(eventService), auth)
	}
}

// healthCheck 检查数据库连接
func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			dto.HandleError(c, err)
			return
		}
		dto.SuccessResponse(c, gin.H{"status": "ok", "time": time.Now().Unix()})
	}
}

func SetupRouter(db *gorm.DB, conf *config.AppConfig) *gin.Engine {
	if conf.Server.Mode != "" {
		gin.SetMode(conf.Server.Mode)
	}
	r := gin.Default()

	origin := conf.Server.FrontendURL
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r, db, conf)

	return r
}
