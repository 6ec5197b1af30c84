package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/memorybox/backend/internal/logging"
	"github.com/memorybox/backend/internal/service"
	"go.uber.org/zap"
)

type Services struct {
	Auth     *service.AuthService
	Photos   *service.PhotoService
	Memories *service.MemoryService
	Settings *service.SettingsService
	QRCode   *service.QRCodeService
}

// NewRouter wires every route under /api. Mutating routes sit behind AuthMiddleware.
func NewRouter(svcs Services, logger *zap.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.RequestLogger(logger, "/api/health"))
	router.Use(CORSMiddleware(allowedOrigins))

	auth := NewAuthHandler(svcs.Auth)
	photos := NewPhotoHandler(svcs.Photos)
	memories := NewMemoryHandler(svcs.Memories)
	settings := NewSettingsHandler(svcs.Settings, svcs.QRCode)
	requireAdmin := AuthMiddleware(svcs.Auth)

	api := router.Group("/api")
	api.GET("/health", Health(time.Now()))
	api.GET("/openapi.json", OpenAPIDoc)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", auth.Login)
	authGroup.POST("/refresh", auth.Refresh)
	authGroup.POST("/logout", requireAdmin, auth.Logout)
	authGroup.GET("/verify", requireAdmin, auth.Verify)
	authGroup.PUT("/password", requireAdmin, auth.ChangePassword)
	authGroup.PUT("/username", requireAdmin, auth.ChangeUsername)

	photoGroup := api.Group("/photos")
	photoGroup.GET("", photos.ListPhotos)
	photoGroup.POST("/upload-url", photos.UploadURL)
	photoGroup.POST("/upload", photos.Upload)
	photoGroup.DELETE("/:id", requireAdmin, photos.DeletePhoto)
	photoGroup.POST("/bulk-delete", requireAdmin, photos.BulkDelete)
	photoGroup.GET("/stats/overview", requireAdmin, photos.Stats)

	memoryGroup := api.Group("/memories")
	memoryGroup.GET("", memories.ListMemories)
	memoryGroup.POST("", memories.CreateMemory)
	memoryGroup.DELETE("/:id", requireAdmin, memories.DeleteMemory)
	memoryGroup.POST("/bulk-delete", requireAdmin, memories.BulkDelete)
	memoryGroup.GET("/stats/overview", requireAdmin, memories.Stats)

	settingsGroup := api.Group("/settings")
	settingsGroup.GET("", settings.GetSettings)
	settingsGroup.PUT("", requireAdmin, settings.UpdateSettings)
	settingsGroup.PATCH("/toggle-upload", requireAdmin, settings.ToggleUpload)

	api.POST("/qrcode/generate", requireAdmin, settings.GenerateQRCode)

	return router
}
