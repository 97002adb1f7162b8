package app

import (
	"net/http"

	"hotel/internal/config"
	"hotel/internal/metrics"
	"hotel/internal/middleware"
	"hotel/internal/modules/admin"
	"hotel/internal/modules/auth"
	"hotel/internal/modules/contact"
	"hotel/internal/modules/invoice"
	"hotel/internal/modules/notification"
	"hotel/internal/modules/payment"
	"hotel/internal/modules/reservation"
	"hotel/internal/modules/room"
	"hotel/internal/pkg/jwt"

	_ "hotel/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RouterParams struct {
	fx.In

	Config  *config.Config
	Log     *zap.Logger
	DB      *gorm.DB
	Metrics *metrics.Metrics
	Tokens  *jwt.Service

	Auth          *auth.Handler
	Rooms         *room.Handler
	Reservations  *reservation.Handler
	Payments      *payment.Handler
	Invoices      *invoice.Handler
	Contact       *contact.Handler
	Notifications *notification.Handler
	WebSocket     *notification.WSHandler
	Admin         *admin.Handler
}

// NewRouter builds the gin engine with every route group.
//
//	/api            public
//	/api (JWT)      any signed-in user
//	/api (staff)    OPERADOR or ADMINISTRADOR
//	/api (admin)    ADMINISTRADOR
func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(p.Log),
		middleware.RequestLogger(p.Log),
		middleware.Recovery(p.Log),
		middleware.CORS(p.Config.CORS),
		middleware.Metrics(p.Metrics),
	)

	r.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if sqlDB, err := p.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "service": p.Config.App.Name})
	})
	r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))
	if gin.Mode() != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	p.Auth.RegisterPublicRoutes(api)
	p.Rooms.RegisterPublicRoutes(api)
	p.Contact.RegisterPublicRoutes(api)
	p.WebSocket.RegisterRoutes(api)

	protected := api.Group("", middleware.JWTAuth(p.Tokens))
	p.Auth.RegisterProtectedRoutes(protected)
	p.Reservations.RegisterProtectedRoutes(protected)
	p.Payments.RegisterProtectedRoutes(protected)
	p.Invoices.RegisterProtectedRoutes(protected)
	p.Notifications.RegisterRoutes(protected)

	staff := protected.Group("", middleware.StaffOnly())
	p.Rooms.RegisterStaffRoutes(staff)
	p.Reservations.RegisterStaffRoutes(staff)
	p.Payments.RegisterStaffRoutes(staff)
	p.Invoices.RegisterStaffRoutes(staff)
	p.Contact.RegisterStaffRoutes(staff)

	adminGroup := protected.Group("", middleware.AdminOnly())
	p.Rooms.RegisterAdminRoutes(adminGroup)
	p.Admin.RegisterRoutes(adminGroup)

	return r
}
