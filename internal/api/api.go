package api

import (
	"net/http"

	authHandler "leadflow-server/internal/auth/handler"
	injectionHandler "leadflow-server/internal/injection/handler"
	leadsHandler "leadflow-server/internal/leads/handler"
	"leadflow-server/internal/observability"
	ordersHandler "leadflow-server/internal/orders/handler"
	proxiesHandler "leadflow-server/internal/proxies/handler"
	"leadflow-server/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	ordersHandler    ordersHandler.Handler
	leadsHandler     leadsHandler.Handler
	proxiesHandler   proxiesHandler.Handler
	injectionHandler injectionHandler.Handler
	rateLimiter      *ratelimit.Service
	logger           *observability.Logger
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	ordersHandler ordersHandler.Handler,
	leadsHandler leadsHandler.Handler,
	proxiesHandler proxiesHandler.Handler,
	injectionHandler injectionHandler.Handler,
	rateLimiter *ratelimit.Service,
	logger *observability.Logger,
) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		ordersHandler:    ordersHandler,
		leadsHandler:     leadsHandler,
		proxiesHandler:   proxiesHandler,
		injectionHandler: injectionHandler,
		rateLimiter:      rateLimiter,
		logger:           logger,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/login", a.authHandler.HandleLogin)
		authGroup.POST("/signup", a.authHandler.HandleSignup)
	}
	protectedGroup := apiGroup.Group("/protected",
		a.authHandler.HandleJWTMiddleware,
		ratelimit.Middleware(a.rateLimiter, a.logger),
	)
	{
		protectedGroup.GET("/me", a.authHandler.HandleGetMe)

		protectedGroup.POST("/orders", a.ordersHandler.HandleCreateOrder)
		protectedGroup.GET("/orders/:order_id", a.ordersHandler.HandleGetOrder)
		protectedGroup.GET("/orders/:order_id/leads", a.ordersHandler.HandleGetOrderLeads)
		protectedGroup.POST("/orders/:order_id/cancel", a.ordersHandler.HandleCancelOrder)

		protectedGroup.POST("/orders/:order_id/injection/start", a.injectionHandler.HandleStartInjection)
		protectedGroup.POST("/orders/:order_id/injection/pause", a.injectionHandler.HandlePauseInjection)
		protectedGroup.POST("/orders/:order_id/injection/resume", a.injectionHandler.HandleStartInjection)
		protectedGroup.POST("/orders/:order_id/injection/stop", a.injectionHandler.HandleStopInjection)
		protectedGroup.GET("/orders/:order_id/injection/progress", a.injectionHandler.HandleProgressFeed)
		protectedGroup.POST("/orders/:order_id/leads/:lead_id/ftd", a.injectionHandler.HandleCompleteFTD)
		protectedGroup.POST("/orders/:order_id/leads/:lead_id/broker", a.injectionHandler.HandleAssignBroker)

		protectedGroup.POST("/leads", a.leadsHandler.HandleCreateLead)
		protectedGroup.POST("/leads/wake-sleeping", a.leadsHandler.HandleWakeSleepingLeads)
		protectedGroup.GET("/leads/:lead_id", a.leadsHandler.HandleGetLead)
		protectedGroup.POST("/leads/:lead_id/wake", a.leadsHandler.HandleWakeLead)

		protectedGroup.POST("/proxies", a.proxiesHandler.HandleProvisionProxy)
		protectedGroup.GET("/proxies", a.proxiesHandler.HandleListProxies)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
