package handlers

import (
	"net/http"

	"contactbook/internal/logger"
	"contactbook/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		// Open endpoints: registration and login
		api.POST("/users", h.register)
		api.POST("/auth/login", h.login)

		// Everything else requires a valid session token
		authed := api.Group("", h.authMiddleware)
		{
			authed.DELETE("/auth/logout", h.logout)
			authed.GET("/user/current", h.getCurrentUser)
			authed.PATCH("/users/current", h.updateCurrentUser)

			h.registerContactRoutes(authed)
		}
	}

	return router
}

func (h *Handler) registerContactRoutes(api *gin.RouterGroup) {
	contacts := api.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.searchContacts)
		contacts.GET("/:contactId", h.getContact)
		contacts.PUT("/:contactId", h.updateContact)
		contacts.DELETE("/:contactId", h.deleteContact)

		addresses := contacts.Group("/:contactId/addresses")
		{
			addresses.POST("", h.createAddress)
			addresses.GET("", h.listAddresses)
			addresses.GET("/:addressId", h.getAddress)
			addresses.PUT("/:addressId", h.updateAddress)
			addresses.DELETE("/:addressId", h.deleteAddress)
		}
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
