package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/flood_response_system/internal/observability"
	"github.com/shenikar/flood_response_system/internal/service"
)

// MetricsMiddleware считает HTTP-запросы по маршруту и статусу
func MetricsMiddleware(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	allRoles := []string{service.RoleField, service.RoleCommand, service.RoleAdmin}
	commandStaff := []string{service.RoleCommand, service.RoleAdmin}

	r.POST("/login", h.login)
	r.POST("/logout", h.logout)

	api := r.Group("/api")
	{
		api.GET("/auth/status", h.authStatus)
		api.GET("/system/health", h.healthCheck)
		api.GET("/user/profile", h.requireRole(allRoles...), h.userProfile)

		api.GET("/facilities", h.requireRole(allRoles...), h.listFacilities)
		api.GET("/facilities/:id/resources", h.requireRole(commandStaff...), h.facilityResources)
		api.GET("/high-risk-zones", h.requireRole(commandStaff...), h.listZones)

		personnel := api.Group("/personnel")
		{
			personnel.GET("", h.requireRole(allRoles...), h.listPersonnel)
			personnel.POST("", h.requireRole(commandStaff...), h.createPersonnel)
			personnel.PUT("/:id", h.requireRole(commandStaff...), h.updatePersonnel)
			personnel.PATCH("/:id", h.requireRole(commandStaff...), h.updatePersonnel)
			personnel.DELETE("/:id", h.requireRole(commandStaff...), h.deletePersonnel)
		}

		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", h.requireRole(allRoles...), h.listVehicles)
			vehicles.POST("", h.requireRole(commandStaff...), h.createVehicle)
			vehicles.PUT("/:id", h.requireRole(commandStaff...), h.updateVehicle)
			vehicles.PATCH("/:id", h.requireRole(commandStaff...), h.updateVehicle)
			vehicles.DELETE("/:id", h.requireRole(commandStaff...), h.deleteVehicle)
		}

		supplies := api.Group("/supply_items")
		{
			supplies.GET("", h.requireRole(allRoles...), h.listSupplyItems)
			supplies.POST("", h.requireRole(commandStaff...), h.createSupplyItem)
			supplies.PUT("/:id", h.requireRole(commandStaff...), h.updateSupplyItem)
			supplies.PATCH("/:id", h.requireRole(commandStaff...), h.updateSupplyItem)
			supplies.DELETE("/:id", h.requireRole(commandStaff...), h.deleteSupplyItem)
		}

		// Полевые сотрудники могут менять статус мероприятий
		actions := api.Group("/response-actions")
		{
			actions.GET("", h.requireRole(allRoles...), h.listResponseActions)
			actions.POST("", h.requireRole(commandStaff...), h.createResponseAction)
			actions.PUT("/:id", h.requireRole(allRoles...), h.updateResponseAction)
			actions.PATCH("/:id", h.requireRole(allRoles...), h.updateResponseAction)
			actions.DELETE("/:id", h.requireRole(commandStaff...), h.deleteResponseAction)
		}

		api.GET("/dashboard/summary", h.requireRole(allRoles...), h.dashboardSummary)
		api.GET("/rainfall", h.requireRole(commandStaff...), h.getRainfall)
		api.GET("/alerts/stream", h.requireRole(allRoles...), h.streamAlerts)
	}
}
