package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/flood_response_system/internal/alert"
	"github.com/shenikar/flood_response_system/internal/config"
	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/shenikar/flood_response_system/internal/service"
	"github.com/shenikar/flood_response_system/internal/session"
	"github.com/sirupsen/logrus"
)

// Services - все сервисы, которые обслуживает HTTP-слой
type Services struct {
	Auth      service.AuthService
	Zones     service.ZoneService
	Facility  service.FacilityService
	Personnel service.PersonnelService
	Vehicles  service.VehicleService
	Supplies  service.SupplyService
	Actions   service.ResponseActionService
	Dashboard service.DashboardService
}

type Handler struct {
	auth      service.AuthService
	zones     service.ZoneService
	facility  service.FacilityService
	personnel service.PersonnelService
	vehicles  service.VehicleService
	supplies  service.SupplyService
	actions   service.ResponseActionService
	dashboard service.DashboardService

	sessions session.Store
	rainfall alert.RainfallSource
	alerts   alert.Subscriber

	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

// NewHandler собирает HTTP-слой. rainfall и alerts могут быть nil,
// если сервис мониторинга не запущен.
func NewHandler(services Services, sessions session.Store, rainfall alert.RainfallSource, alerts alert.Subscriber, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		auth:      services.Auth,
		zones:     services.Zones,
		facility:  services.Facility,
		personnel: services.Personnel,
		vehicles:  services.Vehicles,
		supplies:  services.Supplies,
		actions:   services.Actions,
		dashboard: services.Dashboard,
		sessions:  sessions,
		rainfall:  rainfall,
		alerts:    alerts,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return 0, false
	}
	return id, true
}

// @Summary List emergency facilities
// @Tags Facilities
// @Produce json
// @Security SessionAuth
// @Param type query string false "Filter by facility type (case-insensitive)"
// @Success 200 {object} FacilitiesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/facilities [get]
func (h *Handler) listFacilities(c *gin.Context) {
	log := h.logger.WithField("method", "listFacilities")

	facilities, err := h.facility.ListFacilities(c.Request.Context(), c.Query("type"))
	if err != nil {
		log.WithError(err).Error("Failed to list facilities from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, FacilitiesResponse{Facilities: facilities, Total: len(facilities)})
}

// @Summary Get resources of a facility
// @Description Personnel, vehicles and supplies attached to one facility.
// @Tags Facilities
// @Produce json
// @Security SessionAuth
// @Param id path int true "Facility ID"
// @Success 200 {object} service.FacilityResources
// @Failure 400 {object} map[string]string "Invalid facility ID"
// @Failure 404 {object} map[string]string "Facility not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/facilities/{id}/resources [get]
func (h *Handler) facilityResources(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "facilityResources").WithField("id", id)

	resources, err := h.facility.FacilityResources(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
			return
		}
		log.WithError(err).Error("Failed to get facility resources from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resources)
}

// @Summary List flood risk zones
// @Tags Zones
// @Produce json
// @Security SessionAuth
// @Success 200 {object} ZonesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/high-risk-zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")

	zones, err := h.zones.ListZones(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ZonesResponse{Zones: zones})
}

// @Summary List personnel
// @Tags Personnel
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.Personnel
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/personnel [get]
func (h *Handler) listPersonnel(c *gin.Context) {
	log := h.logger.WithField("method", "listPersonnel")

	personnel, err := h.personnel.ListPersonnel(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list personnel from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, personnel)
}

// @Summary Create personnel
// @Tags Personnel
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param personnel body CreatePersonnelRequest true "Personnel creation request"
// @Success 201 {object} models.Personnel
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/personnel [post]
func (h *Handler) createPersonnel(c *gin.Context) {
	var input CreatePersonnelRequest
	log := h.logger.WithField("method", "createPersonnel")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := toPersonnelModel(&input)
	if err := h.personnel.CreatePersonnel(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create personnel in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, model)
}

// @Summary Update personnel
// @Description Partial update: only supplied fields are overwritten.
// @Tags Personnel
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Personnel ID"
// @Param personnel body models.PersonnelPatch true "Fields to update"
// @Success 200 {object} models.Personnel
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Personnel not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/personnel/{id} [put]
func (h *Handler) updatePersonnel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updatePersonnel").WithField("id", id)

	var patch models.PersonnelPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.personnel.UpdatePersonnel(c.Request.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Personnel not found"})
			return
		}
		log.WithError(err).Error("Failed to update personnel in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete personnel
// @Tags Personnel
// @Produce json
// @Security SessionAuth
// @Param id path int true "Personnel ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} map[string]string "Personnel not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/personnel/{id} [delete]
func (h *Handler) deletePersonnel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deletePersonnel").WithField("id", id)

	if err := h.personnel.DeletePersonnel(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Personnel not found"})
			return
		}
		log.WithError(err).Error("Failed to delete personnel in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Status: "Personnel deleted successfully", ID: id})
}

// @Summary List vehicles
// @Tags Vehicles
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.Vehicle
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/vehicles [get]
func (h *Handler) listVehicles(c *gin.Context) {
	log := h.logger.WithField("method", "listVehicles")

	vehicles, err := h.vehicles.ListVehicles(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list vehicles from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// @Summary Create vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param vehicle body CreateVehicleRequest true "Vehicle creation request"
// @Success 201 {object} models.Vehicle
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/vehicles [post]
func (h *Handler) createVehicle(c *gin.Context) {
	var input CreateVehicleRequest
	log := h.logger.WithField("method", "createVehicle")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := toVehicleModel(&input)
	if err := h.vehicles.CreateVehicle(c.Request.Context(), model); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "License plate already exists"})
			return
		}
		log.WithError(err).Error("Failed to create vehicle in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, model)
}

// @Summary Update vehicle
// @Description Partial update. Lat and lng supplied together move the vehicle location.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Vehicle ID"
// @Param vehicle body models.VehiclePatch true "Fields to update"
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/vehicles/{id} [put]
func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateVehicle").WithField("id", id)

	var patch models.VehiclePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.vehicles.UpdateVehicle(c.Request.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		if errors.Is(err, models.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "License plate already exists"})
			return
		}
		log.WithError(err).Error("Failed to update vehicle in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete vehicle
// @Tags Vehicles
// @Produce json
// @Security SessionAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/vehicles/{id} [delete]
func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteVehicle").WithField("id", id)

	if err := h.vehicles.DeleteVehicle(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		log.WithError(err).Error("Failed to delete vehicle in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Status: "Vehicle deleted successfully", ID: id})
}

// @Summary List supply items
// @Tags Supplies
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.SupplyItem
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/supply_items [get]
func (h *Handler) listSupplyItems(c *gin.Context) {
	log := h.logger.WithField("method", "listSupplyItems")

	items, err := h.supplies.ListSupplyItems(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list supply items from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Create supply item
// @Tags Supplies
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param item body CreateSupplyItemRequest true "Supply item creation request"
// @Success 201 {object} models.SupplyItem
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/supply_items [post]
func (h *Handler) createSupplyItem(c *gin.Context) {
	var input CreateSupplyItemRequest
	log := h.logger.WithField("method", "createSupplyItem")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := toSupplyItemModel(&input)
	if err := h.supplies.CreateSupplyItem(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create supply item in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, model)
}

// @Summary Update supply item
// @Tags Supplies
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Supply item ID"
// @Param item body models.SupplyItemPatch true "Fields to update"
// @Success 200 {object} models.SupplyItem
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Supply item not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/supply_items/{id} [put]
func (h *Handler) updateSupplyItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateSupplyItem").WithField("id", id)

	var patch models.SupplyItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.supplies.UpdateSupplyItem(c.Request.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supply item not found"})
			return
		}
		log.WithError(err).Error("Failed to update supply item in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete supply item
// @Tags Supplies
// @Produce json
// @Security SessionAuth
// @Param id path int true "Supply item ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} map[string]string "Supply item not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/supply_items/{id} [delete]
func (h *Handler) deleteSupplyItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteSupplyItem").WithField("id", id)

	if err := h.supplies.DeleteSupplyItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supply item not found"})
			return
		}
		log.WithError(err).Error("Failed to delete supply item in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Status: "Supply item deleted successfully", ID: id})
}

// @Summary List response actions
// @Tags ResponseActions
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.ResponseAction
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/response-actions [get]
func (h *Handler) listResponseActions(c *gin.Context) {
	log := h.logger.WithField("method", "listResponseActions")

	actions, err := h.actions.ListResponseActions(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list response actions from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, actions)
}

// @Summary Create response action
// @Tags ResponseActions
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param action body CreateResponseActionRequest true "Response action creation request"
// @Success 201 {object} models.ResponseAction
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/response-actions [post]
func (h *Handler) createResponseAction(c *gin.Context) {
	var input CreateResponseActionRequest
	log := h.logger.WithField("method", "createResponseAction")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := toResponseActionModel(&input)
	if err := h.actions.CreateResponseAction(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create response action in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, model)
}

// @Summary Update response action
// @Tags ResponseActions
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Response action ID"
// @Param action body UpdateResponseActionRequest true "Fields to update"
// @Success 200 {object} models.ResponseAction
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Response action not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/response-actions/{id} [put]
func (h *Handler) updateResponseAction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateResponseAction").WithField("id", id)

	var input UpdateResponseActionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.actions.UpdateResponseAction(c.Request.Context(), id, toResponseActionPatch(&input))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Response action not found"})
			return
		}
		log.WithError(err).Error("Failed to update response action in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete response action
// @Tags ResponseActions
// @Produce json
// @Security SessionAuth
// @Param id path int true "Response action ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} map[string]string "Response action not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/response-actions/{id} [delete]
func (h *Handler) deleteResponseAction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteResponseAction").WithField("id", id)

	if err := h.actions.DeleteResponseAction(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Response action not found"})
			return
		}
		log.WithError(err).Error("Failed to delete response action in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Status: "Response action deleted successfully", ID: id})
}

// @Summary Resource readiness summary
// @Description Aggregated readiness rows for supplies, vehicles, personnel and shelters.
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Success 200 {object} models.DashboardSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/dashboard/summary [get]
func (h *Handler) dashboardSummary(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardSummary")

	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build dashboard summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Current rainfall data
// @Description Cached rainfall observation with forecast classification.
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Success 200 {object} alert.RainfallData
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Alert service not initialized"
// @Router /api/rainfall [get]
func (h *Handler) getRainfall(c *gin.Context) {
	log := h.logger.WithField("method", "getRainfall")

	if h.rainfall == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Alert service not initialized"})
		return
	}

	data, err := h.rainfall.GetRainfallData(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get rainfall data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
