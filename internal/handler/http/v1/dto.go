package v1

import (
	"github.com/shenikar/flood_response_system/internal/models"
)

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO c данными пользователя сессии
// @Description DTO с данными пользователя сессии
type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse DTO для ответа на вход
// @Description DTO для ответа на вход
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// CreatePersonnelRequest DTO для создания сотрудника
// @Description DTO для создания сотрудника
type CreatePersonnelRequest struct {
	Name              string `json:"name" validate:"required"`
	Role              string `json:"role" validate:"required"`
	Skills            string `json:"skills,omitempty"`
	Status            string `json:"status,omitempty"`
	CurrentAssignment string `json:"current_assignment,omitempty"`
	ContactNumber     string `json:"contact_number,omitempty"`
	BaseFacilityID    *int64 `json:"base_facility_id,omitempty"`
}

// CreateVehicleRequest DTO для создания транспортного средства
// @Description DTO для создания транспортного средства
type CreateVehicleRequest struct {
	VehicleType    string   `json:"vehicle_type" validate:"required"`
	LicensePlate   string   `json:"license_plate" validate:"required"`
	Lat            *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng            *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
	Status         string   `json:"status,omitempty"`
	CapacityLoad   string   `json:"capacity_load,omitempty"`
	AssignedTo     string   `json:"assigned_to,omitempty"`
	HomeFacilityID *int64   `json:"home_facility_id,omitempty"`
}

// CreateSupplyItemRequest DTO для создания запаса
// @Description DTO для создания запаса
type CreateSupplyItemRequest struct {
	ItemName         string `json:"item_name" validate:"required"`
	QuantityCurrent  *int64 `json:"quantity_current" validate:"required"`
	QuantityCapacity int64  `json:"quantity_capacity,omitempty"`
	Unit             string `json:"unit" validate:"required"`
	Status           string `json:"status,omitempty"`
	FacilityID       *int64 `json:"facility_id" validate:"required"`
}

// CreateResponseActionRequest DTO для создания мероприятия
// @Description DTO для создания мероприятия
type CreateResponseActionRequest struct {
	Title      string `json:"title" validate:"required"`
	Team       string `json:"team,omitempty"`
	Location   string `json:"location,omitempty"`
	Timeframe  string `json:"timeframe,omitempty"`
	Importance string `json:"importance,omitempty"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=active pending completed"`
}

// UpdateResponseActionRequest DTO для частичного обновления мероприятия
// @Description DTO для частичного обновления мероприятия
type UpdateResponseActionRequest struct {
	Title      *string `json:"title"`
	Team       *string `json:"team"`
	Location   *string `json:"location"`
	Timeframe  *string `json:"timeframe"`
	Importance *string `json:"importance"`
	Status     *string `json:"status" validate:"omitempty,oneof=active pending completed"`
}

// FacilitiesResponse DTO для списка объектов
// @Description DTO для списка объектов
type FacilitiesResponse struct {
	Facilities []*models.EmergencyFacility `json:"facilities"`
	Total      int                         `json:"total"`
}

// ZonesResponse DTO для списка зон риска
// @Description DTO для списка зон риска
type ZonesResponse struct {
	Zones []*models.FloodRiskZone `json:"zones"`
}

// DeleteResponse DTO для подтверждения удаления
// @Description DTO для подтверждения удаления
type DeleteResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}
