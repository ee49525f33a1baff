package models

import (
	"time"
)

// Vehicle представляет транспортное средство службы реагирования
type Vehicle struct {
	ID              int64     `json:"id"`
	HomeFacilityID  *int64    `json:"home_facility_id"`
	VehicleType     string    `json:"vehicle_type"`
	LicensePlate    string    `json:"license_plate"`
	CurrentLocation *Point    `json:"current_location"`
	Status          string    `json:"status"`
	CapacityLoad    string    `json:"capacity_load,omitempty"`
	AssignedTo      string    `json:"assigned_to,omitempty"`
	LastUpdated     time.Time `json:"last_updated"`
}

// VehiclePatch - частичное обновление транспортного средства.
// Lat/Lng переданные парой преобразуются в точку геометрии.
type VehiclePatch struct {
	VehicleType    *string  `json:"vehicle_type"`
	LicensePlate   *string  `json:"license_plate"`
	Status         *string  `json:"status"`
	CapacityLoad   *string  `json:"capacity_load"`
	AssignedTo     *string  `json:"assigned_to"`
	HomeFacilityID *int64   `json:"home_facility_id"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
}
