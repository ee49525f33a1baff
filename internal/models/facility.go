package models

import (
	"time"
)

// Point - координаты точки WGS84
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EmergencyFacility представляет объект экстренного реагирования
// (hospital, shelter, supply_center, ngo_center, command_center)
type EmergencyFacility struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Location        *Point    `json:"location"`
	Status          string    `json:"status"`
	ContactInfo     string    `json:"contact_info,omitempty"`
	CapacityOverall int64     `json:"capacity_overall"`
	Description     string    `json:"description,omitempty"`
	LastUpdated     time.Time `json:"last_updated"`
}
