package models

import (
	"time"
)

// SupplyItem представляет запас ресурсов на объекте
type SupplyItem struct {
	ID               int64     `json:"id"`
	FacilityID       *int64    `json:"facility_id"`
	ItemName         string    `json:"item_name"`
	QuantityCurrent  int64     `json:"quantity_current"`
	QuantityCapacity int64     `json:"quantity_capacity"`
	Unit             string    `json:"unit"`
	Status           string    `json:"status"`
	LastUpdated      time.Time `json:"last_updated"`
}

// SupplyItemPatch - частичное обновление запаса
type SupplyItemPatch struct {
	ItemName         *string `json:"item_name"`
	QuantityCurrent  *int64  `json:"quantity_current"`
	QuantityCapacity *int64  `json:"quantity_capacity"`
	Unit             *string `json:"unit"`
	Status           *string `json:"status"`
	FacilityID       *int64  `json:"facility_id"`
}
