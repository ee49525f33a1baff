package v1

import (
	"github.com/shenikar/flood_response_system/internal/models"
)

func toPersonnelModel(req *CreatePersonnelRequest) *models.Personnel {
	return &models.Personnel{
		Name:              req.Name,
		Role:              req.Role,
		Skills:            req.Skills,
		Status:            req.Status,
		CurrentAssignment: req.CurrentAssignment,
		ContactNumber:     req.ContactNumber,
		BaseFacilityID:    req.BaseFacilityID,
	}
}

func toVehicleModel(req *CreateVehicleRequest) *models.Vehicle {
	v := &models.Vehicle{
		VehicleType:    req.VehicleType,
		LicensePlate:   req.LicensePlate,
		Status:         req.Status,
		CapacityLoad:   req.CapacityLoad,
		AssignedTo:     req.AssignedTo,
		HomeFacilityID: req.HomeFacilityID,
	}
	if req.Lat != nil && req.Lng != nil {
		v.CurrentLocation = &models.Point{Lat: *req.Lat, Lng: *req.Lng}
	}
	return v
}

func toSupplyItemModel(req *CreateSupplyItemRequest) *models.SupplyItem {
	return &models.SupplyItem{
		ItemName:         req.ItemName,
		QuantityCurrent:  *req.QuantityCurrent,
		QuantityCapacity: req.QuantityCapacity,
		Unit:             req.Unit,
		Status:           req.Status,
		FacilityID:       req.FacilityID,
	}
}

func toResponseActionModel(req *CreateResponseActionRequest) *models.ResponseAction {
	return &models.ResponseAction{
		Title:      req.Title,
		Team:       req.Team,
		Location:   req.Location,
		Timeframe:  req.Timeframe,
		Importance: req.Importance,
		Status:     req.Status,
	}
}

func toResponseActionPatch(req *UpdateResponseActionRequest) *models.ResponseActionPatch {
	return &models.ResponseActionPatch{
		Title:      req.Title,
		Team:       req.Team,
		Location:   req.Location,
		Timeframe:  req.Timeframe,
		Importance: req.Importance,
		Status:     req.Status,
	}
}
