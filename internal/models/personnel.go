package models

import (
	"time"
)

// Personnel представляет сотрудника службы реагирования
type Personnel struct {
	ID                int64     `json:"id"`
	BaseFacilityID    *int64    `json:"base_facility_id"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	Skills            string    `json:"skills,omitempty"`
	Status            string    `json:"status"`
	CurrentAssignment string    `json:"current_assignment,omitempty"`
	ContactNumber     string    `json:"contact_number,omitempty"`
	LastUpdated       time.Time `json:"last_updated"`
}

// PersonnelPatch - частичное обновление: заполняются только переданные поля
type PersonnelPatch struct {
	Name              *string `json:"name"`
	Role              *string `json:"role"`
	Skills            *string `json:"skills"`
	Status            *string `json:"status"`
	CurrentAssignment *string `json:"current_assignment"`
	ContactNumber     *string `json:"contact_number"`
	BaseFacilityID    *int64  `json:"base_facility_id"`
}
