package models

import (
	"encoding/json"
	"time"
)

// FloodRiskZone представляет зону риска наводнения с полигональной границей
type FloodRiskZone struct {
	ID          int64           `json:"id"`
	ZoneName    string          `json:"zone_name"`
	RiskLevel   string          `json:"risk_level"` // low, moderate, high, extreme
	WaterLevel  float64         `json:"water_level"`
	Description string          `json:"description,omitempty"`
	Geometry    json.RawMessage `json:"geometry"` // GeoJSON полигон
	LastUpdated time.Time       `json:"last_updated"`
}
