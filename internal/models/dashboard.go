package models

// SummaryRow - строка сводки готовности по одной категории ресурса
type SummaryRow struct {
	Name               string  `json:"name"`
	Current            int64   `json:"current"`
	Total              int64   `json:"total"`
	Unit               string  `json:"unit"`
	Status             string  `json:"status"` // adequate, low, critical
	Percentage         float64 `json:"percentage"`
	NeedsReplenishment *bool   `json:"needsReplenishment,omitempty"`
}

// DashboardSummary - агрегированная сводка для дашборда
type DashboardSummary struct {
	Supplies  []SummaryRow `json:"supplies"`
	Vehicles  []SummaryRow `json:"vehicles"`
	Personnel []SummaryRow `json:"personnel"`
	Shelters  []SummaryRow `json:"shelters"`
}

// SupplyTotals - суммы запаса по наименованию, агрегированные по всем объектам
type SupplyTotals struct {
	ItemName string
	Current  int64
	Capacity int64
}

// GroupAvailability - количество доступных единиц в группе (тип/роль)
type GroupAvailability struct {
	Name      string
	Total     int64
	Available int64
}

// ShelterStats - статистика по убежищам
type ShelterStats struct {
	Total               int64
	Operational         int64
	OperationalCapacity int64
}
