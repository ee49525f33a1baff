package alert

import (
	"time"
)

// AlertEvent - событие оповещения о наводнении, рассылаемое подписчикам
type AlertEvent struct {
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Severity       string    `json:"severity"` // high, extreme
	Timestamp      time.Time `json:"timestamp"`
	Recommendation string    `json:"recommendation"`
}

// Forecast - классификация риска по текущим осадкам
type Forecast struct {
	Risk   string `json:"risk"` // low, moderate, high, extreme
	Action string `json:"action"`
}

// RainfallData - кэшированные данные об осадках для API
type RainfallData struct {
	RainLastHour float64    `json:"rain_last_hour"`
	Forecast     Forecast   `json:"forecast"`
	LastUpdated  *time.Time `json:"last_updated"`
}

// ClassifyRainfall относит осадки к категории риска.
// Границы строгие: ровно 20/10/5 мм попадают в нижнюю категорию.
func ClassifyRainfall(rainfall float64) Forecast {
	switch {
	case rainfall > 20:
		return Forecast{
			Risk:   "extreme",
			Action: "Evacuate immediately from flood-prone areas",
		}
	case rainfall > 10:
		return Forecast{
			Risk:   "high",
			Action: "Prepare evacuation plans and monitor conditions",
		}
	case rainfall > 5:
		return Forecast{
			Risk:   "moderate",
			Action: "Monitor weather conditions closely",
		}
	default:
		return Forecast{
			Risk:   "low",
			Action: "Normal monitoring",
		}
	}
}
