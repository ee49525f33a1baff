package models

import (
	"time"
)

// ResponseAction представляет мероприятие реагирования
type ResponseAction struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Team       string    `json:"team,omitempty"`
	Location   string    `json:"location,omitempty"`
	Timeframe  string    `json:"timeframe,omitempty"`
	Importance string    `json:"importance,omitempty"`
	Status     string    `json:"status"` // active, pending, completed
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ResponseActionPatch - частичное обновление мероприятия
type ResponseActionPatch struct {
	Title      *string `json:"title"`
	Team       *string `json:"team"`
	Location   *string `json:"location"`
	Timeframe  *string `json:"timeframe"`
	Importance *string `json:"importance"`
	Status     *string `json:"status"`
}
