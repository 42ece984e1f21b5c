package querylog

import (
	"time"
)

// Outcome values recorded per handled request.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
	OutcomeFailed   = "failed"
)

type LocationQuery struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Latitude    float64   `json:"latitude" gorm:"index:idx_coordinates"`
	Longitude   float64   `json:"longitude" gorm:"index:idx_coordinates"`
	DisplayName string    `json:"display_name" gorm:"column:display_name"`
	Outcome     string    `json:"outcome" gorm:"column:outcome"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_created_at"`
}

func (LocationQuery) TableName() string {
	return "location_queries"
}
