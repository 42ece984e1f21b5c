package querylog

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogLocationQuery(latitude, longitude float64, displayName, outcome string) error
	GetRecentLocationQuery(latitude, longitude float64) (*LocationQuery, error)
}

type LocationQuerySQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LocationQuerySQLRepository{db: db}
}

func (r *LocationQuerySQLRepository) LogLocationQuery(latitude, longitude float64, displayName, outcome string) error {
	query := LocationQuery{
		Latitude:    latitude,
		Longitude:   longitude,
		DisplayName: displayName,
		Outcome:     outcome,
		CreatedAt:   time.Now(),
	}

	return r.db.Create(&query).Error
}

func (r *LocationQuerySQLRepository) GetRecentLocationQuery(latitude, longitude float64) (*LocationQuery, error) {
	var query LocationQuery
	err := r.db.Where("latitude = ? AND longitude = ?", latitude, longitude).Order("created_at DESC").First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}
