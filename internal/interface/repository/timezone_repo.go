package repository

import (
	"context"
	"errors"
	"time"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormTimezoneRepository implements the TimezoneRepository interface
type GormTimezoneRepository struct {
	db *gorm.DB
}

// NewGormTimezoneRepository creates a new GORM timezone repository
func NewGormTimezoneRepository(db *gorm.DB) repository.TimezoneRepository {
	return &GormTimezoneRepository{
		db: db,
	}
}

// Timezones GORM model for database mapping
type Timezones struct {
	ID          uint           `gorm:"primaryKey"`
	AirportCode string         `gorm:"column:airport_code;unique"`
	AirportName string         `gorm:"column:airport_name"`
	CityCode    string         `gorm:"column:city_code"`
	CityName    string         `gorm:"column:city_name"`
	GmtTz       string         `gorm:"column:gmt_tz"`
	TzName      string         `gorm:"column:tz_name"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Timezones) TableName() string {
	return "m_timezones"
}

// GetByAirportCode finds timezone info for an airport. Returns (nil, nil)
// when the airport is not in the reference table.
func (r *GormTimezoneRepository) GetByAirportCode(ctx context.Context, code string) (*entity.Timezone, error) {
	var tz Timezones
	result := r.db.WithContext(ctx).Unscoped().Where("airport_code = ?", code).First(&tz)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &entity.Timezone{
		ID:          tz.ID,
		AirportCode: tz.AirportCode,
		AirportName: tz.AirportName,
		CityCode:    tz.CityCode,
		CityName:    tz.CityName,
		GmtTz:       tz.GmtTz,
		TzName:      tz.TzName,
		CreatedAt:   tz.CreatedAt,
		UpdatedAt:   tz.UpdatedAt,
		DeletedAt:   tz.DeletedAt,
	}, nil
}
