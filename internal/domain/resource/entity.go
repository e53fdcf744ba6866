package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"billboard-booking/internal/domain/schedule"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrNegativeHourlyRate  = errors.New("hourly rate cannot be negative")
	ErrNegativeImpressions = errors.New("impressions per day cannot be negative")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
)

const (
	MaxResourceNameLength = 255
)

// Resource is a bookable billboard. The engine reads it and never mutates it.
type Resource struct {
	id                uuid.UUID
	name              string
	hourlyRate        int64
	impressionsPerDay int64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewResource(id uuid.UUID, name string, hourlyRate, impressionsPerDay int64) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if hourlyRate < 0 {
		return nil, ErrNegativeHourlyRate
	}
	if impressionsPerDay < 0 {
		return nil, ErrNegativeImpressions
	}

	return &Resource{
		id:                id,
		name:              strings.TrimSpace(name),
		hourlyRate:        hourlyRate,
		impressionsPerDay: impressionsPerDay,
	}, nil
}

func ReconstructResource(id uuid.UUID, name string, hourlyRate, impressionsPerDay int64, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:                id,
		name:              name,
		hourlyRate:        hourlyRate,
		impressionsPerDay: impressionsPerDay,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// ProjectImpressions spreads the daily impressions evenly over the operating window.
func (r *Resource) ProjectImpressions(hours int) int64 {
	return r.impressionsPerDay * int64(hours) / schedule.SlotsPerDay
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID            { return r.id }
func (r *Resource) Name() string             { return r.name }
func (r *Resource) HourlyRate() int64        { return r.hourlyRate }
func (r *Resource) ImpressionsPerDay() int64 { return r.impressionsPerDay }
func (r *Resource) CreatedAt() time.Time     { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time     { return r.updatedAt }
