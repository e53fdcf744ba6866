package campaign

import (
	"errors"

	"github.com/google/uuid"
)

var ErrUnknownCampaignType = errors.New("campaign type must be single-day or multi-day")

type CampaignType string

const (
	SingleDay CampaignType = "single-day"
	MultiDay  CampaignType = "multi-day"
)

func ParseCampaignType(s string) (CampaignType, error) {
	switch t := CampaignType(s); t {
	case SingleDay, MultiDay:
		return t, nil
	default:
		return "", ErrUnknownCampaignType
	}
}

func (t CampaignType) String() string {
	return string(t)
}

// ResourceRef is the part of a billboard a campaign session needs to price and
// project a selection.
type ResourceRef struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	HourlyRate        int64     `json:"hourlyRate"`
	ImpressionsPerDay int64     `json:"impressionsPerDay"`
}

// Failure records the outcome of the last unsuccessful submission.
type Failure struct {
	Message    string      `json:"message"`
	Kind       string      `json:"kind"`
	CreatedIDs []uuid.UUID `json:"createdIds,omitempty"`
}
