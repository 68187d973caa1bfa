// File: internal/api/conference_request.go
package api

import (
	"math"
	"time"

	"conference-admin/internal/model"
)

// start_date/end_date 限定在 0001-01-01 到 9999-12-31 之間
// swagger:model api.CreateConferenceRequest
type CreateConferenceRequest struct {
	Title             *string  `json:"title" validate:"required" example:"Conferinta"`
	Location          *string  `json:"location" validate:"required" example:"Bucuresti"`
	Country           *string  `json:"country" validate:"required" example:"Romania"`
	StartDate         *float64 `json:"start_date" validate:"required,gte=-62135596800,lte=253402300799" example:"1584437524"`
	EndDate           *float64 `json:"end_date" validate:"required,gte=-62135596800,lte=253402300799" example:"1584437525"`
	PathToLogo        *string  `json:"path_to_logo,omitempty" example:""`
	PathToDescription *string  `json:"path_to_description,omitempty" example:""`
}

// Conference must only be called after the request passed validation.
func (r CreateConferenceRequest) Conference() *model.Conference {
	return &model.Conference{
		Title:             *r.Title,
		Location:          *r.Location,
		Country:           *r.Country,
		StartDate:         FromUnix(*r.StartDate),
		EndDate:           FromUnix(*r.EndDate),
		PathToLogo:        deref(r.PathToLogo),
		PathToDescription: deref(r.PathToDescription),
	}
}

// UpdateConferenceRequest lists every field an update may carry; it is
// decoded strictly so anything else is rejected.
// swagger:model api.UpdateConferenceRequest
type UpdateConferenceRequest struct {
	Title             *string  `json:"title" validate:"required" example:"Conferinta"`
	Location          *string  `json:"location" validate:"required" example:"Bucuresti"`
	Country           *string  `json:"country" validate:"required" example:"Romania"`
	StartDate         *float64 `json:"start_date" validate:"required,gte=-62135596800,lte=253402300799" example:"1584437524"`
	EndDate           *float64 `json:"end_date" validate:"required,gte=-62135596800,lte=253402300799" example:"1584437525"`
	PathToLogo        *string  `json:"path_to_logo" validate:"required" example:"link_catre_fisier.png"`
	PathToDescription *string  `json:"path_to_description" validate:"required" example:"link_catre_descriere.pdf"`
}

func (r UpdateConferenceRequest) Conference() *model.Conference {
	return &model.Conference{
		Title:             *r.Title,
		Location:          *r.Location,
		Country:           *r.Country,
		StartDate:         FromUnix(*r.StartDate),
		EndDate:           FromUnix(*r.EndDate),
		PathToLogo:        *r.PathToLogo,
		PathToDescription: *r.PathToDescription,
	}
}

// swagger:model api.DeleteConferenceRequest
type DeleteConferenceRequest struct {
	Title *string `json:"title" validate:"required" example:"Conferinta"`
}

// FromUnix converts a unix timestamp in seconds, fractions allowed, to UTC.
func FromUnix(ts float64) time.Time {
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
