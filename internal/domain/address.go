package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address belongs to exactly one user. At most one address per user has
// IsDefault set; the repository clears the others in the same transaction.
type Address struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Label       string
	FullAddress string
	Lat         float64
	Lng         float64
	IsDefault   bool

	CreatedAt time.Time
}

func (a Address) Validate() error {
	if a.Label == "" || len(a.Label) > 50 {
		return InvalidRequest("label must be 1-50 characters")
	}
	if len(a.FullAddress) < 5 {
		return InvalidRequest("Address is too short")
	}
	if a.Lat < -90 || a.Lat > 90 {
		return InvalidRequest("lat must be between -90 and 90")
	}
	if a.Lng < -180 || a.Lng > 180 {
		return InvalidRequest("lng must be between -180 and 180")
	}
	return nil
}

type AddressPatch struct {
	Label       *string
	FullAddress *string
	Lat         *float64
	Lng         *float64
	IsDefault   *bool
}

func (p AddressPatch) Apply(a Address) Address {
	if p.Label != nil {
		a.Label = *p.Label
	}
	if p.FullAddress != nil {
		a.FullAddress = *p.FullAddress
	}
	if p.Lat != nil {
		a.Lat = *p.Lat
	}
	if p.Lng != nil {
		a.Lng = *p.Lng
	}
	if p.IsDefault != nil {
		a.IsDefault = *p.IsDefault
	}
	return a
}
