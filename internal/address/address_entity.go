package address

import (
	"time"

	"github.com/google/uuid"
)

// Kind selects which of the two address tables a record belongs to. Present
// and permanent addresses share one shape.
type Kind string

const (
	Present   Kind = "present"
	Permanent Kind = "permanent"
)

func (k Kind) Table() string {
	if k == Permanent {
		return "permanent_addresses"
	}
	return "present_addresses"
}

type Address struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Division       string
	District       string
	SubDistrict    string
	PostOffice     string
	PostCode       string
	Block          string
	HouseOrVillage string
	RoadNo         *string
	CreatedAt      *time.Time
}
