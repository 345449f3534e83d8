package additionalinfo

import "time"

type CreateAdditionalInformationInput struct {
	FatherName     *string
	MotherName     *string
	NationalID     *string
	PlaceOfBirth   *string
	MaritalStatus  *string
	ETin           *string
	Program        *string
	Unit           *string
	PrlDate        *time.Time
	RegularityDate *time.Time
}

type AdditionalInformationResponse struct {
	ID             string  `json:"id"`
	FatherName     *string `json:"fatherName,omitempty"`
	MotherName     *string `json:"motherName,omitempty"`
	NationalID     *string `json:"nationalId,omitempty"`
	PlaceOfBirth   *string `json:"placeOfBirth,omitempty"`
	MaritalStatus  *string `json:"maritalStatus,omitempty"`
	ETin           *string `json:"eTin,omitempty"`
	Program        *string `json:"program,omitempty"`
	Unit           *string `json:"unit,omitempty"`
	PrlDate        string  `json:"prlDate,omitempty"`
	RegularityDate string  `json:"regularityDate,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}
