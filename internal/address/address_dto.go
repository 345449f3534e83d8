package address

// CreateAddressInput is the typed result of a valid create payload. Server
// assigns the identifier and creation timestamp.
type CreateAddressInput struct {
	Division       string
	District       string
	SubDistrict    string
	PostOffice     string
	PostCode       string
	Block          string
	HouseOrVillage string
	RoadNo         *string
}

type AddressResponse struct {
	ID             string  `json:"id"`
	Division       string  `json:"division"`
	District       string  `json:"district"`
	SubDistrict    string  `json:"subDistrict"`
	PostOffice     string  `json:"postOffice"`
	PostCode       string  `json:"postCode"`
	Block          string  `json:"block"`
	HouseOrVillage string  `json:"houseOrVillage"`
	RoadNo         *string `json:"roadNo,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}
