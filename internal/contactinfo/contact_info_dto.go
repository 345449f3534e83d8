package contactinfo

import "time"

type CreateContactInformationInput struct {
	FullName    *string
	DateOfBirth *time.Time
	Gender      *string
	Occupation  *string
	NationalID  *string
	Mobile      *string
	Email       *string
}

type ContactInformationResponse struct {
	ID          string  `json:"id"`
	FullName    *string `json:"fullName,omitempty"`
	DateOfBirth string  `json:"dateOfBirth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Occupation  *string `json:"occupation,omitempty"`
	NationalID  *string `json:"nationalId,omitempty"`
	Mobile      *string `json:"mobile,omitempty"`
	Email       *string `json:"email,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}
