package customer

import "strings"

// CustomerInput é o payload de criação e de atualização. Pontos de
// fidelidade não fazem parte dele.
type CustomerInput struct {
	FirstName   string `validate:"required,max=100"`
	LastName    string `validate:"required,max=100"`
	Email       string `validate:"required,max=255,email"`
	PhoneNumber string `validate:"required,max=20"`
}

func (in CustomerInput) normalized() CustomerInput {
	return CustomerInput{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
	}
}
