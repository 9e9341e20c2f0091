package handler

import "github.com/daybook-labs/auth-service/internal/domain"

// SessionDTO is the JSON body returned by signup and login. It never
// carries the stored credential.
type SessionDTO struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func toSessionDTO(a domain.Account, token string) SessionDTO {
	return SessionDTO{
		Token:     token,
		UserID:    a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

// ProfileDTO is the JSON body returned by a profile update.
type ProfileDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func toProfileDTO(a domain.Account) ProfileDTO {
	return ProfileDTO{FirstName: a.FirstName, LastName: a.LastName}
}
