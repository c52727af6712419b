package dto

import "github.com/MayuriC-eng/CampusConnect/internal/models"

type RegisterRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Year   string `json:"year"`
	Branch string `json:"branch"`
}

func (r RegisterRequest) ToModel() models.RegistrationData {
	return models.RegistrationData{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Year:   r.Year,
		Branch: r.Branch,
	}
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}
