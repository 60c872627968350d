package customer

import "time"

type Customer struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	CompanyName    string    `json:"company_name"`
	CompanyAddress string    `json:"company_address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RegisterInput struct {
	FullName       string
	CompanyName    string
	CompanyAddress string
	Phone          string
	Email          string
	Password       string
}

type UpdateParams struct {
	FullName       *string
	CompanyName    *string
	CompanyAddress *string
	Phone          *string
}
