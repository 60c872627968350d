package farmer

import "time"

type IDDocKind string

const (
	DocNationalID IDDocKind = "national-id"
	DocCompanyID  IDDocKind = "company-id"
	DocPassport   IDDocKind = "passport"
)

func (k IDDocKind) Valid() bool {
	switch k {
	case DocNationalID, DocCompanyID, DocPassport:
		return true
	}
	return false
}

type Farmer struct {
	ID              string     `json:"id"`
	FullName        string     `json:"full_name"`
	CompanyName     string     `json:"company_name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Country         string     `json:"country"`
	State           string     `json:"state"`
	LocalGovernment string     `json:"local_government"`
	City            string     `json:"city"`
	Street          string     `json:"street"`
	BusinessCertURL *string    `json:"business_cert_url,omitempty"`
	IDCardURL       *string    `json:"id_card_url,omitempty"`
	IDDocKind       IDDocKind  `json:"id_doc_kind"`
	UniqueCode      string     `json:"unique_code"`
	IsVerified      bool       `json:"is_verified"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type RegisterInput struct {
	FullName        string
	CompanyName     string
	Phone           string
	Email           string
	Password        string
	Country         string
	State           string
	LocalGovernment string
	City            string
	Street          string
	IDDocKind       IDDocKind
}

type UpdateParams struct {
	FullName        *string
	CompanyName     *string
	Phone           *string
	Country         *string
	State           *string
	LocalGovernment *string
	City            *string
	Street          *string
}
