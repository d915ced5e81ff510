package dto

import "crm-system/internal/entities"

type CreateContractDTO struct {
	ClientID          string  `json:"client_id" validate:"required"`
	OrganizationID    string  `json:"organization_id" validate:"required"`
	ContractNumber    string  `json:"contract_number" validate:"required"`
	Title             string  `json:"title" validate:"required"`
	StartDate         string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate           string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Comment           *string `json:"comment,omitempty"`
	IsSigned          bool    `json:"is_signed"`
	ItsActive         bool    `json:"its_active"`
	ItsExpirationDate *string `json:"its_expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ItsLogin          *string `json:"its_login,omitempty"`
	ItsPassword       *string `json:"its_password,omitempty"`
	MinutesIncluded   int     `json:"minutes_included" validate:"gte=0"`
}

type UpdateContractDTO struct {
	OrganizationID    *string `json:"organization_id,omitempty"`
	ContractNumber    *string `json:"contract_number,omitempty"`
	Title             *string `json:"title,omitempty"`
	StartDate         *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate           *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Comment           *string `json:"comment,omitempty"`
	IsSigned          *bool   `json:"is_signed,omitempty"`
	ItsActive         *bool   `json:"its_active,omitempty"`
	ItsExpirationDate *string `json:"its_expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ItsLogin          *string `json:"its_login,omitempty"`
	ItsPassword       *string `json:"its_password,omitempty"`
	MinutesIncluded   *int    `json:"minutes_included,omitempty" validate:"omitempty,gte=0"`
}

// ContractResponseDTO дополняет договор производным признаком действия:
// is_active истинен, пока end_date не в прошлом.
type ContractResponseDTO struct {
	*entities.Contract
	IsActiveNow bool `json:"is_active_now"`
}
