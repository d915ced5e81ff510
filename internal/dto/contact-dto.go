package dto

type CreateContactDTO struct {
	ClientID         string  `json:"client_id" validate:"required"`
	FirstName        string  `json:"first_name" validate:"required,min=1,max=255"`
	LastName         string  `json:"last_name" validate:"required,min=1,max=255"`
	Position         string  `json:"position"`
	Phone            string  `json:"phone" validate:"omitempty,phone_number"`
	Email            string  `json:"email" validate:"omitempty,email"`
	Rating           *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	TelegramID       *string `json:"telegram_id,omitempty"`
	RustdeskID       *string `json:"rustdesk_id,omitempty"`
	RustdeskPassword *string `json:"rustdesk_password,omitempty"`
	AnydeskID        *string `json:"anydesk_id,omitempty"`
	AnydeskPassword  *string `json:"anydesk_password,omitempty"`
}

type UpdateContactDTO struct {
	FirstName        *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=255"`
	LastName         *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=255"`
	Position         *string `json:"position,omitempty"`
	Phone            *string `json:"phone,omitempty" validate:"omitempty,phone_number"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	Rating           *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	TelegramID       *string `json:"telegram_id,omitempty"`
	RustdeskID       *string `json:"rustdesk_id,omitempty"`
	RustdeskPassword *string `json:"rustdesk_password,omitempty"`
	AnydeskID        *string `json:"anydesk_id,omitempty"`
	AnydeskPassword  *string `json:"anydesk_password,omitempty"`
}
