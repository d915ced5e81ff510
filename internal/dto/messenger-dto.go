package dto

type SendMessageDTO struct {
	ClientID string `json:"client_id" validate:"required"`
	Channel  string `json:"channel" validate:"required,min=2,max=50"`
	Text     string `json:"text" validate:"required,min=1"`
	// Direction по умолчанию outgoing; incoming используется для
	// имитации входящих сообщений канала.
	Direction *string `json:"direction,omitempty" validate:"omitempty,oneof=incoming outgoing"`
}
