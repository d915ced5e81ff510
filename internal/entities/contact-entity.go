package entities

type Contact struct {
	ID               string  `json:"id"`
	ClientID         string  `json:"client_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Position         string  `json:"position"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	Rating           *int    `json:"rating,omitempty"`
	TelegramID       *string `json:"telegram_id,omitempty"`
	RustdeskID       *string `json:"rustdesk_id,omitempty"`
	RustdeskPassword *string `json:"rustdesk_password,omitempty"`
	AnydeskID        *string `json:"anydesk_id,omitempty"`
	AnydeskPassword  *string `json:"anydesk_password,omitempty"`
}

func (c *Contact) GetID() string   { return c.ID }
func (c *Contact) SetID(id string) { c.ID = id }
