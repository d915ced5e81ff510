package entities

type Client struct {
	ID            string   `json:"id"`
	ShortName     string   `json:"short_name"`
	FullName      string   `json:"full_name"`
	BIN           *string  `json:"bin,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	IsGov         bool     `json:"is_gov"`
	ActivityID    string   `json:"activity_id"`
	SourceID      string   `json:"source_id"`
	OwnerID       string   `json:"owner_id"`
	LegalAddress  string   `json:"legal_address"`
	ActualAddress string   `json:"actual_address"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
}

func (c *Client) GetID() string   { return c.ID }
func (c *Client) SetID(id string) { c.ID = id }
