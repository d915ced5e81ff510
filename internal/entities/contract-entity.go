package entities

import "time"

// DateLayout — формат дат договора (start_date, end_date, its_expiration_date).
const DateLayout = "2006-01-02"

type Contract struct {
	ID                string  `json:"id"`
	ClientID          string  `json:"client_id"`
	OrganizationID    string  `json:"organization_id"`
	ContractNumber    string  `json:"contract_number"`
	Title             string  `json:"title"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	Comment           *string `json:"comment,omitempty"`
	IsSigned          bool    `json:"is_signed"`
	ItsActive         bool    `json:"its_active"`
	ItsExpirationDate *string `json:"its_expiration_date,omitempty"`
	ItsLogin          *string `json:"its_login,omitempty"`
	ItsPassword       *string `json:"its_password,omitempty"`
	MinutesIncluded   int     `json:"minutes_included"`
}

func (c *Contract) GetID() string   { return c.ID }
func (c *Contract) SetID(id string) { c.ID = id }

// IsActive — производный признак: договор действует, пока end_date не в прошлом.
// Нигде не хранится, вычисляется на каждый запрос.
func (c *Contract) IsActive(today time.Time) bool {
	end, err := time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return false
	}
	day := today.Format(DateLayout)
	return !end.Before(mustDay(day))
}

func mustDay(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}
