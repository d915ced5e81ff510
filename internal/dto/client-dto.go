package dto

type CreateClientDTO struct {
	ShortName     string   `json:"short_name" validate:"required,min=2,max=255"`
	FullName      string   `json:"full_name" validate:"required,min=2"`
	BIN           *string  `json:"bin,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	IsGov         bool     `json:"is_gov"`
	ActivityID    string   `json:"activity_id" validate:"required"`
	SourceID      string   `json:"source_id" validate:"required"`
	OwnerID       string   `json:"owner_id" validate:"required"`
	LegalAddress  string   `json:"legal_address"`
	ActualAddress string   `json:"actual_address"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Phone         string   `json:"phone" validate:"omitempty,phone_number"`
}

type UpdateClientDTO struct {
	ShortName     *string   `json:"short_name,omitempty" validate:"omitempty,min=2,max=255"`
	FullName      *string   `json:"full_name,omitempty" validate:"omitempty,min=2"`
	BIN           *string   `json:"bin,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	IsGov         *bool     `json:"is_gov,omitempty"`
	ActivityID    *string   `json:"activity_id,omitempty"`
	SourceID      *string   `json:"source_id,omitempty"`
	OwnerID       *string   `json:"owner_id,omitempty"`
	LegalAddress  *string   `json:"legal_address,omitempty"`
	ActualAddress *string   `json:"actual_address,omitempty"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string   `json:"phone,omitempty" validate:"omitempty,phone_number"`
}

// ClientStatsDTO — агрегированный рейтинг клиента, вычисляется из живой
// коллекции задач на каждый запрос.
type ClientStatsDTO struct {
	AvgRating float64 `json:"avg_rating"`
	TaskCount int     `json:"task_count"`
}
