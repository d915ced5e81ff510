package dto

// Типы справочников, обслуживаемые общим входом add/delete.
const (
	DirectorySpheres        = "spheres"
	DirectorySources        = "sources"
	DirectoryOrgs           = "orgs"
	DirectoryConfigs        = "configs"
	DirectoryVersions       = "versions"
	DirectoryQueueTemplates = "queue_templates"
)

// DirectoryItemDTO — общий запрос создания элемента справочника.
// Дополнительные поля используются только теми типами, которым нужны.
type DirectoryItemDTO struct {
	Name       string           `json:"name" validate:"required,min=1,max=255"`
	IsIndustry *bool            `json:"is_industry,omitempty"`
	ConfigID   *string          `json:"config_id,omitempty"`
	Release    *string          `json:"release,omitempty"`
	Date       *string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Statuses   []QueueStatusDTO `json:"statuses,omitempty" validate:"omitempty,dive"`
}
