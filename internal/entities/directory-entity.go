package entities

// Простые справочники: сферы деятельности, источники лидов, организации,
// конфигурации и их релизы. Обновления нет — редактирование делается
// через удаление и повторное создание.

type ActivitySphere struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *ActivitySphere) GetID() string   { return s.ID }
func (s *ActivitySphere) SetID(id string) { s.ID = id }

type LeadSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *LeadSource) GetID() string   { return s.ID }
func (s *LeadSource) SetID(id string) { s.ID = id }

type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (o *Organization) GetID() string   { return o.ID }
func (o *Organization) SetID(id string) { o.ID = id }

type Configuration struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsIndustry bool   `json:"is_industry"`
}

func (c *Configuration) GetID() string   { return c.ID }
func (c *Configuration) SetID(id string) { c.ID = id }

type ConfigVersion struct {
	ID       string `json:"id"`
	ConfigID string `json:"config_id"`
	Release  string `json:"release"`
	Date     string `json:"date"`
}

func (v *ConfigVersion) GetID() string   { return v.ID }
func (v *ConfigVersion) SetID(id string) { v.ID = id }
