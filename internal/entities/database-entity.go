package entities

type WorkMode string

const (
	WorkModeFile   WorkMode = "file"
	WorkModeServer WorkMode = "server"
)

// DbState — степень доработанности конфигурации: от типовой до
// полностью самописного решения.
type DbState string

const (
	DbStateFullSupport               DbState = "full_support"
	DbStateFullSupportWithExtensions DbState = "full_support_with_extensions"
	DbStateMinorChange               DbState = "minor_change"
	DbStateMajorChange               DbState = "major_change"
	DbStateCustomSolution            DbState = "custom_solution"
)

// Database1C — учётная запись об установленной информационной базе клиента.
type Database1C struct {
	ID           string   `json:"id"`
	ClientID     string   `json:"client_id"`
	Name         string   `json:"name"`
	RegNumber    string   `json:"reg_number"`
	ConfigID     string   `json:"config_id"`
	VersionID    *string  `json:"version_id,omitempty"`
	DbAdmin      *string  `json:"db_admin,omitempty"`
	DbPassword   *string  `json:"db_password,omitempty"`
	ItsSupported bool     `json:"its_supported"`
	WorkMode     WorkMode `json:"work_mode"`
	State        DbState  `json:"state"`
}

func (d *Database1C) GetID() string   { return d.ID }
func (d *Database1C) SetID(id string) { d.ID = id }
