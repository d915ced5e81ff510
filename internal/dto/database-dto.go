package dto

type CreateDatabaseDTO struct {
	ClientID     string  `json:"client_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	RegNumber    string  `json:"reg_number"`
	ConfigID     string  `json:"config_id" validate:"required"`
	VersionID    *string `json:"version_id,omitempty"`
	DbAdmin      *string `json:"db_admin,omitempty"`
	DbPassword   *string `json:"db_password,omitempty"`
	ItsSupported bool    `json:"its_supported"`
	WorkMode     string  `json:"work_mode" validate:"required,oneof=file server"`
	State        string  `json:"state" validate:"required,oneof=full_support full_support_with_extensions minor_change major_change custom_solution"`
}

type UpdateDatabaseDTO struct {
	Name         *string `json:"name,omitempty"`
	RegNumber    *string `json:"reg_number,omitempty"`
	ConfigID     *string `json:"config_id,omitempty"`
	VersionID    *string `json:"version_id,omitempty"`
	DbAdmin      *string `json:"db_admin,omitempty"`
	DbPassword   *string `json:"db_password,omitempty"`
	ItsSupported *bool   `json:"its_supported,omitempty"`
	WorkMode     *string `json:"work_mode,omitempty" validate:"omitempty,oneof=file server"`
	State        *string `json:"state,omitempty" validate:"omitempty,oneof=full_support full_support_with_extensions minor_change major_change custom_solution"`
}
