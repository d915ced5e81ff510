package repositories

import (
	"time"

	"crm-system/internal/entities"
	"crm-system/pkg/utils"
)

// Начальные данные для пустого хранилища. Идентификаторы фиксированные,
// чтобы связи между коллекциями сходились при первом запуске.

func SeedUsers() []*entities.User {
	adminHash, err := utils.HashPassword("admin")
	if err != nil {
		panic(err)
	}
	userHash, err := utils.HashPassword("user")
	if err != nil {
		panic(err)
	}
	return []*entities.User{
		{ID: "u1", Name: "Administrator", Email: "admin@crm.local", PasswordHash: adminHash, Role: entities.RoleAdmin},
		{ID: "u2", Name: "Manager", Email: "manager@crm.local", PasswordHash: userHash, Role: entities.RoleUser},
	}
}

func SeedSpheres() []*entities.ActivitySphere {
	return []*entities.ActivitySphere{
		{ID: "as1", Name: "Retail"},
		{ID: "as2", Name: "Production"},
		{ID: "as3", Name: "Services"},
	}
}

func SeedSources() []*entities.LeadSource {
	return []*entities.LeadSource{
		{ID: "ls1", Name: "Website"},
		{ID: "ls2", Name: "Referral"},
		{ID: "ls3", Name: "Cold Call"},
	}
}

func SeedOrganizations() []*entities.Organization {
	return []*entities.Organization{
		{ID: "o1", Name: "OOO 1C-Service"},
		{ID: "o2", Name: "IP Developer"},
	}
}

func SeedConfigs() []*entities.Configuration {
	return []*entities.Configuration{
		{ID: "c1", Name: "Accounting 3.0", IsIndustry: false},
		{ID: "c2", Name: "Trade Management 11", IsIndustry: false},
		{ID: "c3", Name: "Construction ERP", IsIndustry: true},
	}
}

func SeedVersions() []*entities.ConfigVersion {
	return []*entities.ConfigVersion{
		{ID: "v1", ConfigID: "c1", Release: "3.0.100.1", Date: "2023-10-15"},
		{ID: "v2", ConfigID: "c2", Release: "11.5.7.1", Date: "2023-11-20"},
	}
}

func SeedClients() []*entities.Client {
	return []*entities.Client{
		{
			ID:            "cl1",
			ShortName:     "TechStore",
			FullName:      "TechStore Ltd.",
			BIN:           utils.StringPtr("123456789012"),
			Tags:          []string{"vip", "urgent"},
			IsGov:         false,
			ActivityID:    "as1",
			SourceID:      "ls1",
			OwnerID:       "u1",
			LegalAddress:  "123 Tech St",
			ActualAddress: "123 Tech St",
			Email:         "info@techstore.local",
			Phone:         "+79991234567",
		},
	}
}

func SeedContacts() []*entities.Contact {
	return []*entities.Contact{
		{
			ID:        "ct1",
			ClientID:  "cl1",
			FirstName: "John",
			LastName:  "Doe",
			Position:  "Director",
			Phone:     "+79990001122",
			Email:     "john@techstore.local",
			Rating:    utils.IntPtr(4),
		},
	}
}

func SeedContracts() []*entities.Contract {
	return []*entities.Contract{
		{
			ID:              "con1",
			ClientID:        "cl1",
			OrganizationID:  "o1",
			ContractNumber:  "CNT-2023-001",
			Title:           "Main Service Agreement",
			StartDate:       "2023-01-01",
			EndDate:         "2026-12-31",
			IsSigned:        true,
			ItsActive:       true,
			MinutesIncluded: 60,
		},
	}
}

func SeedDatabases() []*entities.Database1C {
	return []*entities.Database1C{
		{
			ID:           "db1",
			ClientID:     "cl1",
			Name:         "Accounting_Main",
			RegNumber:    "800123456",
			ConfigID:     "c1",
			ItsSupported: true,
			WorkMode:     entities.WorkModeFile,
			State:        entities.DbStateFullSupport,
		},
	}
}

func SeedQueueTemplates() []*entities.QueueTemplate {
	return []*entities.QueueTemplate{
		{
			ID:       "qt1",
			Name:     "Стандартный",
			Statuses: entities.StatusesFromNames([]string{"Новая", "В работе", "Закрыта"}),
		},
	}
}

func SeedQueues() []*entities.Queue {
	return []*entities.Queue{
		{
			ID:         "q1",
			Name:       "Поддержка",
			Prefix:     "SUP",
			TemplateID: "qt1",
			Statuses:   entities.StatusesFromNames([]string{"Новая", "В работе", "Закрыта"}),
		},
	}
}

func SeedTasks() []*entities.Task {
	return []*entities.Task{
		{
			ID:           "t1",
			QueueID:      "q1",
			QueueTaskNo:  1,
			TaskNo:       1,
			ClientID:     "cl1",
			ContactID:    utils.StringPtr("ct1"),
			Type:         entities.TaskTypeConsultation,
			Priority:     entities.PriorityHigh,
			Status:       "Новая",
			Title:        "Update Accounting Rules",
			Description:  "The client requested a consultation on new tax rules implementation.",
			AuthorID:     "u1",
			PerformerIDs: []string{"u2"},
			ObserverIDs:  []string{"u1"},
			Tags:         []string{"tax", "consult"},
			CreatedAt:    time.Now(),
			Checklist: []entities.ChecklistItem{
				{ID: "i1", Text: "Read legislation", IsDone: true},
				{ID: "i2", Text: "Call client", IsDone: false},
			},
			Attachments: []entities.TaskAttachment{},
			TimeLogs:    []entities.TimeLog{},
		},
	}
}
