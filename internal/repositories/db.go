package repositories

import (
	"crm-system/internal/entities"
	"crm-system/pkg/kvstore"
)

// Ключи коллекций в хранилище. Одна запись — одна коллекция целиком.
const (
	KeyUsers          = "crm_users"
	KeySpheres        = "crm_spheres"
	KeySources        = "crm_sources"
	KeyOrgs           = "crm_orgs"
	KeyConfigs        = "crm_configs"
	KeyVersions       = "crm_versions"
	KeyClients        = "crm_clients"
	KeyContacts       = "crm_contacts"
	KeyContracts      = "crm_contracts"
	KeyDatabases      = "crm_databases"
	KeyQueues         = "crm_queues"
	KeyQueueTemplates = "crm_queue_templates"
	KeyTasks          = "crm_tasks"
	KeyTaskComments   = "crm_task_comments"
	KeyHistory        = "crm_history"
	KeyConversations  = "crm_conversations"
	KeyMessages       = "crm_messages"
)

// DB агрегирует все коллекции приложения поверх одного key-value
// хранилища. Это единственная точка доступа сервисного слоя к данным.
type DB struct {
	Users          *Collection[*entities.User]
	Spheres        *Collection[*entities.ActivitySphere]
	Sources        *Collection[*entities.LeadSource]
	Orgs           *Collection[*entities.Organization]
	Configs        *Collection[*entities.Configuration]
	Versions       *Collection[*entities.ConfigVersion]
	Clients        *Collection[*entities.Client]
	Contacts       *Collection[*entities.Contact]
	Contracts      *Collection[*entities.Contract]
	Databases      *Collection[*entities.Database1C]
	Queues         *Collection[*entities.Queue]
	QueueTemplates *Collection[*entities.QueueTemplate]
	Tasks          *Collection[*entities.Task]
	TaskComments   *Collection[*entities.TaskComment]
	History        *Collection[*entities.HistoryLog]
	Conversations  *Collection[*entities.Conversation]
	Messages       *Collection[*entities.Message]
}

// NewDB открывает все коллекции. Отсутствующие наполняются начальными
// данными и сохраняются сразу же.
func NewDB(kv kvstore.Store) (*DB, error) {
	db := &DB{}
	var err error

	if db.Users, err = NewCollection(kv, KeyUsers, SeedUsers()); err != nil {
		return nil, err
	}
	if db.Spheres, err = NewCollection(kv, KeySpheres, SeedSpheres()); err != nil {
		return nil, err
	}
	if db.Sources, err = NewCollection(kv, KeySources, SeedSources()); err != nil {
		return nil, err
	}
	if db.Orgs, err = NewCollection(kv, KeyOrgs, SeedOrganizations()); err != nil {
		return nil, err
	}
	if db.Configs, err = NewCollection(kv, KeyConfigs, SeedConfigs()); err != nil {
		return nil, err
	}
	if db.Versions, err = NewCollection(kv, KeyVersions, SeedVersions()); err != nil {
		return nil, err
	}
	if db.Clients, err = NewCollection(kv, KeyClients, SeedClients()); err != nil {
		return nil, err
	}
	if db.Contacts, err = NewCollection(kv, KeyContacts, SeedContacts()); err != nil {
		return nil, err
	}
	if db.Contracts, err = NewCollection(kv, KeyContracts, SeedContracts()); err != nil {
		return nil, err
	}
	if db.Databases, err = NewCollection(kv, KeyDatabases, SeedDatabases()); err != nil {
		return nil, err
	}
	if db.QueueTemplates, err = NewCollection(kv, KeyQueueTemplates, SeedQueueTemplates()); err != nil {
		return nil, err
	}
	if db.Queues, err = NewCollection(kv, KeyQueues, SeedQueues()); err != nil {
		return nil, err
	}
	if db.Tasks, err = NewCollection(kv, KeyTasks, SeedTasks()); err != nil {
		return nil, err
	}
	if db.TaskComments, err = NewCollection[*entities.TaskComment](kv, KeyTaskComments, nil); err != nil {
		return nil, err
	}
	if db.History, err = NewCollection[*entities.HistoryLog](kv, KeyHistory, nil); err != nil {
		return nil, err
	}
	if db.Conversations, err = NewCollection[*entities.Conversation](kv, KeyConversations, nil); err != nil {
		return nil, err
	}
	if db.Messages, err = NewCollection[*entities.Message](kv, KeyMessages, nil); err != nil {
		return nil, err
	}

	return db, nil
}
