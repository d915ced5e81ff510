package entities

import "time"

// TaskComment — комментарий к задаче. Только добавление, без
// редактирования и удаления.
type TaskComment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *TaskComment) GetID() string   { return c.ID }
func (c *TaskComment) SetID(id string) { c.ID = id }
