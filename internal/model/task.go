package model

import "time"

type Task struct {
	ID        int64  `json:"id" db:"id"`
	Message   string `json:"message" db:"message"`
	Completed bool   `json:"completed" db:"is_done"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// CreatedTime возвращает время создания в локальной зоне
func (t Task) CreatedTime() time.Time {
	return time.Unix(t.CreatedAt, 0)
}
