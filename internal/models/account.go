package models

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a payable entry: an amount owed with a due date
// and a paid flag.
type Account struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	DueDate   time.Time `db:"due_date"   json:"due_date"`
	Name      string    `db:"name"       json:"name"`
	Value     float64   `db:"value"      json:"value"`
	Paid      bool      `db:"paid"       json:"paid"`
	ID        uuid.UUID `db:"id"         json:"id"`
}
