package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoadRun records one import of a DrugBank dump.
type LoadRun struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Source               string
	DrugCount            int
	ApprovedNotWithdrawn int
	StartedAt            time.Time
	FinishedAt           *time.Time
}

func (LoadRun) TableName() string {
	return "load_runs"
}

func (r *LoadRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now().UTC()
	}
	return nil
}
