package models

import "time"

type AuditEntryModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	ActorID    string `gorm:"index:idx_audit_actor"`
	Action     string
	TargetType string `gorm:"index:idx_audit_target"`
	TargetID   string `gorm:"index:idx_audit_target"`
	Reason     string
	Before     string `gorm:"type:jsonb"`
	After      string `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"index:idx_audit_created_at"`
}

func (AuditEntryModel) TableName() string {
	return "audit_entries"
}
