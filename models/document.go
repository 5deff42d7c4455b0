package models

import "gorm.io/gorm"

// Document is one persisted snapshot in a named collection. Snapshots are
// write-once; the payload keeps the exact JSON shape of the source struct.
type Document struct {
	gorm.Model
	Collection string `gorm:"index;not null"`
	Data       []byte `gorm:"type:jsonb;not null"`
}
