package storage

import (
	"encoding/json"

	"gorm.io/gorm"

	"backend/models"
)

// GormStore keeps every collection in a single documents table with a
// JSONB payload column.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.Document{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) CreateDocument(collection string, doc any) (uint, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}
	rec := models.Document{Collection: collection, Data: data}
	if err := s.db.Create(&rec).Error; err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (s *GormStore) GetDocuments(collection string, filter map[string]any, limit int) ([]map[string]any, error) {
	q := s.db.
		Where("collection = ?", collection).
		Order("id ASC")
	if len(filter) > 0 {
		fb, err := json.Marshal(filter)
		if err != nil {
			return nil, err
		}
		q = q.Where("data @> ?", string(fb))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []models.Document
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(recs))
	for _, r := range recs {
		var doc map[string]any
		if err := json.Unmarshal(r.Data, &doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *GormStore) Collections() ([]string, error) {
	var names []string
	err := s.db.
		Model(&models.Document{}).
		Distinct().
		Order("collection ASC").
		Pluck("collection", &names).Error
	return names, err
}

func (s *GormStore) Enabled() bool { return true }
