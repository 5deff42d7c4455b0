package storage

import (
	"errors"
	"testing"
)

func TestDisabledStoreReturnsErrDisabled(t *testing.T) {
	var s Store = Disabled{}

	if s.Enabled() {
		t.Error("Disabled store reports enabled")
	}
	if _, err := s.CreateDocument(CollectionMealPlans, map[string]any{"a": 1}); !errors.Is(err, ErrDisabled) {
		t.Errorf("CreateDocument err = %v, want ErrDisabled", err)
	}
	if _, err := s.GetDocuments(CollectionMealPlans, nil, 1); !errors.Is(err, ErrDisabled) {
		t.Errorf("GetDocuments err = %v, want ErrDisabled", err)
	}
	if _, err := s.Collections(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Collections err = %v, want ErrDisabled", err)
	}
}
