package services

import (
	"errors"
	"strings"

	"backend/models"
	"backend/storage"
)

var starterSuggestions = []string{"Veggie omelette", "Peanut butter toast", "Tomato pasta"}

var genericSuggestions = []string{"Mixed grain bowl", "Stir-fry veggies"}

// suggestionRules pairs required pantry items with the dish they unlock.
var suggestionRules = []struct {
	needs []string
	dish  string
}{
	{[]string{"pasta", "tomato"}, "Simple tomato pasta"},
	{[]string{"rice", "eggs"}, "Egg fried rice"},
	{[]string{"oats", "banana"}, "Banana oatmeal"},
}

type PantryService struct {
	store  storage.Store
	vision Vision
}

func NewPantryService(store storage.Store, vision Vision) *PantryService {
	return &PantryService{store: store, vision: vision}
}

// Add persists one pantry item best-effort. saved is false when the store
// is disabled or the write failed; the endpoint still reports ok.
func (s *PantryService) Add(item models.PantryItem) (id uint, saved bool) {
	id, err := s.store.CreateDocument(storage.CollectionPantryItems, item)
	if err != nil {
		return 0, false
	}
	return id, true
}

// List returns all persisted pantry items, or an empty list when
// persistence is disabled.
func (s *PantryService) List() ([]models.PantryItem, error) {
	docs, err := s.store.GetDocuments(storage.CollectionPantryItems, nil, 0)
	if err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return []models.PantryItem{}, nil
		}
		return nil, err
	}

	out := make([]models.PantryItem, 0, len(docs))
	for _, d := range docs {
		var item models.PantryItem
		if v, ok := d["name"].(string); ok {
			item.Name = v
		}
		if v, ok := d["quantity"].(string); ok {
			item.Quantity = v
		}
		if v, ok := d["category"].(string); ok {
			item.Category = v
		}
		out = append(out, item)
	}
	return out, nil
}

// Suggest derives dish ideas from the current pantry. An empty (or
// unavailable) pantry gets the fixed starter list; pantries that match no
// rule get the generic fallback.
func (s *PantryService) Suggest() ([]string, error) {
	if !s.store.Enabled() {
		return starterSuggestions, nil
	}

	items, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return starterSuggestions, nil
	}

	have := make(map[string]bool, len(items))
	for _, it := range items {
		have[strings.ToLower(it.Name)] = true
	}

	var out []string
	for _, r := range suggestionRules {
		matched := true
		for _, n := range r.needs {
			if !have[n] {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, r.dish)
		}
	}
	if len(out) == 0 {
		return genericSuggestions, nil
	}
	return out, nil
}

// ScanReceipt extracts item names from a receipt image and stores each one
// best-effort, counting the writes that actually landed.
func (s *PantryService) ScanReceipt(imageBase64 string) (detected []string, added int, err error) {
	items, err := s.vision.ReceiptItems(imageBase64)
	if err != nil {
		return nil, 0, err
	}
	return items, s.addAll(items), nil
}

// ScanPhoto does the same from a pantry shelf photo.
func (s *PantryService) ScanPhoto(imageBase64 string) (detected []string, added int, err error) {
	labels, err := s.vision.PhotoLabels(imageBase64)
	if err != nil {
		return nil, 0, err
	}
	return labels, s.addAll(labels), nil
}

func (s *PantryService) addAll(names []string) int {
	added := 0
	for _, name := range names {
		if _, err := s.store.CreateDocument(storage.CollectionPantryItems, models.PantryItem{Name: name}); err == nil {
			added++
		}
	}
	return added
}
