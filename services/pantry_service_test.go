package services

import (
	"reflect"
	"testing"

	"backend/models"
	"backend/storage"
)

func TestPantryAddReportsUnsavedWithoutStore(t *testing.T) {
	svc := NewPantryService(storage.Disabled{}, MockVision{})
	if _, saved := svc.Add(models.PantryItem{Name: "rice"}); saved {
		t.Fatal("disabled store reported a saved item")
	}
}

func TestPantryListEmptyWithoutStore(t *testing.T) {
	svc := NewPantryService(storage.Disabled{}, MockVision{})
	items, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %v, want empty", items)
	}
}

func TestPantryListRoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewPantryService(store, MockVision{})
	svc.Add(models.PantryItem{Name: "rice", Quantity: "1kg", Category: "grains"})

	items, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []models.PantryItem{{Name: "rice", Quantity: "1kg", Category: "grains"}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("items = %+v, want %+v", items, want)
	}
}

func TestPantrySuggest(t *testing.T) {
	cases := []struct {
		name   string
		pantry []string
		want   []string
	}{
		{"empty pantry gets starters", nil, starterSuggestions},
		{"pasta and tomato", []string{"Pasta", "Tomato"}, []string{"Simple tomato pasta"}},
		{"rice and eggs", []string{"rice", "eggs"}, []string{"Egg fried rice"}},
		{"oats and banana", []string{"oats", "banana"}, []string{"Banana oatmeal"}},
		{"no rule matched", []string{"bread"}, genericSuggestions},
		{
			"multiple rules in declaration order",
			[]string{"pasta", "tomato", "oats", "banana"},
			[]string{"Simple tomato pasta", "Banana oatmeal"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			svc := NewPantryService(store, MockVision{})
			for _, name := range tc.pantry {
				svc.Add(models.PantryItem{Name: name})
			}

			got, err := svc.Suggest()
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("suggestions = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPantrySuggestWithoutStore(t *testing.T) {
	svc := NewPantryService(storage.Disabled{}, MockVision{})
	got, err := svc.Suggest()
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if !reflect.DeepEqual(got, starterSuggestions) {
		t.Errorf("suggestions = %v, want starters", got)
	}
}

func TestScanReceiptAddsDetectedItems(t *testing.T) {
	store := newMemStore()
	svc := NewPantryService(store, MockVision{})

	detected, added, err := svc.ScanReceipt("data:image/jpeg;base64,ignored")
	if err != nil {
		t.Fatalf("ScanReceipt: %v", err)
	}
	want := []string{"milk", "eggs", "bread", "tomato", "pasta"}
	if !reflect.DeepEqual(detected, want) {
		t.Errorf("detected = %v, want %v", detected, want)
	}
	if added != 5 {
		t.Errorf("added = %d, want 5", added)
	}
	if got := len(store.docs[storage.CollectionPantryItems]); got != 5 {
		t.Errorf("persisted %d items, want 5", got)
	}
}

func TestScanReceiptWithoutStoreAddsNothing(t *testing.T) {
	svc := NewPantryService(storage.Disabled{}, MockVision{})
	detected, added, err := svc.ScanReceipt("data:image/jpeg;base64,ignored")
	if err != nil {
		t.Fatalf("ScanReceipt: %v", err)
	}
	if len(detected) != 5 {
		t.Errorf("detected = %v", detected)
	}
	if added != 0 {
		t.Errorf("added = %d, want 0 without persistence", added)
	}
}

func TestScanPhotoAddsDetectedLabels(t *testing.T) {
	store := newMemStore()
	svc := NewPantryService(store, MockVision{})

	detected, added, err := svc.ScanPhoto("data:image/png;base64,ignored")
	if err != nil {
		t.Fatalf("ScanPhoto: %v", err)
	}
	want := []string{"banana", "oats", "peanut butter"}
	if !reflect.DeepEqual(detected, want) {
		t.Errorf("detected = %v, want %v", detected, want)
	}
	if added != 3 {
		t.Errorf("added = %d, want 3", added)
	}
}
