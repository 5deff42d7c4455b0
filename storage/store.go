package storage

import "errors"

// ErrDisabled is returned by every operation of the Disabled store. Callers
// that write best-effort ignore it explicitly; read paths translate it into
// their "no data yet" condition.
var ErrDisabled = errors.New("persistence not configured")

// Collection names match the lowercased snapshot type names.
const (
	CollectionMealPlans   = "mealplan"
	CollectionPantryItems = "pantryitem"
	CollectionPreferences = "preferenceupdate"
)

// Store is the optional document store. Writes are best-effort from the
// caller's point of view; reads return documents in insertion order, and
// the last element of a limited fetch is treated as the latest write.
type Store interface {
	CreateDocument(collection string, doc any) (uint, error)
	GetDocuments(collection string, filter map[string]any, limit int) ([]map[string]any, error)
	// Collections lists distinct collection names, for diagnostics.
	Collections() ([]string, error)
	Enabled() bool
}

// Disabled is the explicit no-persistence variant injected when no
// DATABASE_URL is configured.
type Disabled struct{}

func (Disabled) CreateDocument(string, any) (uint, error) { return 0, ErrDisabled }

func (Disabled) GetDocuments(string, map[string]any, int) ([]map[string]any, error) {
	return nil, ErrDisabled
}

func (Disabled) Collections() ([]string, error) { return nil, ErrDisabled }

func (Disabled) Enabled() bool { return false }
