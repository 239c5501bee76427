// ABOUTME: Repository interface for profile, cycle, and water storage.
// ABOUTME: Defines the contract shared by the sqlite, markdown, and charm backends.
package storage

import (
	"errors"
	"time"

	"github.com/harperreed/beastmode/internal/models"
)

// ErrNotFound is returned when a lookup or delete targets a record
// that does not exist.
var ErrNotFound = errors.New("not found")

// Repository defines the storage interface for beastmode data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Profile operations. One profile per store; GetProfile returns
	// ErrNotFound until one is saved.
	SaveProfile(p *models.Profile) error
	GetProfile() (*models.Profile, error)

	// Cycle operations. ListCycles returns insertion order.
	CreateCycle(c *models.Cycle) error
	GetCycle(idOrPrefix string) (*models.Cycle, error)
	ListCycles() ([]*models.Cycle, error)
	DeleteCycle(idOrPrefix string) error

	// Water intake log, one counter per calendar day.
	LogWater(day time.Time, ml int) error
	WaterConsumed(day time.Time) (int, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

// dayKey normalizes a time to its calendar-day key.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
