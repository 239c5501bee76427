// ABOUTME: Repository implementation backed by the Charm KV store.
// ABOUTME: Uses type-prefixed keys and JSON-encoded records with cloud sync.
package charm

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/beastmode/internal/models"
	"github.com/harperreed/beastmode/internal/storage"
)

// Store adapts the Charm KV client to the storage.Repository interface.
type Store struct {
	client *Client
}

var _ storage.Repository = (*Store)(nil)

// NewStore opens (or reuses) the global Charm client and wraps it.
func NewStore() (*Store, error) {
	c, err := GetClient()
	if err != nil {
		return nil, fmt.Errorf("init charm client: %w", err)
	}
	return &Store{client: c}, nil
}

// Client exposes the underlying KV client for sync and account commands.
func (s *Store) Client() *Client {
	return s.client
}

// Close closes the underlying KV connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// waterRecord is the stored shape of one day's water counter.
type waterRecord struct {
	Day        string `json:"day"`
	ConsumedML int    `json:"consumed_ml"`
}

// SaveProfile validates and stores the single profile record.
func (s *Store) SaveProfile(p *models.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.client.set(ProfileKey, data)
}

// GetProfile retrieves the stored profile.
func (s *Store) GetProfile() (*models.Profile, error) {
	data, ok, err := s.client.get(ProfileKey)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("profile: %w", storage.ErrNotFound)
	}

	profile, err := unmarshalJSON[models.Profile](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return profile, nil
}

// CreateCycle validates and stores a new cycle record.
func (s *Store) CreateCycle(c *models.Cycle) error {
	if err := c.Validate(); err != nil {
		return err
	}
	key := CyclePrefix + c.ID.String()
	data, err := marshalJSON(c)
	if err != nil {
		return fmt.Errorf("marshal cycle: %w", err)
	}
	return s.client.set(key, data)
}

// GetCycle retrieves a cycle by ID or ID prefix.
func (s *Store) GetCycle(idOrPrefix string) (*models.Cycle, error) {
	key, ok, err := s.client.findByIDPrefix(CyclePrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get cycle: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("cycle %s: %w", idOrPrefix, storage.ErrNotFound)
	}

	data, ok, err := s.client.get(string(key))
	if err != nil {
		return nil, fmt.Errorf("get cycle: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("cycle %s: %w", idOrPrefix, storage.ErrNotFound)
	}

	cycle, err := unmarshalJSON[models.Cycle](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal cycle: %w", err)
	}
	return cycle, nil
}

// ListCycles retrieves all cycles in insertion order.
func (s *Store) ListCycles() ([]*models.Cycle, error) {
	allData, err := s.client.listByPrefix(CyclePrefix)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}

	var cycles []*models.Cycle
	for _, data := range allData {
		c, err := unmarshalJSON[models.Cycle](data)
		if err != nil {
			continue // Skip invalid entries
		}
		cycles = append(cycles, c)
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i].CreatedAt.Before(cycles[j].CreatedAt)
	})

	return cycles, nil
}

// DeleteCycle removes a cycle by ID or prefix.
func (s *Store) DeleteCycle(idOrPrefix string) error {
	key, ok, err := s.client.findByIDPrefix(CyclePrefix, idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete cycle: %w", err)
	}
	if !ok {
		return fmt.Errorf("delete cycle %s: %w", idOrPrefix, storage.ErrNotFound)
	}
	return s.client.delete(string(key))
}

// LogWater adds ml to the day's consumed-water counter.
func (s *Store) LogWater(day time.Time, ml int) error {
	if ml <= 0 {
		return fmt.Errorf("water amount must be positive, got %d", ml)
	}

	dk := day.Format("2006-01-02")
	rec := waterRecord{Day: dk}

	data, ok, err := s.client.get(WaterPrefix + dk)
	if err != nil {
		return fmt.Errorf("log water: %w", err)
	}
	if ok {
		existing, err := unmarshalJSON[waterRecord](data)
		if err != nil {
			return fmt.Errorf("unmarshal water record: %w", err)
		}
		rec = *existing
	}

	rec.ConsumedML += ml

	out, err := marshalJSON(rec)
	if err != nil {
		return fmt.Errorf("marshal water record: %w", err)
	}
	return s.client.set(WaterPrefix+dk, out)
}

// WaterConsumed reports the total logged for the day; zero when unlogged.
func (s *Store) WaterConsumed(day time.Time) (int, error) {
	data, ok, err := s.client.get(WaterPrefix + day.Format("2006-01-02"))
	if err != nil {
		return 0, fmt.Errorf("water consumed: %w", err)
	}
	if !ok {
		return 0, nil
	}

	rec, err := unmarshalJSON[waterRecord](data)
	if err != nil {
		return 0, fmt.Errorf("unmarshal water record: %w", err)
	}
	return rec.ConsumedML, nil
}

// GetAllData retrieves all data for export.
func (s *Store) GetAllData() (*storage.ExportData, error) {
	data := &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "beastmode",
	}

	profile, err := s.GetProfile()
	if err == nil {
		data.Profile = profile
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	cycles, err := s.ListCycles()
	if err != nil {
		return nil, err
	}
	data.Cycles = cycles

	allWater, err := s.client.listByPrefix(WaterPrefix)
	if err != nil {
		return nil, fmt.Errorf("list water: %w", err)
	}
	for _, raw := range allWater {
		rec, err := unmarshalJSON[waterRecord](raw)
		if err != nil {
			continue
		}
		data.Water = append(data.Water, storage.WaterEntry{
			Day:        rec.Day,
			ConsumedML: rec.ConsumedML,
		})
	}
	sort.Slice(data.Water, func(i, j int) bool {
		return data.Water[i].Day < data.Water[j].Day
	})

	return data, nil
}

// ImportData imports data from an export file.
func (s *Store) ImportData(data *storage.ExportData) error {
	if data.Profile != nil {
		if err := s.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}

	for _, c := range data.Cycles {
		if err := s.CreateCycle(c); err != nil {
			return fmt.Errorf("import cycle: %w", err)
		}
	}

	for _, w := range data.Water {
		if w.ConsumedML <= 0 {
			continue
		}
		day, err := time.Parse("2006-01-02", w.Day)
		if err != nil {
			return fmt.Errorf("import water day %q: %w", w.Day, err)
		}
		if err := s.LogWater(day, w.ConsumedML); err != nil {
			return fmt.Errorf("import water: %w", err)
		}
	}

	return nil
}
