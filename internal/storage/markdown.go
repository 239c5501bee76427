// ABOUTME: MarkdownStore provides file-based storage using markdown files.
// ABOUTME: Records live as YAML frontmatter with free-text notes as the body.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/beastmode/internal/models"
	"gopkg.in/yaml.v3"
)

// MarkdownStore stores the profile, cycles, and water log as markdown
// files under a data directory.
type MarkdownStore struct {
	dataDir string
}

// Compile-time check that MarkdownStore implements Repository.
var _ Repository = (*MarkdownStore)(nil)

// NewMarkdownStore creates a new markdown-backed store rooted at dataDir.
func NewMarkdownStore(dataDir string) (*MarkdownStore, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &MarkdownStore{dataDir: dataDir}, nil
}

// Close releases resources. For MarkdownStore this is a no-op.
func (s *MarkdownStore) Close() error {
	return nil
}

func (s *MarkdownStore) profilePath() string {
	return filepath.Join(s.dataDir, "profile.md")
}

func (s *MarkdownStore) cyclesDir() string {
	return filepath.Join(s.dataDir, "cycles")
}

func (s *MarkdownStore) waterDir() string {
	return filepath.Join(s.dataDir, "water")
}

// cycleFilePath returns the path for a cycle file.
// Format: cycles/YYYY-MM-DD-<compound-slug>-<id_prefix>.md.
func (s *MarkdownStore) cycleFilePath(c *models.Cycle) string {
	date := c.StartDate.Format(cycleDateFormat)
	return filepath.Join(s.cyclesDir(),
		fmt.Sprintf("%s-%s-%s.md", date, slugify(c.Compound), c.ID.String()[:8]))
}

func (s *MarkdownStore) waterFilePath(day string) string {
	return filepath.Join(s.waterDir(), day+".md")
}

// --- frontmatter helpers ---

// slugify lowercases a string and replaces non-alphanumerics with dashes.
func slugify(in string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(in) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// parseFrontmatter splits a markdown document into its YAML
// frontmatter and body. Returns an empty yaml string if the document
// has no frontmatter fence.
func parseFrontmatter(content string) (yamlStr, body string) {
	const fence = "---"
	if !strings.HasPrefix(content, fence+"\n") {
		return "", content
	}
	rest := content[len(fence)+1:]
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return "", content
	}
	yamlStr = rest[:end]
	body = strings.TrimPrefix(rest[end+1+len(fence):], "\n")
	return yamlStr, body
}

// renderFrontmatter renders a value as YAML frontmatter followed by a body.
func renderFrontmatter(fm interface{}, body string) (string, error) {
	raw, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	return "---\n" + string(raw) + "---\n" + body, nil
}

// atomicWrite writes a file via a temp file and rename.
func atomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// --- frontmatter types ---

type profileFrontmatter struct {
	Name         string  `yaml:"name"`
	Age          int     `yaml:"age"`
	WeightKg     float64 `yaml:"weight_kg"`
	HeightCm     float64 `yaml:"height_cm"`
	Gender       string  `yaml:"gender"`
	Goal         string  `yaml:"goal"`
	Level        string  `yaml:"level"`
	TrainingDays int     `yaml:"training_days"`
	VIP          bool    `yaml:"vip,omitempty"`
}

type cycleFrontmatter struct {
	ID            string `yaml:"id"`
	Compound      string `yaml:"compound"`
	Dosage        string `yaml:"dosage"`
	Frequency     string `yaml:"frequency"`
	StartDate     string `yaml:"start_date"`
	DurationWeeks int    `yaml:"duration_weeks"`
	CreatedAt     string `yaml:"created_at"`
}

type waterFrontmatter struct {
	Day        string `yaml:"day"`
	ConsumedML int    `yaml:"consumed_ml"`
	UpdatedAt  string `yaml:"updated_at"`
}

func cycleFromFrontmatter(fm *cycleFrontmatter, notes string) (*models.Cycle, error) {
	id, err := uuid.Parse(fm.ID)
	if err != nil {
		return nil, fmt.Errorf("parse cycle ID %q: %w", fm.ID, err)
	}
	startDate, err := time.Parse(cycleDateFormat, fm.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start_date %q: %w", fm.StartDate, err)
	}
	createdAt, err := time.Parse(time.RFC3339, fm.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", fm.CreatedAt, err)
	}

	c := &models.Cycle{
		ID:            id,
		Compound:      fm.Compound,
		Dosage:        fm.Dosage,
		Frequency:     fm.Frequency,
		StartDate:     startDate,
		DurationWeeks: fm.DurationWeeks,
		CreatedAt:     createdAt,
	}
	if notes != "" {
		c.Notes = &notes
	}
	return c, nil
}

func cycleToFrontmatter(c *models.Cycle) cycleFrontmatter {
	return cycleFrontmatter{
		ID:            c.ID.String(),
		Compound:      c.Compound,
		Dosage:        c.Dosage,
		Frequency:     c.Frequency,
		StartDate:     c.StartDate.Format(cycleDateFormat),
		DurationWeeks: c.DurationWeeks,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// readCycleFile reads a cycle from a markdown file.
func readCycleFile(path string) (*models.Cycle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	yamlStr, body := parseFrontmatter(string(data))
	if yamlStr == "" {
		return nil, fmt.Errorf("no frontmatter in %s", path)
	}

	var fm cycleFrontmatter
	if err := yaml.Unmarshal([]byte(yamlStr), &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter in %s: %w", path, err)
	}

	return cycleFromFrontmatter(&fm, strings.TrimSpace(body))
}

func (s *MarkdownStore) writeCycleFile(c *models.Cycle) error {
	fm := cycleToFrontmatter(c)

	body := ""
	if c.Notes != nil && *c.Notes != "" {
		body = "\n" + *c.Notes + "\n"
	}

	content, err := renderFrontmatter(&fm, body)
	if err != nil {
		return fmt.Errorf("render cycle file: %w", err)
	}
	return atomicWrite(s.cycleFilePath(c), []byte(content))
}

// walkCycleFiles walks all cycle markdown files and calls fn for each.
func (s *MarkdownStore) walkCycleFiles(fn func(path string, c *models.Cycle) error) error {
	dir := s.cyclesDir()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		c, err := readCycleFile(path)
		if err != nil {
			return fmt.Errorf("read cycle file %s: %w", path, err)
		}
		return fn(path, c)
	})
}

// findCycleFile finds the file path for a cycle by ID or prefix.
func (s *MarkdownStore) findCycleFile(idOrPrefix string) (string, *models.Cycle, error) {
	isFullUUID := len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4

	var foundPath string
	var foundCycle *models.Cycle
	matchCount := 0

	err := s.walkCycleFiles(func(path string, c *models.Cycle) error {
		idStr := c.ID.String()
		if isFullUUID {
			if idStr == idOrPrefix {
				foundPath = path
				foundCycle = c
				matchCount = 1
				return filepath.SkipAll
			}
		} else {
			if strings.HasPrefix(idStr, idOrPrefix) {
				foundPath = path
				foundCycle = c
				matchCount++
			}
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	if matchCount == 0 {
		return "", nil, fmt.Errorf("cycle %s: %w", idOrPrefix, ErrNotFound)
	}
	if matchCount > 1 {
		return "", nil, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return foundPath, foundCycle, nil
}

// --- Repository interface methods ---

// SaveProfile writes the profile file.
func (s *MarkdownStore) SaveProfile(p *models.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	fm := profileFrontmatter{
		Name:         p.Name,
		Age:          p.Age,
		WeightKg:     p.WeightKg,
		HeightCm:     p.HeightCm,
		Gender:       string(p.Gender),
		Goal:         string(p.Goal),
		Level:        string(p.Level),
		TrainingDays: p.TrainingDays,
		VIP:          p.VIP,
	}
	content, err := renderFrontmatter(&fm, "")
	if err != nil {
		return fmt.Errorf("render profile file: %w", err)
	}
	return atomicWrite(s.profilePath(), []byte(content))
}

// GetProfile reads the profile file, or ErrNotFound if none exists.
func (s *MarkdownStore) GetProfile() (*models.Profile, error) {
	data, err := os.ReadFile(s.profilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	yamlStr, _ := parseFrontmatter(string(data))
	if yamlStr == "" {
		return nil, fmt.Errorf("no frontmatter in %s", s.profilePath())
	}

	var fm profileFrontmatter
	if err := yaml.Unmarshal([]byte(yamlStr), &fm); err != nil {
		return nil, fmt.Errorf("parse profile frontmatter: %w", err)
	}

	return &models.Profile{
		Name:         fm.Name,
		Age:          fm.Age,
		WeightKg:     fm.WeightKg,
		HeightCm:     fm.HeightCm,
		Gender:       models.Gender(fm.Gender),
		Goal:         models.Goal(fm.Goal),
		Level:        models.Level(fm.Level),
		TrainingDays: fm.TrainingDays,
		VIP:          fm.VIP,
	}, nil
}

// CreateCycle validates and stores a new cycle as a markdown file.
func (s *MarkdownStore) CreateCycle(c *models.Cycle) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.writeCycleFile(c)
}

// GetCycle retrieves a cycle by ID or ID prefix.
func (s *MarkdownStore) GetCycle(idOrPrefix string) (*models.Cycle, error) {
	_, c, err := s.findCycleFile(idOrPrefix)
	return c, err
}

// ListCycles returns all cycles sorted by creation time ascending,
// matching the sqlite backend's insertion order.
func (s *MarkdownStore) ListCycles() ([]*models.Cycle, error) {
	var cycles []*models.Cycle
	err := s.walkCycleFiles(func(path string, c *models.Cycle) error {
		cycles = append(cycles, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i].CreatedAt.Before(cycles[j].CreatedAt)
	})
	return cycles, nil
}

// DeleteCycle removes a cycle file by ID or prefix.
func (s *MarkdownStore) DeleteCycle(idOrPrefix string) error {
	path, _, err := s.findCycleFile(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete cycle: %w", err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete cycle file: %w", err)
	}
	return nil
}

// LogWater adds consumed milliliters to a day's counter file.
func (s *MarkdownStore) LogWater(day time.Time, ml int) error {
	if ml <= 0 {
		return fmt.Errorf("log water: amount must be positive, got %d", ml)
	}

	key := dayKey(day)
	consumed, err := s.WaterConsumed(day)
	if err != nil {
		return err
	}

	fm := waterFrontmatter{
		Day:        key,
		ConsumedML: consumed + ml,
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	content, err := renderFrontmatter(&fm, "")
	if err != nil {
		return fmt.Errorf("render water file: %w", err)
	}
	return atomicWrite(s.waterFilePath(key), []byte(content))
}

// WaterConsumed returns the total logged for a day, zero if no file.
func (s *MarkdownStore) WaterConsumed(day time.Time) (int, error) {
	data, err := os.ReadFile(s.waterFilePath(dayKey(day)))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read water file: %w", err)
	}

	yamlStr, _ := parseFrontmatter(string(data))
	var fm waterFrontmatter
	if err := yaml.Unmarshal([]byte(yamlStr), &fm); err != nil {
		return 0, fmt.Errorf("parse water frontmatter: %w", err)
	}
	return fm.ConsumedML, nil
}

// GetAllData retrieves all data for export.
func (s *MarkdownStore) GetAllData() (*ExportData, error) {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "beastmode",
	}

	profile, err := s.GetProfile()
	if err == nil {
		data.Profile = profile
	} else if !isNotFound(err) {
		return nil, err
	}

	cycles, err := s.ListCycles()
	if err != nil {
		return nil, err
	}
	data.Cycles = cycles

	entries, err := s.waterEntries()
	if err != nil {
		return nil, err
	}
	data.Water = entries

	return data, nil
}

func (s *MarkdownStore) waterEntries() ([]WaterEntry, error) {
	dir := s.waterDir()
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read water directory: %w", err)
	}

	var entries []WaterEntry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, fmt.Errorf("read water file %s: %w", f.Name(), err)
		}
		yamlStr, _ := parseFrontmatter(string(data))
		var fm waterFrontmatter
		if err := yaml.Unmarshal([]byte(yamlStr), &fm); err != nil {
			return nil, fmt.Errorf("parse water file %s: %w", f.Name(), err)
		}
		entries = append(entries, WaterEntry{Day: fm.Day, ConsumedML: fm.ConsumedML})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Day < entries[j].Day
	})
	return entries, nil
}

// ImportData imports data from an export format.
func (s *MarkdownStore) ImportData(data *ExportData) error {
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
		day, err := time.Parse(cycleDateFormat, w.Day)
		if err != nil {
			return fmt.Errorf("import water day %q: %w", w.Day, err)
		}
		if w.ConsumedML <= 0 {
			continue
		}
		if err := s.LogWater(day, w.ConsumedML); err != nil {
			return fmt.Errorf("import water: %w", err)
		}
	}

	return nil
}
