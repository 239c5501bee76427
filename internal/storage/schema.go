// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for the profile, cycles, and water intake log.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		weight_kg REAL NOT NULL,
		height_cm REAL NOT NULL,
		gender TEXT NOT NULL,
		goal TEXT NOT NULL,
		level TEXT NOT NULL,
		training_days INTEGER NOT NULL,
		vip INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS cycles (
		id TEXT PRIMARY KEY,
		compound TEXT NOT NULL,
		dosage TEXT NOT NULL,
		frequency TEXT NOT NULL,
		start_date DATE NOT NULL,
		duration_weeks INTEGER NOT NULL,
		notes TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS water_intake (
		day TEXT PRIMARY KEY,
		consumed_ml INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_cycles_created ON cycles(created_at);
	`

	_, err := d.db.Exec(schema)
	return err
}
