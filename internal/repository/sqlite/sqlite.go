// Package sqlite implements the report catalog on SQLite using the pure
// Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"infreport/internal/domain"
	"infreport/internal/repository"
)

// Catalog implements repository.Catalog using SQLite.
type Catalog struct {
	db *sql.DB
}

// New opens (or creates) the catalog database at dbPath and migrates the
// schema.
func New(dbPath string) (*Catalog, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate catalog database: %w", err)
	}

	return c, nil
}

func (c *Catalog) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sources (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL UNIQUE,
		scanned_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS manufacturers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		FOREIGN KEY (source_id) REFERENCES sources(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS models (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		manufacturer_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		description TEXT NOT NULL,
		hardware_ids JSON NOT NULL,
		architectures JSON NOT NULL,
		FOREIGN KEY (manufacturer_id) REFERENCES manufacturers(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_manufacturers_source ON manufacturers(source_id, position);
	CREATE INDEX IF NOT EXISTS idx_models_manufacturer ON models(manufacturer_id, position);
	`

	_, err := c.db.Exec(schema)
	return err
}

// SaveReport stores the report for sourcePath inside one transaction,
// replacing any earlier scan of the same path.
func (c *Catalog) SaveReport(ctx context.Context, sourcePath string, report domain.Report) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sources (path) VALUES (?)
		ON CONFLICT(path) DO UPDATE SET scanned_at = CURRENT_TIMESTAMP
	`, sourcePath); err != nil {
		return fmt.Errorf("upsert source: %w", err)
	}

	var sourceID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM sources WHERE path = ?`, sourcePath).Scan(&sourceID); err != nil {
		return fmt.Errorf("resolve source id: %w", err)
	}

	// Replace, not merge: a rescan owns the whole report.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM manufacturers WHERE source_id = ?`, sourceID); err != nil {
		return fmt.Errorf("clear previous scan: %w", err)
	}

	for mi, manufacturer := range report {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO manufacturers (source_id, position, name) VALUES (?, ?, ?)`,
			sourceID, mi, manufacturer.Name)
		if err != nil {
			return fmt.Errorf("insert manufacturer %q: %w", manufacturer.Name, err)
		}
		manufacturerID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("manufacturer id: %w", err)
		}

		for di, device := range manufacturer.Devices {
			hardwareIDs, err := json.Marshal(device.HardwareIDs)
			if err != nil {
				return fmt.Errorf("marshal hardware ids: %w", err)
			}
			architectures, err := json.Marshal(device.Architectures)
			if err != nil {
				return fmt.Errorf("marshal architectures: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO models (manufacturer_id, position, description, hardware_ids, architectures)
				VALUES (?, ?, ?, ?, ?)
			`, manufacturerID, di, device.Description, string(hardwareIDs), string(architectures)); err != nil {
				return fmt.Errorf("insert model %q: %w", device.Description, err)
			}
		}
	}

	return tx.Commit()
}

// GetReport loads the stored report for sourcePath in its original
// order. The reconstruction is a catalog query over the output shape; it
// cannot and does not rebuild source declarations.
func (c *Catalog) GetReport(ctx context.Context, sourcePath string) (domain.Report, error) {
	var sourceID int64
	err := c.db.QueryRowContext(ctx,
		`SELECT id FROM sources WHERE path = ?`, sourcePath).Scan(&sourceID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("source %q is not cataloged", sourcePath)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve source: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name FROM manufacturers
		WHERE source_id = ? ORDER BY position
	`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("query manufacturers: %w", err)
	}
	defer rows.Close()

	type manufacturerRow struct {
		id   int64
		name string
	}
	var manufacturerRows []manufacturerRow
	for rows.Next() {
		var row manufacturerRow
		if err := rows.Scan(&row.id, &row.name); err != nil {
			return nil, fmt.Errorf("scan manufacturer: %w", err)
		}
		manufacturerRows = append(manufacturerRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate manufacturers: %w", err)
	}

	report := make(domain.Report, 0, len(manufacturerRows))
	for _, mrow := range manufacturerRows {
		devices, err := c.loadModels(ctx, mrow.id)
		if err != nil {
			return nil, err
		}
		report = append(report, domain.Manufacturer{Name: mrow.name, Devices: devices})
	}
	return report, nil
}

func (c *Catalog) loadModels(ctx context.Context, manufacturerID int64) ([]domain.Model, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT description, hardware_ids, architectures FROM models
		WHERE manufacturer_id = ? ORDER BY position
	`, manufacturerID)
	if err != nil {
		return nil, fmt.Errorf("query models: %w", err)
	}
	defer rows.Close()

	devices := []domain.Model{}
	for rows.Next() {
		var description, hardwareIDs, architectures string
		if err := rows.Scan(&description, &hardwareIDs, &architectures); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		model := domain.Model{Description: description}
		if err := json.Unmarshal([]byte(hardwareIDs), &model.HardwareIDs); err != nil {
			return nil, fmt.Errorf("decode hardware ids: %w", err)
		}
		if err := json.Unmarshal([]byte(architectures), &model.Architectures); err != nil {
			return nil, fmt.Errorf("decode architectures: %w", err)
		}
		devices = append(devices, model)
	}
	return devices, rows.Err()
}

// ListSources enumerates cataloged documents, most recent first.
func (c *Catalog) ListSources(ctx context.Context) ([]repository.Source, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT s.path, s.scanned_at, COUNT(m.id)
		FROM sources s LEFT JOIN manufacturers m ON m.source_id = s.id
		GROUP BY s.id ORDER BY s.scanned_at DESC, s.path
	`)
	if err != nil {
		return nil, fmt.Errorf("query sources: %w", err)
	}
	defer rows.Close()

	var sources []repository.Source
	for rows.Next() {
		var s repository.Source
		if err := rows.Scan(&s.Path, &s.ScannedAt, &s.Manufacturers); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

// Close releases the database handle.
func (c *Catalog) Close() error {
	return c.db.Close()
}
