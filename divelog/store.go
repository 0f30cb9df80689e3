package divelog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/decoplan/buhlmann"
)

// Sentinel errors returned by the store.
var (
	// ErrNotFound indicates that no dive with the requested ID exists.
	ErrNotFound = errors.New("divelog: dive not found")

	// ErrBadLimit indicates a non-positive listing limit.
	ErrBadLimit = errors.New("divelog: limit must be positive")
)

// Record is one saved dive plan as stored in, and read back from, the
// logbook.
type Record struct {
	ID         string    `db:"id"`          // UUID, assigned on save
	SavedAt    time.Time `db:"saved_at"`    // UTC save timestamp
	Variant    string    `db:"variant"`     // ZH-L16 coefficient set
	MaxDepth   float64   `db:"max_depth"`   // metres
	BottomTime float64   `db:"bottom_time"` // minutes
	O2         float64   `db:"o2"`          // oxygen fraction
	He         float64   `db:"he"`          // helium fraction
	GFLow      float64   `db:"gf_low"`
	GFHigh     float64   `db:"gf_high"`
	Runtime    float64   `db:"runtime_min"` // total runtime, minutes
	TotalDeco  int       `db:"deco_min"`    // summed stop minutes
	StopsJSON  string    `db:"stops_json"`  // encoded []buhlmann.Stop
	Notes      string    `db:"notes"`       // free-form caller note
}

// Stops decodes the stored stop schedule.
func (r Record) Stops() ([]buhlmann.Stop, error) {
	var stops []buhlmann.Stop
	if err := json.Unmarshal([]byte(r.StopsJSON), &stops); err != nil {
		return nil, fmt.Errorf("divelog: decode stops: %w", err)
	}

	return stops, nil
}

// Store is a SQLite-backed dive logbook.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the logbook database at path and runs the
// idempotent schema migration. WAL mode keeps concurrent readers cheap.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("divelog: open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("divelog: migrate: %w", err)
	}

	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS dives (
		id          TEXT PRIMARY KEY,
		saved_at    TIMESTAMP NOT NULL,
		variant     TEXT NOT NULL,
		max_depth   REAL NOT NULL,
		bottom_time REAL NOT NULL,
		o2          REAL NOT NULL,
		he          REAL NOT NULL,
		gf_low      REAL NOT NULL,
		gf_high     REAL NOT NULL,
		runtime_min REAL NOT NULL,
		deco_min    INTEGER NOT NULL,
		stops_json  TEXT NOT NULL,
		notes       TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_dives_saved_at ON dives(saved_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SaveDive stores a computed plan together with the profile that
// produced it and returns the persisted record, ID and timestamp
// assigned.
func (s *Store) SaveDive(p buhlmann.Profile, plan buhlmann.Plan, notes string) (Record, error) {
	stopsJSON, err := json.Marshal(plan.Stops)
	if err != nil {
		return Record{}, fmt.Errorf("divelog: encode stops: %w", err)
	}

	rec := Record{
		ID:         uuid.NewString(),
		SavedAt:    time.Now().UTC(),
		Variant:    string(plan.Variant),
		MaxDepth:   plan.MaxDepth,
		BottomTime: plan.BottomTime,
		O2:         p.Gas.O2,
		He:         p.Gas.He,
		GFLow:      plan.GFLow,
		GFHigh:     plan.GFHigh,
		Runtime:    plan.RuntimeMinutes,
		TotalDeco:  plan.TotalDecompressionMinutes(),
		StopsJSON:  string(stopsJSON),
		Notes:      notes,
	}

	_, err = s.conn.NamedExec(`INSERT INTO dives
		(id, saved_at, variant, max_depth, bottom_time, o2, he,
		 gf_low, gf_high, runtime_min, deco_min, stops_json, notes)
		VALUES (:id, :saved_at, :variant, :max_depth, :bottom_time, :o2, :he,
		 :gf_low, :gf_high, :runtime_min, :deco_min, :stops_json, :notes)`, rec)
	if err != nil {
		return Record{}, fmt.Errorf("divelog: insert dive: %w", err)
	}

	return rec, nil
}

// Dive returns the record with the given ID, or ErrNotFound.
func (s *Store) Dive(id string) (Record, error) {
	var rec Record
	err := s.conn.Get(&rec, "SELECT * FROM dives WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("divelog: read dive: %w", err)
	}

	return rec, nil
}

// RecentDives returns up to limit records, newest first.
func (s *Store) RecentDives(limit int) ([]Record, error) {
	if limit <= 0 {
		return nil, ErrBadLimit
	}

	var recs []Record
	err := s.conn.Select(&recs,
		"SELECT * FROM dives ORDER BY saved_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("divelog: list dives: %w", err)
	}

	return recs, nil
}
