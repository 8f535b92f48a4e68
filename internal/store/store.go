package store

import (
	"context"
	"database/sql"
	"encoding/json"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mbeltrami/lungomare/internal/engine"
	"github.com/mbeltrami/lungomare/internal/util"
)

var ErrNoChange = errs.New("no change")

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error   { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Open connects to Postgres per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, wrap(err, "open postgres")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, wrap(err, "ping postgres")
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

// RunRecord is the DB-layer view of a run.
type RunRecord struct {
	ID         uuid.UUID
	SeedText   string
	CurrentDay int
	EndingID   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RunRepo basic operations.
type RunRepo struct{ db *DB }

func NewRunRepo(db *DB) *RunRepo { return &RunRepo{db: db} }

func (r *RunRepo) Create(ctx context.Context, seedText string) (RunRecord, error) {
	id := uuid.New()
	now := time.Now().UTC()
	err := r.db.gorm.WithContext(ctx).Exec(
		`INSERT INTO runs(id, seed_text, current_day, ending_id, created_at, updated_at) VALUES (?,?,?,?,?,?)`,
		id, seedText, 1, "", now, now,
	).Error
	if err != nil {
		return RunRecord{}, wrap(err, "create run")
	}
	return RunRecord{ID: id, SeedText: seedText, CurrentDay: 1, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *RunRepo) Get(ctx context.Context, id uuid.UUID) (RunRecord, error) {
	row := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, seed_text, current_day, ending_id, created_at, updated_at FROM runs WHERE id = ?`, id,
	).Row()
	var rr RunRecord
	if err := row.Scan(&rr.ID, &rr.SeedText, &rr.CurrentDay, &rr.EndingID, &rr.CreatedAt, &rr.UpdatedAt); err != nil {
		return RunRecord{}, wrap(err, "get run")
	}
	return rr, nil
}

// Touch records progress on an existing run.
func (r *RunRepo) Touch(ctx context.Context, id uuid.UUID, day int, endingID string) error {
	return wrap(r.db.gorm.WithContext(ctx).Exec(
		`UPDATE runs SET current_day = ?, ending_id = ?, updated_at = ? WHERE id = ?`,
		day, endingID, time.Now().UTC(), id,
	).Error, "touch run")
}

// Recent lists the newest runs, most recently updated first.
func (r *RunRepo) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, seed_text, current_day, ending_id, created_at, updated_at FROM runs ORDER BY updated_at DESC LIMIT ?`, limit,
	).Rows()
	if err != nil {
		return nil, wrap(err, "list runs")
	}
	defer rows.Close()
	var out []RunRecord
	for rows.Next() {
		var rr RunRecord
		if err := rows.Scan(&rr.ID, &rr.SeedText, &rr.CurrentDay, &rr.EndingID, &rr.CreatedAt, &rr.UpdatedAt); err != nil {
			return nil, wrap(err, "scan run")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// SnapshotRepo persists the latest engine snapshot per run.
type SnapshotRepo struct{ db *DB }

func NewSnapshotRepo(db *DB) *SnapshotRepo { return &SnapshotRepo{db: db} }

func (s *SnapshotRepo) Save(ctx context.Context, runID uuid.UUID, snap engine.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return wrap(err, "encode snapshot")
	}
	return wrap(s.db.gorm.WithContext(ctx).Exec(
		`INSERT INTO run_snapshots(run_id, state, saved_at) VALUES (?,?,?)
		 ON CONFLICT (run_id) DO UPDATE SET state = EXCLUDED.state, saved_at = EXCLUDED.saved_at`,
		runID, raw, time.Now().UTC(),
	).Error, "save snapshot")
}

// Load returns the stored snapshot, or nil when the run has none or the
// stored blob no longer decodes. A fresh run is always a valid fallback.
func (s *SnapshotRepo) Load(ctx context.Context, runID uuid.UUID) (*engine.Snapshot, error) {
	row := s.db.gorm.WithContext(ctx).Raw(
		`SELECT state FROM run_snapshots WHERE run_id = ?`, runID,
	).Row()
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(err, "load snapshot")
	}
	var snap engine.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, nil
	}
	return &snap, nil
}

// JournalRepo stores rendered scene and outcome markdown per run.
type JournalRepo struct{ db *DB }

func NewJournalRepo(db *DB) *JournalRepo { return &JournalRepo{db: db} }

type JournalEntry struct {
	ID       uuid.UUID
	RunID    uuid.UUID
	Day      int
	Phase    string
	EventID  string
	Markdown string
}

func (j *JournalRepo) Append(ctx context.Context, tx *gorm.DB, e JournalEntry) (uuid.UUID, error) {
	id := uuid.New()
	err := tx.Exec(
		`INSERT INTO journal_entries(id, run_id, day, phase, event_id, entry_md, created_at) VALUES (?,?,?,?,?,?,?)`,
		id, e.RunID, e.Day, e.Phase, e.EventID, e.Markdown, time.Now().UTC(),
	).Error
	if err != nil {
		return uuid.Nil, wrap(err, "append journal")
	}
	return id, nil
}

func (j *JournalRepo) ForRun(ctx context.Context, runID uuid.UUID, limit int) ([]JournalEntry, error) {
	rows, err := j.db.gorm.WithContext(ctx).Raw(
		`SELECT id, run_id, day, phase, event_id, entry_md FROM journal_entries WHERE run_id = ? ORDER BY created_at DESC LIMIT ?`,
		runID, limit,
	).Rows()
	if err != nil {
		return nil, wrap(err, "list journal")
	}
	defer rows.Close()
	var out []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Day, &e.Phase, &e.EventID, &e.Markdown); err != nil {
			return nil, wrap(err, "scan journal")
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
