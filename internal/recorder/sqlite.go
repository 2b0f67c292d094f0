package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists watcher history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, now: time.Now}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS chart_evaluations (
			id             TEXT PRIMARY KEY,
			timestamp      INTEGER NOT NULL,
			profile        TEXT NOT NULL,
			source         TEXT,
			ascendant_sign TEXT,
			moon_nakshatra TEXT,
			lineage        TEXT,
			yoga_count     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chart_profile_ts ON chart_evaluations(profile, timestamp)`,

		`CREATE TABLE IF NOT EXISTS dasha_transitions (
			id           TEXT PRIMARY KEY,
			timestamp    INTEGER NOT NULL,
			profile      TEXT NOT NULL,
			lineage      TEXT NOT NULL,
			level        TEXT,
			planet       TEXT,
			period_start INTEGER,
			period_end   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transition_profile_ts ON dasha_transitions(profile, timestamp)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id        TEXT PRIMARY KEY,
			timestamp INTEGER NOT NULL,
			profile   TEXT,
			chat_id   TEXT,
			kind      TEXT,
			delivered INTEGER,
			error     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notification_ts ON notifications(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordChart(evt *ChartEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO chart_evaluations
		(id, timestamp, profile, source, ascendant_sign, moon_nakshatra, lineage, yoga_count)
		VALUES (?,?,?,?,?,?,?,?)`,
		uuid.NewString(), r.now().UnixNano(), key(evt.Profile), evt.Source,
		evt.AscendantSign, evt.MoonNakshatra, evt.Lineage, evt.YogaCount,
	)
	return err
}

func (r *SQLiteRecorder) RecordTransition(evt *TransitionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO dasha_transitions
		(id, timestamp, profile, lineage, level, planet, period_start, period_end)
		VALUES (?,?,?,?,?,?,?,?)`,
		uuid.NewString(), r.now().UnixNano(), key(evt.Profile), evt.Lineage,
		evt.Level, evt.Planet, evt.Start.Unix(), evt.End.Unix(),
	)
	return err
}

func (r *SQLiteRecorder) RecordNotification(evt *NotificationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO notifications
		(id, timestamp, profile, chat_id, kind, delivered, error)
		VALUES (?,?,?,?,?,?,?)`,
		uuid.NewString(), r.now().UnixNano(), key(evt.Profile), evt.ChatID,
		evt.Kind, evt.Delivered, evt.Error,
	)
	return err
}

// RecentTransitions returns up to limit transitions for a profile, newest first.
func (r *SQLiteRecorder) RecentTransitions(profile string, limit int) ([]Transition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(`SELECT id, timestamp, profile, lineage, level, planet, period_start, period_end
		FROM dasha_transitions WHERE profile = ? ORDER BY timestamp DESC LIMIT ?`,
		key(profile), limit)
	if err != nil {
		return nil, fmt.Errorf("query transitions: %w", err)
	}
	defer rows.Close()

	var out []Transition
	for rows.Next() {
		var (
			t          Transition
			ts         int64
			start, end int64
		)
		if err := rows.Scan(&t.ID, &ts, &t.Profile, &t.Lineage, &t.Level, &t.Planet, &start, &end); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		t.RecordedAt = time.Unix(0, ts)
		t.Start = time.Unix(start, 0).UTC()
		t.End = time.Unix(end, 0).UTC()
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func key(profile string) string { return strings.ToLower(strings.TrimSpace(profile)) }
