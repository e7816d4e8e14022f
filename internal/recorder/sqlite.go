package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists milestone history to a SQLite database. Every row
// carries the id of the process session that wrote it.
type SQLiteRecorder struct {
	db      *sql.DB
	mu      sync.Mutex
	session string
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

	r := &SQLiteRecorder{db: db, session: uuid.NewString()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s (session %s)", dbPath, r.session)
	return r, nil
}

// Session is the id stamped on rows written by this recorder.
func (r *SQLiteRecorder) Session() string { return r.session }

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS resets (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			session         TEXT NOT NULL,
			kind            TEXT NOT NULL,
			run_number      INTEGER,
			reps_before     REAL,
			lifetime_reps   REAL,
			prestige_count  INTEGER,
			ascension_stars INTEGER,
			coins_earned    INTEGER,
			gym_coins_after INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resets_ts ON resets(timestamp)`,

		`CREATE TABLE IF NOT EXISTS achievements (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			session    TEXT NOT NULL,
			reward_id  TEXT NOT NULL,
			name       TEXT,
			secret     INTEGER,
			run_number INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_achievements_ts ON achievements(timestamp)`,

		`CREATE TABLE IF NOT EXISTS game_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			session    TEXT NOT NULL,
			kind       TEXT NOT NULL,
			event_id   TEXT,
			multiplier REAL,
			amount     REAL,
			run_number INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_game_events_ts ON game_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordReset(evt *ResetEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO resets
		(timestamp, session, kind, run_number, reps_before, lifetime_reps,
		 prestige_count, ascension_stars, coins_earned, gym_coins_after)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), r.session, evt.Kind, evt.RunNumber, evt.RepsBefore, evt.LifetimeReps,
		evt.PrestigeCount, evt.AscensionStars, evt.CoinsEarned, evt.GymCoinsAfter,
	)
	return err
}

func (r *SQLiteRecorder) RecordAchievement(evt *AchievementEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO achievements
		(timestamp, session, reward_id, name, secret, run_number)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), r.session, evt.RewardID, evt.Name, evt.Secret, evt.RunNumber,
	)
	return err
}

func (r *SQLiteRecorder) RecordGameEvent(evt *GameEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO game_events
		(timestamp, session, kind, event_id, multiplier, amount, run_number)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), r.session, evt.Kind, evt.EventID, evt.Multiplier, evt.Amount, evt.RunNumber,
	)
	return err
}

// Count returns the number of rows in table. Only the recorder's own
// tables are accepted.
func (r *SQLiteRecorder) Count(table string) (int, error) {
	switch table {
	case "resets", "achievements", "game_events":
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n)
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
