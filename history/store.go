// Package history persists concluded tosses to SQLite and summarises recent outcomes.
package history

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/baebae/outcome"
	"github.com/lixenwraith/baebae/toss"
)

// Record is one stored toss
type Record struct {
	ID         string  `db:"id"`
	AtMillis   int64   `db:"at_ms"`
	DurationMs int64   `db:"duration_ms"`
	Kind       string  `db:"kind"`
	LeftFace   string  `db:"left_face"`
	RightFace  string  `db:"right_face"`
	Force      float64 `db:"force"`
	Friction   float64 `db:"friction"`
	Identifier string  `db:"identifier"`
	Divination bool    `db:"divination"`
	TimedOut   bool    `db:"timed_out"`
	Streak     int     `db:"streak"`
}

// At returns the conclusion time
func (r Record) At() time.Time { return time.UnixMilli(r.AtMillis) }

// RecordOf flattens a controller result for storage
func RecordOf(r toss.Result) Record {
	return Record{
		ID:         r.ID.String(),
		AtMillis:   r.At.UnixMilli(),
		DurationMs: r.Duration.Milliseconds(),
		Kind:       r.Kind.String(),
		LeftFace:   r.Left.String(),
		RightFace:  r.Right.String(),
		Force:      r.Params.Force,
		Friction:   r.Params.Friction,
		Identifier: r.Identifier,
		Divination: r.Divination,
		TimedOut:   r.TimedOut,
		Streak:     r.Streak.Count,
	}
}

// Store wraps a SQLite connection for toss history
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tosses (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		at_ms INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		kind TEXT NOT NULL,
		left_face TEXT NOT NULL,
		right_face TEXT NOT NULL,
		force REAL NOT NULL,
		friction REAL NOT NULL,
		identifier TEXT NOT NULL,
		divination INTEGER NOT NULL,
		timed_out INTEGER NOT NULL,
		streak INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tosses_kind ON tosses(kind);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Insert stores one toss
func (s *Store) Insert(ctx context.Context, rec Record) error {
	_, err := s.conn.NamedExecContext(ctx, `INSERT INTO tosses
		(id, at_ms, duration_ms, kind, left_face, right_face, force, friction,
		 identifier, divination, timed_out, streak)
		VALUES (:id, :at_ms, :duration_ms, :kind, :left_face, :right_face, :force, :friction,
		 :identifier, :divination, :timed_out, :streak)`, rec)
	if err != nil {
		return fmt.Errorf("insert toss %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns the most recent n tosses, newest first
func (s *Store) Recent(ctx context.Context, n int) ([]Record, error) {
	var recs []Record
	err := s.conn.SelectContext(ctx, &recs,
		`SELECT id, at_ms, duration_ms, kind, left_face, right_face, force, friction,
		 identifier, divination, timed_out, streak
		 FROM tosses ORDER BY seq DESC LIMIT ?`,
		n,
	)
	return recs, err
}

// Count returns the number of stored tosses
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.conn.GetContext(ctx, &n, "SELECT COUNT(*) FROM tosses")
	return n, err
}

// relTimeZh mirrors humanize's default magnitudes with Chinese units
var relTimeZh = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "剛剛", DivBy: time.Second},
	{D: time.Minute, Format: "%d秒%s", DivBy: time.Second},
	{D: time.Hour, Format: "%d分鐘%s", DivBy: time.Minute},
	{D: humanize.Day, Format: "%d小時%s", DivBy: time.Hour},
	{D: humanize.Week, Format: "%d天%s", DivBy: humanize.Day},
	{D: humanize.Month, Format: "%d週%s", DivBy: humanize.Week},
	{D: humanize.Year, Format: "%d個月%s", DivBy: humanize.Month},
	{D: math.MaxInt64, Format: "%d年%s", DivBy: humanize.Year},
}

// relTime renders the age of t relative to now, e.g. "3分鐘前"
func relTime(t, now time.Time) string {
	return humanize.CustomRelTime(t, now, "前", "後", relTimeZh)
}

// Summary formats the recent window as per-outcome counts plus the lifetime total
func Summary(recent []Record, total int64, now time.Time) string {
	if len(recent) == 0 {
		return "尚無紀錄"
	}

	counts := make(map[string]int, len(outcome.Kinds))
	for _, r := range recent {
		counts[r.Kind]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "近%d次", len(recent))
	// Affirmative first
	for i := len(outcome.Kinds) - 1; i >= 0; i-- {
		k := outcome.Kinds[i]
		fmt.Fprintf(&b, " %s%d", outcome.PlayfulText.Lookup(k).Title, counts[k.String()])
	}
	fmt.Fprintf(&b, " · 共%s次 · %s", humanize.Comma(total), relTime(recent[0].At(), now))
	return b.String()
}
