package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists check-ins in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_checkin (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			checkin_date DATE NOT NULL,
			emotion TEXT NOT NULL DEFAULT '',
			energy_level INT NOT NULL,
			sleep_quality INT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, checkin_date)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_daily_checkin_user_date ON daily_checkin (user_id, checkin_date DESC);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresStore) Upsert(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	row := s.pool.QueryRow(ctx,
		`INSERT INTO daily_checkin (id, user_id, checkin_date, emotion, energy_level, sleep_quality, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 ON CONFLICT (user_id, checkin_date) DO UPDATE SET
			emotion = EXCLUDED.emotion,
			energy_level = EXCLUDED.energy_level,
			sleep_quality = EXCLUDED.sleep_quality,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
		 RETURNING id, created_at, updated_at`,
		rec.ID, rec.UserID, rec.Date, rec.Emotion, rec.EnergyLevel, rec.SleepQuality, rec.Notes, now,
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return Record{}, fmt.Errorf("upsert checkin: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) FindByUserAndDate(ctx context.Context, userID, date string) (Record, bool, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, user_id, to_char(checkin_date, 'YYYY-MM-DD'), emotion, energy_level, sleep_quality, notes, created_at, updated_at
		 FROM daily_checkin WHERE user_id=$1 AND checkin_date=$2`,
		userID, date,
	)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("find checkin: %w", err)
	}
	return rec, true, nil
}

func (s *PostgresStore) FindByUser(ctx context.Context, userID string, lastDays int) ([]Record, error) {
	query := `SELECT id, user_id, to_char(checkin_date, 'YYYY-MM-DD'), emotion, energy_level, sleep_quality, notes, created_at, updated_at
		 FROM daily_checkin WHERE user_id=$1`
	args := []any{userID}
	if lastDays > 0 {
		query += ` AND checkin_date >= CURRENT_DATE - $2::int`
		args = append(args, lastDays)
	}
	query += ` ORDER BY checkin_date DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query checkins: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checkin row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkin rows: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID, date string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM daily_checkin WHERE user_id=$1 AND checkin_date=$2`,
		userID, date,
	)
	if err != nil {
		return false, fmt.Errorf("delete checkin: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Date,
		&rec.Emotion,
		&rec.EnergyLevel,
		&rec.SleepQuality,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}
