package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"hotel-portal/activity-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const counterTTL = 7 * 24 * time.Hour

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS portal_activity (
			id BIGSERIAL PRIMARY KEY,
			type TEXT NOT NULL,
			hotel_name TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			reference TEXT NOT NULL DEFAULT '',
			amount NUMERIC(12, 2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		"CREATE INDEX IF NOT EXISTS portal_activity_hotel_idx ON portal_activity (hotel_name, created_at DESC)",
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *Store) SaveActivity(ctx context.Context, msg domain.KafkaMessage) error {
	createdAt := msg.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO portal_activity (type, hotel_name, subject, reference, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, msg.Type, msg.HotelName, msg.Subject, msg.Reference, msg.Amount, createdAt)
	return err
}

func (s *Store) RecentActivity(ctx context.Context, hotel string, limit int) ([]domain.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, hotel_name, subject, reference, amount, created_at
		FROM portal_activity
		WHERE hotel_name = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, hotel, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.HotelName, &a.Subject, &a.Reference, &a.Amount, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func DailyKey(day, hotel string) string {
	return fmt.Sprintf("activity:daily:%s:%s", day, hotel)
}

func (s *Store) BumpDailyCounter(ctx context.Context, msg domain.KafkaMessage) error {
	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	key := DailyKey(ts.UTC().Format("2006-01-02"), msg.HotelName)

	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, msg.Type, 1)
	pipe.Expire(ctx, key, counterTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) DailySummary(ctx context.Context, hotel, day string) (map[string]int, error) {
	raw, err := s.rdb.HGetAll(ctx, DailyKey(day, hotel)).Result()
	if err != nil {
		return nil, err
	}
	counts := map[string]int{
		domain.TypeOrderPlaced:    0,
		domain.TypeReorder:        0,
		domain.TypeTicketOpened:   0,
		domain.TypeInvoicePrinted: 0,
	}
	for field, value := range raw {
		n, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		counts[field] = n
	}
	return counts, nil
}
