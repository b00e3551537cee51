package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

// Repo persists planned travel records and the guide generation log.
// Records are stored as JSON blobs: the assembler treats every leaf as
// opaque text, so there is nothing to normalize into columns.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertRecord(ctx context.Context, destination string, rec domain.TravelRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record for %s: %w", destination, err)
	}
	_, err = r.db.ExecContext(ctx, upsertRecordSQL, destination, string(b))
	return err
}

func (r *Repo) GetRecord(ctx context.Context, destination string) (domain.TravelRecord, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, getRecordSQL, destination).Scan(&raw)
	if err == sql.ErrNoRows {
		return domain.TravelRecord{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.TravelRecord{}, err
	}
	var rec domain.TravelRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.TravelRecord{}, fmt.Errorf("decode record for %s: %w", destination, err)
	}
	return rec, nil
}

func (r *Repo) LogGuide(ctx context.Context, destination, path string) error {
	_, err := r.db.ExecContext(ctx, insertGuideSQL, destination, path)
	return err
}

func (r *Repo) ListGuides(ctx context.Context, limit int) ([]domain.GuideEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, listGuidesSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GuideEntry
	for rows.Next() {
		var e domain.GuideEntry
		var generatedAt sql.NullTime
		if err := rows.Scan(&e.ID, &e.Destination, &e.Path, &generatedAt); err != nil {
			return nil, err
		}
		if generatedAt.Valid {
			e.GeneratedAt = generatedAt.Time.UTC().Format(time.RFC3339)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
