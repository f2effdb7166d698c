package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	metaCurrent = "current"
	timeLayout  = time.RFC3339Nano
)

// ErrEmptyName is returned when saving a perspective without a name.
var ErrEmptyName = errors.New("perspective name cannot be empty")

type perspectiveRepo struct {
	db *sql.DB
}

// NewPerspectiveRepository returns a repository backed by db.
// db must have been opened with NewConnection.
func NewPerspectiveRepository(db *sql.DB) repository.PerspectiveRepository {
	return &perspectiveRepo{db: db}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *perspectiveRepo) SaveAll(ctx context.Context, set *entity.PerspectiveSet) error {
	log := logging.FromContext(ctx)
	if set == nil {
		set = &entity.PerspectiveSet{}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save all: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM perspectives`); err != nil {
		return fmt.Errorf("clear perspectives: %w", err)
	}
	for _, p := range set.Perspectives {
		if err := upsert(ctx, tx, p); err != nil {
			return err
		}
	}
	if err := setMeta(ctx, tx, metaCurrent, set.Current); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save all: %w", err)
	}

	log.Debug().
		Int("count", len(set.Perspectives)).
		Str("current", set.Current).
		Msg("perspectives saved")
	return nil
}

func (r *perspectiveRepo) LoadAll(ctx context.Context) (*entity.PerspectiveSet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, description, layout, preview, created_at, modified_at
		FROM perspectives
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query perspectives: %w", err)
	}
	defer func() { _ = rows.Close() }()

	set := &entity.PerspectiveSet{}
	for rows.Next() {
		p, err := scanPerspective(rows)
		if err != nil {
			return nil, err
		}
		set.Perspectives = append(set.Perspectives, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate perspectives: %w", err)
	}

	var current string
	err = r.db.QueryRowContext(ctx, `SELECT value FROM perspective_meta WHERE key = ?`, metaCurrent).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("query current perspective: %w", err)
	}
	set.Current = current
	return set, nil
}

func (r *perspectiveRepo) Save(ctx context.Context, p *entity.Perspective) error {
	if err := upsert(ctx, r.db, p); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("perspective", p.Name).Msg("perspective saved")
	return nil
}

func (r *perspectiveRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM perspectives WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete perspective %q: %w", name, err)
	}
	return nil
}

func (r *perspectiveRepo) SetCurrent(ctx context.Context, name string) error {
	return setMeta(ctx, r.db, metaCurrent, name)
}

func upsert(ctx context.Context, db execer, p *entity.Perspective) error {
	if p == nil || p.Name == "" {
		return ErrEmptyName
	}
	layout := p.Layout
	if layout == nil {
		layout = []byte{}
	}
	var preview any
	if len(p.Preview) > 0 {
		preview = p.Preview
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO perspectives (name, description, layout, preview, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			layout = excluded.layout,
			preview = excluded.preview,
			created_at = excluded.created_at,
			modified_at = excluded.modified_at`,
		p.Name,
		p.Description,
		layout,
		preview,
		p.Created.UTC().Format(timeLayout),
		p.Modified.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save perspective %q: %w", p.Name, err)
	}
	return nil
}

func setMeta(ctx context.Context, db execer, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO perspective_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func scanPerspective(rows *sql.Rows) (*entity.Perspective, error) {
	var (
		p                 entity.Perspective
		preview           []byte
		created, modified string
	)
	if err := rows.Scan(&p.Name, &p.Description, &p.Layout, &preview, &created, &modified); err != nil {
		return nil, fmt.Errorf("scan perspective: %w", err)
	}
	var err error
	if p.Created, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("perspective %q: bad created time: %w", p.Name, err)
	}
	if p.Modified, err = time.Parse(timeLayout, modified); err != nil {
		return nil, fmt.Errorf("perspective %q: bad modified time: %w", p.Name, err)
	}
	if len(preview) > 0 {
		p.Preview = preview
	}
	return &p, nil
}
