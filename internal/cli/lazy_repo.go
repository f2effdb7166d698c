package cli

import (
	"context"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
)

// lazyPerspectiveRepository opens the SQLite store on the first call.
type lazyPerspectiveRepository struct {
	db   port.DatabaseProvider
	repo repository.PerspectiveRepository
}

var _ repository.PerspectiveRepository = (*lazyPerspectiveRepository)(nil)

func (r *lazyPerspectiveRepository) get(ctx context.Context) (repository.PerspectiveRepository, error) {
	if r.repo != nil {
		return r.repo, nil
	}
	db, err := r.db.DB(ctx)
	if err != nil {
		return nil, err
	}
	r.repo = sqlite.NewPerspectiveRepository(db)
	return r.repo, nil
}

func (r *lazyPerspectiveRepository) SaveAll(ctx context.Context, set *entity.PerspectiveSet) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.SaveAll(ctx, set)
}

func (r *lazyPerspectiveRepository) LoadAll(ctx context.Context) (*entity.PerspectiveSet, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.LoadAll(ctx)
}

func (r *lazyPerspectiveRepository) Save(ctx context.Context, p *entity.Perspective) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, p)
}

func (r *lazyPerspectiveRepository) Delete(ctx context.Context, name string) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, name)
}

func (r *lazyPerspectiveRepository) SetCurrent(ctx context.Context, name string) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.SetCurrent(ctx, name)
}
