package perspectivexml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// FileRepository stores every perspective in one <Perspectives> XML file.
// Each write replaces the file atomically.
type FileRepository struct {
	path  string
	codec *Codec
}

var _ repository.PerspectiveRepository = (*FileRepository)(nil)

// NewFileRepository returns a repository backed by the file at path.
// The file is created on first write.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path, codec: NewCodec(true)}
}

// Path returns the backing file.
func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) SaveAll(ctx context.Context, set *entity.PerspectiveSet) error {
	if set == nil {
		set = &entity.PerspectiveSet{}
	}
	sorted := &entity.PerspectiveSet{Current: set.Current}
	for _, p := range set.Perspectives {
		if p != nil {
			sorted.Perspectives = append(sorted.Perspectives, p)
		}
	}
	sortByName(sorted.Perspectives)
	return r.write(ctx, sorted)
}

func (r *FileRepository) LoadAll(ctx context.Context) (*entity.PerspectiveSet, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.FromContext(ctx).Debug().Str("path", r.path).Msg("no perspective file yet")
		return &entity.PerspectiveSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read perspectives: %w", err)
	}
	set, err := r.codec.DecodeSet(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	sortByName(set.Perspectives)
	return set, nil
}

func (r *FileRepository) Save(ctx context.Context, p *entity.Perspective) error {
	if p == nil || p.Name == "" {
		return fmt.Errorf("perspective name cannot be empty")
	}
	set, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range set.Perspectives {
		if existing.Name == p.Name {
			set.Perspectives[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		set.Perspectives = append(set.Perspectives, p)
	}
	return r.SaveAll(ctx, set)
}

func (r *FileRepository) Delete(ctx context.Context, name string) error {
	set, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	kept := set.Perspectives[:0]
	for _, p := range set.Perspectives {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(set.Perspectives) {
		return nil
	}
	set.Perspectives = kept
	return r.write(ctx, set)
}

func (r *FileRepository) SetCurrent(ctx context.Context, name string) error {
	set, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	set.Current = name
	return r.write(ctx, set)
}

func (r *FileRepository) write(ctx context.Context, set *entity.PerspectiveSet) error {
	var buf bytes.Buffer
	if err := r.codec.EncodeSet(&buf, set); err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create perspective directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".perspectives-*.xml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write perspectives: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod perspectives: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close perspectives: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace perspectives: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", r.path).
		Int("count", len(set.Perspectives)).
		Msg("perspective file written")
	return nil
}

func sortByName(ps []*entity.Perspective) {
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
}
