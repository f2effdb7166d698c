package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

// Names of the perspectives created by CreateDefaultPerspectives.
const (
	DefaultPerspectiveName = "Default"
	DebugPerspectiveName   = "Debug"
	DesignPerspectiveName  = "Design"
)

// PerspectiveCallback is notified with the name of a saved, loaded or removed perspective.
type PerspectiveCallback func(name string)

// ManagePerspectivesUseCase keeps the named perspective map of one dock manager.
// Perspectives are independent of the live layout: the tree can change
// arbitrarily and a stored perspective is unaffected until re-saved.
type ManagePerspectivesUseCase struct {
	store    port.LayoutStateStore
	repo     repository.PerspectiveRepository
	codec    port.PerspectiveCodec
	preview  port.PreviewRenderer
	autoSave port.AutoSaveScheduler

	perspectives map[string]*entity.Perspective
	current      string
	now          func() time.Time

	onSaved   []PerspectiveCallback
	onLoaded  []PerspectiveCallback
	onRemoved []PerspectiveCallback
}

// NewManagePerspectivesUseCase creates a new perspective manager.
// repo and codec may be nil when bulk persistence or import/export are unused.
func NewManagePerspectivesUseCase(
	store port.LayoutStateStore,
	repo repository.PerspectiveRepository,
	codec port.PerspectiveCodec,
) *ManagePerspectivesUseCase {
	return &ManagePerspectivesUseCase{
		store:        store,
		repo:         repo,
		codec:        codec,
		perspectives: make(map[string]*entity.Perspective),
		now:          time.Now,
	}
}

// SetPreviewRenderer enables preview capture on save.
func (uc *ManagePerspectivesUseCase) SetPreviewRenderer(r port.PreviewRenderer) {
	uc.preview = r
}

// SetAutoSaveScheduler installs the timer used by EnableAutoSave.
func (uc *ManagePerspectivesUseCase) SetAutoSaveScheduler(s port.AutoSaveScheduler) {
	uc.autoSave = s
}

// SetClock overrides the time source used for timestamps.
func (uc *ManagePerspectivesUseCase) SetClock(now func() time.Time) {
	if now != nil {
		uc.now = now
	}
}

// OnPerspectiveSaved registers a callback fired after every successful save.
func (uc *ManagePerspectivesUseCase) OnPerspectiveSaved(cb PerspectiveCallback) {
	uc.onSaved = append(uc.onSaved, cb)
}

// OnPerspectiveLoaded registers a callback fired after every successful load.
func (uc *ManagePerspectivesUseCase) OnPerspectiveLoaded(cb PerspectiveCallback) {
	uc.onLoaded = append(uc.onLoaded, cb)
}

// OnPerspectiveRemoved registers a callback fired after every removal.
func (uc *ManagePerspectivesUseCase) OnPerspectiveRemoved(cb PerspectiveCallback) {
	uc.onRemoved = append(uc.onRemoved, cb)
}

// SavePerspective captures the live layout under name and makes it current.
// An existing perspective is overwritten; its description is kept when
// description is empty.
func (uc *ManagePerspectivesUseCase) SavePerspective(ctx context.Context, name, description string) (*entity.Perspective, error) {
	ctx = logging.WithPerspective(ctx, name)
	log := logging.FromContext(ctx)

	if name == "" {
		return nil, fmt.Errorf("perspective name is required")
	}

	blob, err := uc.store.SaveState()
	if err != nil {
		return nil, fmt.Errorf("failed to capture layout: %w", err)
	}
	if len(blob) == 0 {
		return nil, fmt.Errorf("captured layout is empty")
	}

	now := uc.now()
	p, exists := uc.perspectives[name]
	if !exists {
		p = &entity.Perspective{Name: name, Created: now}
	}
	p.Layout = blob
	p.Modified = now
	if description != "" || !exists {
		p.Description = description
	}
	p.Preview = uc.capturePreview(ctx)

	uc.perspectives[name] = p
	uc.current = name

	log.Info().
		Bool("overwrite", exists).
		Int("layout_bytes", len(blob)).
		Msg("perspective saved")

	for _, cb := range uc.onSaved {
		cb(name)
	}
	return p.Clone(), nil
}

func (uc *ManagePerspectivesUseCase) capturePreview(ctx context.Context) []byte {
	if uc.preview == nil {
		return nil
	}
	img, err := uc.preview.RenderPreview(ctx, uc.store.Snapshot(), uc.store.Bounds())
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to render perspective preview")
		return nil
	}
	return img
}

// LoadPerspective restores the layout stored under name. On any failure the
// live layout and the current marker are left unchanged.
func (uc *ManagePerspectivesUseCase) LoadPerspective(ctx context.Context, name string) error {
	ctx = logging.WithPerspective(ctx, name)
	log := logging.FromContext(ctx)

	p, ok := uc.perspectives[name]
	if !ok {
		return fmt.Errorf("%w: %q", entity.ErrPerspectiveNotFound, name)
	}

	if err := uc.store.RestoreState(ctx, p.Layout); err != nil {
		log.Warn().Err(err).Msg("perspective restore failed")
		return fmt.Errorf("failed to load perspective %q: %w", name, err)
	}

	uc.current = name
	log.Info().Msg("perspective loaded")

	for _, cb := range uc.onLoaded {
		cb(name)
	}
	return nil
}

// ResetToDefault loads the Default perspective when it exists.
func (uc *ManagePerspectivesUseCase) ResetToDefault(ctx context.Context) error {
	if !uc.HasPerspective(DefaultPerspectiveName) {
		return nil
	}
	return uc.LoadPerspective(ctx, DefaultPerspectiveName)
}

// RenamePerspective renames a perspective. The new name must be free.
func (uc *ManagePerspectivesUseCase) RenamePerspective(ctx context.Context, oldName, newName string) error {
	log := logging.FromContext(ctx)

	if newName == "" {
		return fmt.Errorf("new perspective name is required")
	}
	p, ok := uc.perspectives[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", entity.ErrPerspectiveNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, taken := uc.perspectives[newName]; taken {
		return fmt.Errorf("%w: %q already exists", entity.ErrNameConflict, newName)
	}

	delete(uc.perspectives, oldName)
	p.Name = newName
	p.Modified = uc.now()
	uc.perspectives[newName] = p
	if uc.current == oldName {
		uc.current = newName
	}

	log.Info().Str("from", oldName).Str("to", newName).Msg("perspective renamed")
	return nil
}

// RemovePerspective deletes a perspective. Removing the current one clears
// the current marker.
func (uc *ManagePerspectivesUseCase) RemovePerspective(ctx context.Context, name string) error {
	ctx = logging.WithPerspective(ctx, name)
	log := logging.FromContext(ctx)

	if _, ok := uc.perspectives[name]; !ok {
		return fmt.Errorf("%w: %q", entity.ErrPerspectiveNotFound, name)
	}
	delete(uc.perspectives, name)
	if uc.current == name {
		uc.current = ""
	}

	log.Info().Msg("perspective removed")
	for _, cb := range uc.onRemoved {
		cb(name)
	}
	return nil
}

// ExportPerspective writes one perspective as a standalone document.
func (uc *ManagePerspectivesUseCase) ExportPerspective(ctx context.Context, name string, w io.Writer) error {
	if uc.codec == nil {
		return fmt.Errorf("no perspective codec configured")
	}
	p, ok := uc.perspectives[name]
	if !ok {
		return fmt.Errorf("%w: %q", entity.ErrPerspectiveNotFound, name)
	}
	if err := uc.codec.EncodePerspective(w, p); err != nil {
		return fmt.Errorf("failed to export perspective %q: %w", name, err)
	}
	logging.FromContext(ctx).Debug().Str("perspective", name).Msg("perspective exported")
	return nil
}

// ImportPerspective reads a standalone document and stores it under newName
// (or the name it carries when newName is empty). Existing names are never
// overwritten.
func (uc *ManagePerspectivesUseCase) ImportPerspective(ctx context.Context, r io.Reader, newName string) (*entity.Perspective, error) {
	log := logging.FromContext(ctx)

	if uc.codec == nil {
		return nil, fmt.Errorf("no perspective codec configured")
	}
	p, err := uc.codec.DecodePerspective(r)
	if err != nil {
		return nil, fmt.Errorf("failed to import perspective: %w", err)
	}
	if len(p.Layout) == 0 {
		return nil, fmt.Errorf("%w: perspective has no layout", entity.ErrMalformedState)
	}

	name := p.Name
	if newName != "" {
		name = newName
	}
	if name == "" {
		return nil, fmt.Errorf("imported perspective has no name")
	}
	if _, taken := uc.perspectives[name]; taken {
		return nil, fmt.Errorf("%w: %q already exists", entity.ErrNameConflict, name)
	}

	p.Name = name
	if p.Created.IsZero() {
		p.Created = uc.now()
	}
	if p.Modified.IsZero() {
		p.Modified = p.Created
	}
	uc.perspectives[name] = p

	log.Info().Str("perspective", name).Int("layout_bytes", len(p.Layout)).Msg("perspective imported")
	return p.Clone(), nil
}

// SaveAll persists the whole named map plus the current marker.
func (uc *ManagePerspectivesUseCase) SaveAll(ctx context.Context) error {
	if uc.repo == nil {
		return fmt.Errorf("no perspective repository configured")
	}
	set := uc.Set()
	if err := uc.repo.SaveAll(ctx, set); err != nil {
		return fmt.Errorf("failed to save perspectives: %w", err)
	}
	logging.FromContext(ctx).Info().
		Int("count", len(set.Perspectives)).
		Str("current", set.Current).
		Msg("perspectives saved")
	return nil
}

// LoadAll replaces the in-memory map with the persisted one.
// The live layout is not touched.
func (uc *ManagePerspectivesUseCase) LoadAll(ctx context.Context) error {
	if uc.repo == nil {
		return fmt.Errorf("no perspective repository configured")
	}
	set, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load perspectives: %w", err)
	}

	loaded := make(map[string]*entity.Perspective, len(set.Perspectives))
	for _, p := range set.Perspectives {
		if p == nil || p.Name == "" || len(p.Layout) == 0 {
			continue
		}
		loaded[p.Name] = p.Clone()
	}
	uc.perspectives = loaded
	uc.current = ""
	if _, ok := loaded[set.Current]; ok {
		uc.current = set.Current
	}

	logging.FromContext(ctx).Info().
		Int("count", len(loaded)).
		Str("current", uc.current).
		Msg("perspectives loaded")
	return nil
}

// CreateDefaultPerspectives snapshots the live layout as Default, Debug and
// Design. Existing perspectives with those names are overwritten.
func (uc *ManagePerspectivesUseCase) CreateDefaultPerspectives(ctx context.Context) error {
	defaults := []struct{ name, description string }{
		{DefaultPerspectiveName, "Default window layout"},
		{DebugPerspectiveName, "Layout optimized for debugging"},
		{DesignPerspectiveName, "Layout optimized for UI design"},
	}
	for _, d := range defaults {
		if _, err := uc.SavePerspective(ctx, d.name, d.description); err != nil {
			return err
		}
	}
	return nil
}

// EnableAutoSave re-saves the current perspective every interval.
// It never creates new names.
func (uc *ManagePerspectivesUseCase) EnableAutoSave(ctx context.Context, interval time.Duration) error {
	if uc.autoSave == nil {
		return fmt.Errorf("no auto-save scheduler configured")
	}
	if interval <= 0 {
		return fmt.Errorf("auto-save interval must be positive, got %s", interval)
	}
	uc.autoSave.Start(ctx, interval, uc.AutoSave)
	logging.FromContext(ctx).Info().Dur("interval", interval).Msg("perspective auto-save enabled")
	return nil
}

// DisableAutoSave stops the auto-save schedule.
func (uc *ManagePerspectivesUseCase) DisableAutoSave() {
	if uc.autoSave != nil {
		uc.autoSave.Stop()
	}
}

// AutoSaveEnabled reports whether an auto-save schedule is running.
func (uc *ManagePerspectivesUseCase) AutoSaveEnabled() bool {
	return uc.autoSave != nil && uc.autoSave.Running()
}

// ErrNoCurrentPerspective is returned by AutoSave when nothing is current.
var ErrNoCurrentPerspective = errors.New("no current perspective")

// AutoSave re-saves the current perspective under its existing name and
// persists it when a repository is configured.
func (uc *ManagePerspectivesUseCase) AutoSave(ctx context.Context) error {
	name := uc.current
	if name == "" {
		return ErrNoCurrentPerspective
	}
	if _, ok := uc.perspectives[name]; !ok {
		return fmt.Errorf("%w: %q", entity.ErrPerspectiveNotFound, name)
	}

	p, err := uc.SavePerspective(ctx, name, "")
	if err != nil {
		return err
	}
	if uc.repo != nil {
		if err := uc.repo.Save(ctx, p); err != nil {
			return fmt.Errorf("failed to persist perspective %q: %w", name, err)
		}
		if err := uc.repo.SetCurrent(ctx, name); err != nil {
			return fmt.Errorf("failed to persist current perspective: %w", err)
		}
	}
	logging.FromContext(ctx).Debug().Str("perspective", name).Msg("perspective auto-saved")
	return nil
}

// Current returns the current perspective name, or "".
func (uc *ManagePerspectivesUseCase) Current() string {
	return uc.current
}

// HasPerspective reports whether name is stored.
func (uc *ManagePerspectivesUseCase) HasPerspective(name string) bool {
	_, ok := uc.perspectives[name]
	return ok
}

// Perspective returns a copy of the named perspective.
func (uc *ManagePerspectivesUseCase) Perspective(name string) (*entity.Perspective, bool) {
	p, ok := uc.perspectives[name]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Names returns the stored names in lexical order.
func (uc *ManagePerspectivesUseCase) Names() []string {
	names := make([]string, 0, len(uc.perspectives))
	for name := range uc.perspectives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns a summary of every perspective in lexical order.
func (uc *ManagePerspectivesUseCase) List() []entity.PerspectiveInfo {
	infos := make([]entity.PerspectiveInfo, 0, len(uc.perspectives))
	for _, name := range uc.Names() {
		infos = append(infos, uc.perspectives[name].Info(uc.current))
	}
	return infos
}

// Set returns a deep copy of the whole map plus the current marker.
func (uc *ManagePerspectivesUseCase) Set() *entity.PerspectiveSet {
	set := &entity.PerspectiveSet{Current: uc.current}
	for _, name := range uc.Names() {
		set.Perspectives = append(set.Perspectives, uc.perspectives[name].Clone())
	}
	return set
}

// UniqueName returns base when it is free, otherwise the first free base_N
// with N starting at 1.
func (uc *ManagePerspectivesUseCase) UniqueName(base string) string {
	if _, taken := uc.perspectives[base]; !taken {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d", base, n)
		if _, taken := uc.perspectives[candidate]; !taken {
			return candidate
		}
	}
}
