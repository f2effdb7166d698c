// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	defaultTickInterval = 250 * time.Millisecond
	newPerspectiveBase  = "Perspective"
	nameCharLimit       = 64
)

// promptMode is the purpose of the open name prompt.
type promptMode int

const (
	promptNone promptMode = iota
	promptSave
	promptRename
)

// PerspectivesModel is the interactive perspective browser. Every engine
// call runs inside Update, on the Bubble Tea goroutine that owns the dock
// manager.
type PerspectivesModel struct {
	// UI components
	help    help.Model
	keys    perspectivesKeyMap
	confirm *styles.ConfirmModel
	input   textinput.Model
	prompt  promptMode

	// State
	items         []entity.PerspectiveInfo
	selectedIdx   int
	expandedIdx   int // -1 means none expanded
	width         int
	height        int
	statusMessage string
	err           error

	// Dependencies
	ctx              context.Context
	perspectives     *usecase.ManagePerspectivesUseCase
	codec            port.LayoutCodec
	persist          func(ctx context.Context) error
	drain            func() int
	tickInterval     time.Duration
	autoSaveInterval time.Duration
	theme            *styles.Theme
}

type perspectivesKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Expand   key.Binding
	Load     key.Binding
	Save     key.Binding
	Update   key.Binding
	Rename   key.Binding
	Delete   key.Binding
	AutoSave key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k perspectivesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Load, k.Save, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k perspectivesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Load, k.Save, k.Update},
		{k.Rename, k.Delete, k.AutoSave},
		{k.Help, k.Quit},
	}
}

func defaultPerspectivesKeyMap() perspectivesKeyMap {
	return perspectivesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("tab", " "),
			key.WithHelp("tab", "show layout"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save as"),
		),
		Update: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "overwrite"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		AutoSave: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto-save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PerspectivesModelConfig holds the browser dependencies.
type PerspectivesModelConfig struct {
	Perspectives *usecase.ManagePerspectivesUseCase
	// Codec decodes stored layouts for the tree view.
	Codec port.LayoutCodec
	// Persist writes the perspective map after every change. Optional.
	Persist func(ctx context.Context) error
	// Drain runs work posted to the UI thread (auto-save ticks). Optional.
	Drain            func() int
	TickInterval     time.Duration
	AutoSaveInterval time.Duration
}

// NewPerspectivesModel creates the perspective browser.
func NewPerspectivesModel(ctx context.Context, theme *styles.Theme, cfg PerspectivesModelConfig) PerspectivesModel {
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = defaultTickInterval
	}

	input := textinput.New()
	input.CharLimit = nameCharLimit
	input.Prompt = "name: "

	m := PerspectivesModel{
		help:             help.New(),
		keys:             defaultPerspectivesKeyMap(),
		input:            input,
		expandedIdx:      -1,
		width:            80,
		height:           24,
		ctx:              ctx,
		perspectives:     cfg.Perspectives,
		codec:            cfg.Codec,
		persist:          cfg.Persist,
		drain:            cfg.Drain,
		tickInterval:     tick,
		autoSaveInterval: cfg.AutoSaveInterval,
		theme:            theme,
	}
	m.refresh()
	return m
}

// tickMsg drives the UI-thread queue.
type tickMsg time.Time

func (m PerspectivesModel) tick() tea.Cmd {
	if m.drain == nil {
		return nil
	}
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m PerspectivesModel) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m PerspectivesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		if n := m.drain(); n > 0 {
			m.refresh()
		}
		return m, m.tick()
	}

	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}
	if m.prompt != promptNone {
		return m.handlePrompt(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m PerspectivesModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if m.confirm.Done() {
		if m.confirm.Result() {
			if name, ok := m.selectedName(); ok {
				m.apply(m.perspectives.RemovePerspective(m.ctx, name), fmt.Sprintf("Removed %s", name))
			}
		}
		m.confirm = nil
	}
	return m, cmd
}

func (m PerspectivesModel) handlePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			m.closePrompt()
			m.statusMessage = "Canceled"
			return m, nil
		case tea.KeyEnter:
			name := strings.TrimSpace(m.input.Value())
			mode := m.prompt
			m.closePrompt()
			if name == "" {
				m.statusMessage = "Name is required"
				return m, nil
			}
			switch mode {
			case promptSave:
				_, err := m.perspectives.SavePerspective(m.ctx, name, "")
				m.apply(err, fmt.Sprintf("Saved %s", name))
			case promptRename:
				if old, ok := m.selectedName(); ok {
					m.apply(m.perspectives.RenamePerspective(m.ctx, old, name),
						fmt.Sprintf("Renamed %s to %s", old, name))
				}
			}
			m.selectByName(name)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PerspectivesModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.items)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		if m.expandedIdx == m.selectedIdx {
			m.expandedIdx = -1
		} else {
			m.expandedIdx = m.selectedIdx
		}
		return m, nil

	case key.Matches(msg, m.keys.Load):
		if name, ok := m.selectedName(); ok {
			m.apply(m.perspectives.LoadPerspective(m.ctx, name), fmt.Sprintf("Loaded %s", name))
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m, m.openPrompt(promptSave, m.perspectives.UniqueName(newPerspectiveBase))

	case key.Matches(msg, m.keys.Update):
		if name, ok := m.selectedName(); ok {
			_, err := m.perspectives.SavePerspective(m.ctx, name, "")
			m.apply(err, fmt.Sprintf("Saved %s", name))
		}
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		if name, ok := m.selectedName(); ok {
			return m, m.openPrompt(promptRename, name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if name, ok := m.selectedName(); ok {
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete perspective %s?", name))
			m.confirm = &confirm
		}
		return m, nil

	case key.Matches(msg, m.keys.AutoSave):
		m.toggleAutoSave()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m *PerspectivesModel) openPrompt(mode promptMode, value string) tea.Cmd {
	m.prompt = mode
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *PerspectivesModel) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.Reset()
}

func (m *PerspectivesModel) toggleAutoSave() {
	if m.perspectives.AutoSaveEnabled() {
		m.perspectives.DisableAutoSave()
		m.statusMessage = "Auto-save off"
		return
	}
	interval := m.autoSaveInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if err := m.perspectives.EnableAutoSave(m.ctx, interval); err != nil {
		m.err = err
		return
	}
	m.statusMessage = fmt.Sprintf("Auto-save every %s", interval)
}

// apply records the outcome of a mutation and persists on success.
func (m *PerspectivesModel) apply(err error, success string) {
	log := logging.FromContext(m.ctx)
	if err != nil {
		log.Warn().Err(err).Msg("perspective operation failed")
		m.err = err
		m.statusMessage = ""
		return
	}
	m.err = nil
	m.statusMessage = success
	m.expandedIdx = -1
	if m.persist != nil {
		if err := m.persist(m.ctx); err != nil {
			log.Error().Err(err).Msg("failed to persist perspectives")
			m.err = err
		}
	}
	m.refresh()
}

func (m *PerspectivesModel) refresh() {
	selected, _ := m.selectedName()
	m.items = m.perspectives.List()
	if m.expandedIdx >= len(m.items) {
		m.expandedIdx = -1
	}
	m.selectByName(selected)
}

func (m *PerspectivesModel) selectByName(name string) {
	for i, info := range m.items {
		if info.Name == name {
			m.selectedIdx = i
			return
		}
	}
	if m.selectedIdx >= len(m.items) {
		m.selectedIdx = max(len(m.items)-1, 0)
	}
}

func (m PerspectivesModel) selectedName() (string, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.items) {
		return "", false
	}
	return m.items[m.selectedIdx].Name, true
}

// View implements tea.Model.
func (m PerspectivesModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(t.Subtle.Render("  No perspectives saved. Press s to save the current layout."))
		b.WriteString("\n")
	} else {
		for i, info := range m.items {
			b.WriteString(m.renderRow(info, i == m.selectedIdx))
			b.WriteString("\n")
			if i == m.expandedIdx {
				b.WriteString(m.renderDetails(info.Name))
			}
		}
	}

	b.WriteString("\n")
	if m.prompt != promptNone {
		style := t.InputFocused
		b.WriteString(style.Render(m.input.View()))
		b.WriteString("\n")
		b.WriteString(t.Subtle.Render("enter confirm • esc cancel"))
		return b.String()
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m PerspectivesModel) renderHeader() string {
	t := m.theme
	title := t.Title.Render("Perspectives")
	stats := t.Subtle.Render(fmt.Sprintf("  %d saved", len(m.items)))
	if current := m.perspectives.Current(); current != "" {
		stats += t.Subtle.Render("  current: ") + t.Highlight.Render(current)
	}
	if m.perspectives.AutoSaveEnabled() {
		stats += "  " + t.MutedBadge("auto-save")
	}
	return title + stats
}

func (m PerspectivesModel) renderRow(info entity.PerspectiveInfo, selected bool) string {
	t := m.theme

	cursor := "  "
	if selected {
		cursor = t.Highlight.Render(styles.IconCursor + " ")
	}

	icon := t.Subtle.Render(styles.IconOther)
	if info.IsCurrent {
		icon = lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconCurrent)
	}

	nameStyle := t.Normal
	if selected {
		nameStyle = t.Highlight
	}

	parts := []string{cursor + icon, nameStyle.Render(info.Name)}
	if info.IsCurrent {
		parts = append(parts, t.CurrentBadge())
	}
	if info.Description != "" {
		parts = append(parts, t.Subtle.Render(info.Description))
	}
	parts = append(parts,
		t.Subtle.Render(styles.RelativeTime(info.Modified)),
		t.SizeBadge(info.LayoutSize))
	if info.HasPreview {
		parts = append(parts, t.MutedBadge("preview"))
	}
	return strings.Join(parts, " ")
}

func (m PerspectivesModel) renderDetails(name string) string {
	t := m.theme
	p, ok := m.perspectives.Perspective(name)
	if !ok {
		return ""
	}
	if m.codec == nil {
		return t.Subtle.Render("    (no layout codec)") + "\n"
	}
	state, err := m.codec.Decode(p.Layout)
	if err == nil {
		err = state.Validate()
	}
	if err != nil {
		if errors.Is(err, entity.ErrMalformedState) {
			return t.ErrorStyle.Render("    malformed layout") + "\n"
		}
		return t.ErrorStyle.Render("    "+err.Error()) + "\n"
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(t.RenderLayout(state), "\n"), "\n") {
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
