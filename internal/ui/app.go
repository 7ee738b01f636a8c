package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/eventscout/internal/backend"
	"github.com/five82/eventscout/internal/config"
	"github.com/five82/eventscout/internal/geo"
	"github.com/five82/eventscout/internal/logging"
	"github.com/five82/eventscout/internal/prefs"
	"github.com/five82/eventscout/internal/search"
	"github.com/five82/eventscout/internal/state"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusResults
	focusDetail
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Backend      backend.API
	Orchestrator *search.Orchestrator
	Store        *state.Store
	Config       *config.Config
	Prefs        prefs.Prefs
	PrefsPath    string // empty disables saving
	Logger       *zap.Logger
	PollTick     time.Duration
}

// Model is the root application state for Bubble Tea. Every panel mutation
// happens in Update; network work runs in commands and comes back as
// generation-stamped messages.
type Model struct {
	ctx       context.Context
	api       backend.API
	orch      *search.Orchestrator
	store     *state.Store
	cfg       config.Config
	prefs     prefs.Prefs
	prefsPath string
	logger    *zap.Logger
	pollTick  time.Duration

	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool
	focus  focusArea

	form   searchForm
	panels panels
	gens   generations
	phase  search.Phase

	// location the current results were searched around
	searchLocation    geo.Location
	hasSearchLocation bool

	spinner        spinner.Model
	detailViewport viewport.Model

	snapshot    state.Snapshot
	hasSnapshot bool

	showHelp bool
	logs     logView
	flash    flashMsg
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}
	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		api:       opts.Backend,
		orch:      opts.Orchestrator,
		store:     opts.Store,
		cfg:       cfg,
		prefs:     p,
		prefsPath: opts.PrefsPath,
		logger:    logging.OrNop(opts.Logger),
		pollTick:  pollTick,
		theme:     GetTheme(p.Theme),
		keys:      DefaultKeyMap(),
		form:      newSearchForm(cfg.Categories(), p, cfg.DefaultDistance),
		panels:    newPanels(),
		spinner:   sp,
		logs:      newLogView(),

		detailViewport: viewport.New(0, 0),
	}
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.form.focusField(fieldKeyword)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncDetailViewport()
	m.syncLogViewport()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case locationResolvedMsg:
		return m, m.handleLocationResolved(msg)

	case searchDoneMsg:
		m.handleSearchDone(msg)
		return m, nil

	case detailLoadedMsg:
		m.handleDetailLoaded(msg)
		return m, nil

	case venueLoadedMsg:
		m.handleVenueLoaded(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if m.logs.visible {
			cmds = append(cmds, loadLogsCmd(m.cfg.LogPath, logTailLines))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.hasSnapshot = true
		return m, nil

	case logsLoadedMsg:
		m.logs.setLines(msg.lines, msg.err)
		return m, nil

	case flashMsg:
		m.flash = msg
		return m, nil
	}

	// Cursor blink and other input-internal messages.
	if m.logs.filtering {
		return m, m.logs.updateFilter(msg)
	}
	if m.focus == focusForm {
		return m, m.form.update(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.logs.visible {
		return m.renderMain(m.renderLogs)
	}
	return m.renderMain(m.renderSearch)
}

// busy reports whether any request is outstanding.
func (m Model) busy() bool {
	if m.phase.Busy() {
		return true
	}
	if m.panels.detail != nil && m.panels.detail.loading {
		return true
	}
	return m.panels.venue != nil && m.panels.venue.loading
}

// withSpinner pairs a network command with the loading spinner.
func (m Model) withSpinner(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save preferences", zap.Error(err))
	}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.prefs.Theme = m.theme.Name
	m.savePrefs()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
