// Package ui provides the Bubble Tea terminal interface for Skylog.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/mkutlu/skylog/internal/bus"
	"github.com/mkutlu/skylog/internal/journal"
	"github.com/mkutlu/skylog/internal/prefs"
	"github.com/mkutlu/skylog/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewDay View = iota
	ViewPicker
)

// pane identifies the focused pane inside the day view.
type pane int

const (
	paneTimeline pane = iota
	paneForm
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Journal   *journal.Store
	Store     *state.Store
	Bus       *bus.Bus
	Systems   []string
	PollTick  time.Duration
	ThemeName string
	System    string // last used subsystem, preselected in the form
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	journal   *journal.Store
	store     *state.Store
	bus       *bus.Bus
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	focusedPane pane
	showHelp    bool
	showSummary bool
	statusMsg   string

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time
	clock       time.Time
	selectedDay time.Time

	// Timeline state
	timeline   viewport.Model
	followTail bool

	// Form state
	form formState

	// Picker state
	picker pickerState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	now := time.Now()
	return Model{
		ctx:         ctx,
		journal:     opts.Journal,
		store:       opts.Store,
		bus:         opts.Bus,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewDay,
		showSummary: true,
		clock:       now,
		selectedDay: now,
		followTail:  true,
		form:        newFormState(opts.Systems, opts.System),
	}
}

// Run starts the UI and blocks until quit or context cancellation.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(New(opts), tea.WithContext(ctx))

	if opts.Bus != nil {
		RegisterForwarder(opts.Bus, p)
		go func() {
			if err := opts.Bus.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("event bus stopped")
			}
		}()
	}

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancelled by signal; that is a normal close.
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initTimeline()
		}
		m.ready = true
		m.resizePanes()
		m.updateTimeline()
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.updateTimeline()
		return m, nil

	case entryEventMsg:
		// Same-run append observed on the bus; refresh the open day at once.
		if journal.DayKey(m.selectedDay) == msg.Day {
			return m, selectDayCmd(m.journal, m.store, m.selectedDay)
		}
		return m, nil

	case appendResultMsg:
		return m.handleAppendResult(msg)
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
	if m.currentView == ViewPicker {
		return m.renderPicker()
	}
	return m.renderDay()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.currentView == ViewPicker {
		return m.handlePickerKey(msg)
	}
	if m.focusedPane == paneForm {
		return m.handleFormKey(msg)
	}
	return m.handleTimelineKey(msg)
}

// handleTimelineKey processes input while the timeline pane has focus.
func (m Model) handleTimelineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "tab", "n":
		m.focusedPane = paneForm
		m.form.focusMessage()
		return m, nil

	case "d":
		m.openPicker()
		return m, nil

	case "t":
		m.selectedDay = time.Now()
		m.followTail = true
		return m, selectDayCmd(m.journal, m.store, m.selectedDay)

	case "[":
		if day, ok := m.adjacentDay(-1); ok {
			m.selectedDay = day
			return m, selectDayCmd(m.journal, m.store, day)
		}
		return m, nil

	case "]":
		if day, ok := m.adjacentDay(+1); ok {
			m.selectedDay = day
			return m, selectDayCmd(m.journal, m.store, day)
		}
		return m, nil

	case "s":
		m.showSummary = !m.showSummary
		m.resizePanes()
		return m, nil

	case " ":
		m.followTail = !m.followTail
		if m.followTail {
			m.timeline.GotoBottom()
		}
		return m, nil

	case "g", "home":
		m.followTail = false
		m.timeline.GotoTop()
	case "G", "end":
		m.followTail = true
		m.timeline.GotoBottom()
	case "j", "down":
		m.followTail = false
		m.timeline.ScrollDown(1)
	case "k", "up":
		m.followTail = false
		m.timeline.ScrollUp(1)
	case "ctrl+d", "pgdown":
		m.followTail = false
		m.timeline.HalfPageDown()
	case "ctrl+u", "pgup":
		m.followTail = false
		m.timeline.HalfPageUp()
	}

	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.clock = now

	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// handleAppendResult finalizes an append started from the form.
func (m Model) handleAppendResult(msg appendResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, journal.ErrInvalidStatus) {
			m.statusMsg = "entry rejected: unrecognized severity"
		} else {
			m.statusMsg = "append failed: " + msg.err.Error()
		}
		return m, nil
	}

	m.statusMsg = "entry recorded " + msg.entry.Timestamp.Format("15:04:05")
	m.form.clearMessage()
	m.savePrefs()

	// Jump to today so the new entry is on screen even if the operator was
	// browsing history.
	m.selectedDay = time.Now()
	m.followTail = true
	return m, selectDayCmd(m.journal, m.store, m.selectedDay)
}

// adjacentDay returns the next available day in the given direction
// relative to the selected one, based on the dates in the snapshot.
func (m Model) adjacentDay(direction int) (time.Time, bool) {
	dates := m.snapshot.Dates // newest first
	if len(dates) == 0 {
		return time.Time{}, false
	}
	key := journal.DayKey(m.selectedDay)
	for i, d := range dates {
		if journal.DayKey(d) == key {
			j := i - direction // list is descending
			if j < 0 || j >= len(dates) {
				return time.Time{}, false
			}
			return dates[j], true
		}
	}
	// Selected day has no file yet; fall back to the newest persisted day.
	return dates[0], true
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, LastSystem: m.form.selectedSystem()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Warn().Err(err).Msg("saving preferences failed")
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// entryEventMsg mirrors bus.EntryEvent inside the Bubble Tea loop.
type entryEventMsg struct {
	Day   string
	Entry journal.Entry
}

type appendResultMsg struct {
	entry journal.Entry
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// selectDayCmd re-points the shared store at day and reads it back.
func selectDayCmd(j *journal.Store, store *state.Store, day time.Time) tea.Cmd {
	return func() tea.Msg {
		store.SetActiveDay(day)

		dayLog, err := j.ReadDay(day)
		if err != nil {
			store.Update(journal.DayLog{}, nil, err)
			return snapshotMsg(store.Snapshot())
		}
		dates, err := j.Dates()
		if err != nil {
			store.Update(journal.DayLog{}, nil, err)
			return snapshotMsg(store.Snapshot())
		}
		store.Update(dayLog, dates, nil)
		return snapshotMsg(store.Snapshot())
	}
}

// appendEntryCmd persists a new entry for today and announces it.
func appendEntryCmd(j *journal.Store, b *bus.Bus, system, status, message string) tea.Cmd {
	return func() tea.Msg {
		day := time.Now()
		entry, err := j.Append(day, system, status, message)
		if err != nil {
			return appendResultMsg{err: err}
		}
		if b != nil {
			if err := b.PublishEntry(day, entry); err != nil {
				log.Warn().Err(err).Msg("publishing entry event failed")
			}
		}
		return appendResultMsg{entry: entry}
	}
}
