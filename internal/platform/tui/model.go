package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-darts/internal/board"
	"github.com/vovakirdan/tui-darts/internal/config"
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/engine"
	"github.com/vovakirdan/tui-darts/internal/registry"
	"github.com/vovakirdan/tui-darts/internal/segment"
	"github.com/vovakirdan/tui-darts/internal/stats"
)

// Options describes the game a scoring screen is opened for.
type Options struct {
	// Context bounds the screen's background work. The board loop and the
	// event listener stop when it is done. Defaults to context.Background.
	Context context.Context

	ModeID  string
	Players []string
	Config  config.Config
	Logger  *log.Logger
	Width   int
	Height  int
}

// EngineMsg wraps an engine event delivered to the Bubble Tea loop.
type EngineMsg struct {
	Event engine.Event
}

// boardClosedMsg is sent when the session stops reading the board.
type boardClosedMsg struct {
	err error
}

// Model is the Bubble Tea model of the scoring screen. Typed segment codes
// are pushed onto a manual board source that a session goroutine consumes.
type Model struct {
	mode    registry.ModeInfo
	cfg     config.Config
	session *engine.Session
	source  *board.Manual
	tracker *stats.Tracker
	notes   *Notifier
	ctx     context.Context
	cancel  context.CancelFunc

	input textinput.Model
	help  help.Model
	keys  ScoringKeyMap

	width     int
	height    int
	last      *board.Event
	status    string
	statusErr bool
	statusSeq int

	quitting   bool
	backToMenu bool
}

// NewModel creates a scoring screen for a new game.
func NewModel(opts Options) (Model, error) {
	info, ok := registry.Info(opts.ModeID)
	if !ok {
		return Model{}, fmt.Errorf("tui: unknown mode %q", opts.ModeID)
	}
	names := opts.Players
	if len(names) == 0 {
		names = opts.Config.Players
	}
	initial, err := registry.Create(opts.ModeID, core.NewPlayers(names...), opts.Config)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	tracker := stats.NewTracker(initial)
	notes := NewNotifier(0)
	session, err := engine.NewSession(initial,
		engine.WithLogger(logger.WithPrefix("session")),
		engine.WithHistoryLimit(opts.Config.HistoryLimit),
		engine.WithDedupWindow(opts.Config.DedupWindow),
		engine.WithHandler(func(e engine.Event) {
			tracker.Handle(e)
			notes.Send(e)
		}),
	)
	if err != nil {
		return Model{}, err
	}

	in := textinput.New()
	in.Placeholder = "T20, D16, SB, DB, M"
	in.Prompt = "dart> "
	in.CharLimit = 6
	in.Width = 12
	in.Focus()

	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	source := board.NewManual(0)
	context.AfterFunc(ctx, func() {
		source.Close()
		notes.Close()
	})

	return Model{
		mode:    info,
		cfg:     opts.Config,
		session: session,
		source:  source,
		tracker: tracker,
		notes:   notes,
		ctx:     ctx,
		cancel:  cancel,
		input:   in,
		help:    help.New(),
		keys:    DefaultScoringKeyMap(),
		width:   opts.Width,
		height:  opts.Height,
	}, nil
}

// Init starts the board loop and the event listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.runBoard(), waitForEvent(m.notes))
}

func (m Model) runBoard() tea.Cmd {
	return func() tea.Msg {
		return boardClosedMsg{err: m.session.Run(m.ctx, m.source)}
	}
}

func waitForEvent(n *Notifier) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-n.Events():
			return EngineMsg{Event: e}
		case <-n.Done():
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case EngineMsg:
		next, cmd := m.handleEvent(msg.Event)
		return next, tea.Batch(cmd, waitForEvent(next.notes))

	case boardClosedMsg:
		return m, nil

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		m.stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Throw):
		code := m.input.Value()
		m.input.Reset()
		if strings.TrimSpace(code) == "" {
			return m, nil
		}
		hit, err := segment.Parse(code)
		if err != nil {
			return m.setStatus(fmt.Sprintf("%q is not a segment", code), true)
		}
		ev, ok := m.source.Push(hit)
		if ok {
			m.last = &ev
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.source.Push(segment.Reset())
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if !m.session.Undo() {
			return m.setStatus("nothing to undo", true)
		}
		return m, nil

	case key.Matches(msg, m.keys.Redeliver):
		if m.last != nil {
			m.source.Redeliver(*m.last)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEvent turns engine events into status lines.
func (m Model) handleEvent(e engine.Event) (Model, tea.Cmd) {
	switch ev := e.(type) {
	case engine.HitApplied:
		name := ev.State.PlayerAt(ev.PlayerIndex).Name
		return m.setStatus(fmt.Sprintf("%s: %s", name, ev.Event.Hit.Long), false)
	case engine.HitRejected:
		return m.setStatus(fmt.Sprintf("%s ignored (%s)", ev.Event.Hit.ID, ev.Status), true)
	case engine.TurnCompleted:
		next := core.CurrentPlayer(ev.State)
		return m.setStatus(fmt.Sprintf("%s to throw", next.Name), false)
	case engine.LegFinished:
		name := ev.State.PlayerAt(ev.WinnerIndex).Name
		return m.setStatus(fmt.Sprintf("Leg %d to %s. Tab starts the next leg.", ev.Leg, name), false)
	case engine.GameFinished:
		codes := make([]string, len(ev.Hits))
		for i, h := range ev.Hits {
			codes[i] = h.ID
		}
		return m.setStatus(fmt.Sprintf("Game shot! %s wins with %s.", ev.Winner.Name, strings.Join(codes, " ")), false)
	case engine.Undone:
		return m.setStatus("undone", false)
	}
	return m, nil
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return m, clearStatusCmd(m.statusSeq)
}

// stop ends the board loop; closing the source and notifier follows from
// the cancelled context.
func (m Model) stop() {
	m.cancel()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.session.State()
	h := st.Header()

	var b strings.Builder
	title := fmt.Sprintf("%s  ·  %s", m.mode.Title, progressLine(st))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if st.Mode() == core.ModeZeroOne {
		b.WriteString(subtleStyle.Render(m.cfg.Summary()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(panelStyle.Render(RenderScoreboard(st)))
	b.WriteString("\n\n")

	if h.Finished {
		if w, ok := core.Winner(st); ok {
			b.WriteString(winnerStyle.Render(fmt.Sprintf("%s wins", w.Name)))
			b.WriteString("\n\n")
		}
		b.WriteString(panelStyle.Render(RenderSummary(st.Mode(), m.tracker.Summaries())))
		b.WriteString("\n")
	} else {
		hits := m.session.TurnHits()
		codes := make([]string, len(hits))
		for i, hit := range hits {
			codes[i] = hit.ID
		}
		current := core.CurrentPlayer(st)
		depth, limit := m.session.UndoDepth()
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			titleStyle.Render(current.Name), turnLine(codes),
			subtleStyle.Render(fmt.Sprintf("undo %d/%d", depth, limit))))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		style := okStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the mode menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with a new scoring screen. It reports
// whether the user left for the mode menu.
func Run(opts Options) (bool, error) {
	model, err := NewModel(opts)
	if err != nil {
		return false, err
	}
	defer model.stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
