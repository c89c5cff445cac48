package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-darts/internal/config"
)

// App moves between the mode menu and a scoring screen without ending the
// program. It is what an SSH connection runs.
type App struct {
	ctx    context.Context
	cfg    config.Config
	logger *log.Logger
	width  int
	height int

	menu    MenuModel
	scoring *Model
	errText string
	done    bool
}

// NewApp creates an app that starts at the mode menu. Games started from
// it stop their background work when ctx is done.
func NewApp(ctx context.Context, cfg config.Config, logger *log.Logger, width, height int) App {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = log.Default()
	}
	a := App{ctx: ctx, cfg: cfg, logger: logger, width: width, height: height}
	a.menu = a.newMenu()
	return a
}

func (a App) newMenu() MenuModel {
	return NewMenuModel(a.cfg.Players, a.cfg.Summary(), a.width, a.height)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.menu.Init()
}

// Update implements tea.Model. Quit commands from the child models are
// swallowed unless the user asked to leave.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = size.Width, size.Height
	}
	if a.scoring != nil {
		return a.updateScoring(msg)
	}
	return a.updateMenu(msg)
}

func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		a.menu = mm
	}

	switch {
	case a.menu.IsQuitting():
		a.done = true
		return a, tea.Quit
	case a.menu.Selected() == nil:
		return a, cmd
	}

	mode := a.menu.Selected().ID
	sm, err := NewModel(Options{
		Context: a.ctx,
		ModeID:  mode,
		Config:  a.cfg,
		Logger:  a.logger,
		Width:   a.width,
		Height:  a.height,
	})
	if err != nil {
		a.logger.Error("cannot start game", "mode", mode, "err", err)
		a.errText = err.Error()
		a.menu = a.newMenu()
		return a, nil
	}
	a.logger.Info("game started", "mode", mode)
	a.errText = ""
	a.scoring = &sm
	return a, sm.Init()
}

func (a App) updateScoring(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.scoring.Update(msg)
	if sm, ok := next.(Model); ok {
		a.scoring = &sm
	}

	switch {
	case a.scoring.IsQuitting():
		a.done = true
		return a, tea.Quit
	case a.scoring.BackToMenu():
		a.scoring = nil
		a.menu = a.newMenu()
		return a, a.menu.Init()
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	switch {
	case a.done:
		return ""
	case a.scoring != nil:
		return a.scoring.View()
	case a.errText != "":
		return a.menu.View() + "\n" + errorStyle.Render(a.errText)
	}
	return a.menu.View()
}
