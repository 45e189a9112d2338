package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/merge2048/internal/config"
	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/games/t2048"
	"github.com/vovakirdan/merge2048/internal/registry"
	"github.com/vovakirdan/merge2048/internal/render"
	"github.com/vovakirdan/merge2048/internal/storage"
)

// hudWidth is the narrowest screen that still fits the score line.
const hudWidth = 32

// Options configures a game session.
type Options struct {
	Variant  registry.Variant
	Settings config.Settings // Already adjusted for the variant
	Store    *storage.Store  // Optional; nil disables score persistence
	Logger   *log.Logger     // Optional
	Runtime  core.RuntimeConfig
}

// Model is the Bubble Tea model for one game of merge2048.
type Model struct {
	board    *t2048.Board
	variant  registry.Variant
	settings config.Settings
	screen   *core.Screen
	notice   *core.Screen // Shown instead of the board when the terminal is too small
	sink     *render.ScreenSink
	palette  render.Palette
	label    core.Color
	store    *storage.Store
	logger   *log.Logger

	keys       KeyMap
	help       help.Model
	scores     table.Model
	showScores bool

	sessionID string
	best      int
	lastTick  time.Time
	saved     bool // Whether the current session has been stored
	wonLogged bool
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new Bubble Tea model with a freshly seeded board.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := t2048.New(opts.Settings,
		t2048.WithSeed(opts.Runtime.Seed),
		t2048.WithLogger(logger.WithPrefix("engine")),
	)

	w, h := screenSize(opts.Settings)
	screen := core.NewScreen(w, h)

	m := Model{
		board:     board,
		variant:   opts.Variant,
		settings:  opts.Settings,
		screen:    screen,
		notice:    core.NewScreen(max(opts.Runtime.ScreenW, 1), max(opts.Runtime.ScreenH, 1)),
		sink:      render.NewScreenSink(screen, opts.Settings.Geometry.RowScale),
		palette:   render.NewPalette(opts.Settings.Colors),
		label:     core.Color(opts.Settings.Colors.Label),
		store:     opts.Store,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		scores:    newScoreTable(panelScores, false),
		sessionID: uuid.NewString(),
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
	}
	m.best = m.loadBest()

	logger.Info("session started", "variant", m.variant.ID, "session", m.sessionID)
	return m
}

// screenSize returns the cells needed for the HUD and the board.
func screenSize(s config.Settings) (int, int) {
	geo := t2048.NewGeometry(s.Geometry)
	bw, bh := geo.BoardSize(s.Grid.Width, s.Grid.Height)

	cols := int(math.Ceil(2*geo.BoardPadding + bw))
	rows := int(math.Ceil((2*geo.BoardPadding + geo.BoardOffsetY + bh) * s.Geometry.RowScale))
	return max(cols, hudWidth), rows
}

// Board returns the board driven by the model.
func (m Model) Board() *t2048.Board {
	return m.board
}

// SessionID returns the id under which the current game will be stored.
func (m Model) SessionID() string {
	return m.sessionID
}

// Best returns the best score shown in the HUD.
func (m Model) Best() int {
	return m.best
}

// GameOver returns true once the board is settled and no move is possible.
func (m Model) GameOver() bool {
	return !m.board.CanMove()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.settings.TickRate)
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
		m.notice.Resize(max(msg.Width, 1), max(msg.Height, 1))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finishSession()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.finishSession()
		m.board.Reset()
		m.sessionID = uuid.NewString()
		m.saved = false
		m.wonLogged = false
		m.best = max(m.best, m.loadBest())
		if m.showScores {
			m.refreshScores()
		}
		m.logger.Info("session started", "variant", m.variant.ID, "session", m.sessionID)
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		m.showScores = !m.showScores
		if m.showScores {
			m.refreshScores()
		}
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.board.RequestMove(dir)
	}

	return m, nil
}

// handleTick advances animations by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameStep)
	}
	m.lastTick = now

	m.board.Advance(dt)

	if score := m.board.Score(); score > m.best {
		m.best = score
	}

	if m.board.Won() && !m.wonLogged {
		m.wonLogged = true
		m.logger.Info("target reached", "variant", m.variant.ID, "tile", m.board.MaxTile())
	}

	// Save score on game over (once)
	if !m.saved && m.GameOver() {
		m.logger.Info("game over",
			"variant", m.variant.ID,
			"score", m.board.Score(),
			"moves", m.board.Moves(),
			"tiles", m.board.TileCount(),
		)
		m.finishSession()
	}

	return m, tickCmd(m.settings.TickRate)
}

// finishSession stores the current score once. Empty games are not stored.
func (m *Model) finishSession() {
	if m.saved || m.board.Score() == 0 {
		return
	}
	m.saved = true

	if m.store == nil {
		return
	}

	entry := storage.ScoreEntry{
		Variant:   m.variant.ID,
		SessionID: m.sessionID,
		Score:     m.board.Score(),
		MaxTile:   m.board.MaxTile(),
		Moves:     m.board.Moves(),
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("score not saved", "err", err)
		return
	}
	m.logger.Info("score saved", "variant", entry.Variant, "score", entry.Score, "session", entry.SessionID)
}

// loadBest returns the stored best score for the variant, or 0.
func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.variant.ID)
	if err != nil {
		m.logger.Warn("cannot load best score", "err", err)
		return 0
	}
	return best
}

// refreshScores reloads the top scores table.
func (m *Model) refreshScores() {
	if m.store == nil {
		m.scores.SetRows(nil)
		return
	}
	entries, err := m.store.TopScores(m.variant.ID, panelScores)
	if err != nil {
		m.logger.Warn("cannot load top scores", "err", err)
		entries = nil
	}
	m.scores.SetRows(scoreRows(entries))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if msg, small := m.tooSmall(); small {
		return msg
	}

	m.screen.Clear()
	m.drawHUD()
	render.Board(m.sink, m.board, m.palette)
	if m.GameOver() {
		m.drawGameOver()
	}

	out := RenderScreen(m.screen)

	if m.showScores {
		panelStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginLeft(2)
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, panelStyle.Render(m.scoresContent()))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return out + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// tooSmall reports whether the terminal cannot fit the board and help line,
// returning a notice to show instead.
func (m Model) tooSmall() (string, bool) {
	needW, needH := m.screen.Width(), m.screen.Height()+1
	if m.width <= 0 || m.height <= 0 || (m.width >= needW && m.height >= needH) {
		return "", false
	}

	m.notice.Clear()
	m.notice.DrawTextCentered(m.height/2-1, "Terminal too small")
	m.notice.DrawTextCentered(m.height/2, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, m.width, m.height))
	return m.notice.String(), true
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	dir := config.UserConfigPath("screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.variant.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) scoresContent() string {
	if m.store == nil {
		return "Scores are not being saved."
	}
	if len(m.scores.Rows()) == 0 {
		return "No scores recorded yet."
	}
	return m.scores.View()
}

// drawHUD writes the title and score lines above the board.
func (m Model) drawHUD() {
	x := int(math.Round(m.settings.Geometry.BoardPadding))

	m.screen.DrawTextColored(x, 0, fmt.Sprintf("MERGE 2048  %s", m.variant.Title), m.label)
	m.screen.DrawTextColored(x, 1, fmt.Sprintf("Score %d", m.board.Score()), m.palette.TextLight)
	m.screen.DrawTextColored(x+hudWidth/2, 1, fmt.Sprintf("Best %d", m.best), m.palette.TextLight)

	if m.board.Won() {
		m.screen.DrawTextColored(x, 2, fmt.Sprintf("%d reached! Keep going", m.settings.Target), m.palette.TileColor(m.settings.Target))
	}
}

// drawGameOver draws a box over the middle of the board.
func (m Model) drawGameOver() {
	geo := m.board.Geometry()
	bw, bh := geo.BoardSize(m.board.Width(), m.board.Height())
	area := m.sink.Cells(geo.BoardPadding, geo.BoardPadding+geo.BoardOffsetY, bw, bh)

	const boxW, boxH = 20, 4
	cx, cy := area.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	m.screen.FillRect(box, m.palette.Empty)
	m.screen.DrawBox(box)
	for i, line := range []string{"GAME OVER", "r: new game"} {
		col := box.X + (boxW-len(line))/2
		m.screen.DrawTextColored(col, box.Y+1+i, line, m.palette.TextDark)
	}
}

// Run starts the Bubble Tea program for one game session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
