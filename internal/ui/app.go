package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/heroboard/internal/config"
	"github.com/yildizm/heroboard/internal/emoji"
	"github.com/yildizm/heroboard/internal/intent"
	"github.com/yildizm/heroboard/internal/logger"
	"github.com/yildizm/heroboard/internal/runtime"
	"github.com/yildizm/heroboard/internal/store"
	"github.com/yildizm/heroboard/internal/ui/components"
	"github.com/yildizm/heroboard/internal/view"
)

// Model is the hero page. Page state lives in the session; the model only
// holds cursor positions, terminal size and styling.
type Model struct {
	session *runtime.Session
	styles  *Styles
	spinner spinner.Model
	list    *components.HeroList
	editor  *components.AbilityEditor
	log     *logger.Logger

	startPath string
	width     int
	height    int
	searching bool
	showHelp  bool
	quitting  bool
	notice    string
}

// NewModel creates the page model. Effects started by the page are bounded by ctx.
func NewModel(ctx context.Context, opts Options) *Model {
	log := opts.Runtime.Logger
	if log == nil {
		log = logger.NewNop()
	}

	theme, ok := ThemeByName(opts.Theme)
	if !ok {
		log.Warn("unknown theme %q, using default", opts.Theme)
	}
	styles := NewStyles(theme)

	m := &Model{
		session: runtime.NewSession(ctx, opts.Runtime),
		styles:  styles,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.Spinner),
		),
		list:      components.NewHeroList(emoji.GetEmoji("list")+" Heroes", 60, 20),
		editor:    components.NewAbilityEditor(20),
		log:       log.WithComponent("ui"),
		startPath: opts.Path,
	}
	if m.startPath == "" {
		m.startPath = m.session.Prefix()
	}

	m.session.OnApply(m.onApply)
	return m
}

// onApply keeps the components in step with what reaches the store
func (m *Model) onApply(in intent.Intent, _ store.State) {
	switch in := in.(type) {
	case intent.LoadListOK:
		m.list.SetItems(in.Heroes)
		if id := m.session.View().ActiveHeroID; id != "" {
			m.list.SelectID(id)
		}
	case intent.LoadProfileOK:
		m.editor.Reset(in.HeroID, in.Profile)
	}
}

// Init opens the start route
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.navigate(m.startPath), m.spinner.Tick)
}

// Update handles messages and navigation
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.session.Update(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)
	}

	return m, nil
}

// Session exposes the page session
func (m *Model) Session() *runtime.Session {
	return m.session
}

// navigate moves to path and points the list cursor at the opened hero
func (m *Model) navigate(path string) tea.Cmd {
	m.notice = ""
	cmd := m.session.Navigate(path)
	if id := m.session.View().ActiveHeroID; id != "" {
		m.list.SelectID(id)
	}
	return cmd
}

// handleWindowResize handles window resize events
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.list.Width = min(msg.Width-4, 60)
	m.list.Height = max(msg.Height/2, 6)
	m.editor.BarWidth = max(min(msg.Width-30, 30), 5)
	return m, nil
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.handleQuit()
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m.handleQuit()
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "x":
		return m, m.session.Dispatch(intent.ClearError{})
	case "r":
		return m.handleReload()
	}

	if m.session.View().HasActiveHero() {
		return m.handleProfileKey(msg)
	}
	return m.handleListKey(msg)
}

// handleQuit handles quit commands
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleReload refetches what the current page shows
func (m *Model) handleReload() (tea.Model, tea.Cmd) {
	if id := m.session.View().ActiveHeroID; id != "" {
		return m, m.session.Dispatch(intent.LoadProfile{HeroID: id})
	}
	return m, m.session.Dispatch(intent.LoadList{})
}

// handleListKey handles keys on the hero list page
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.list.MoveUp()
	case "down", "j":
		m.list.MoveDown()
	case "/":
		m.searching = true
		m.list.SetSearch("")
	case "enter", " ":
		if h, ok := m.list.SelectedHero(); ok {
			return m, m.navigate(view.RouteFor(m.session.Prefix(), h.ID))
		}
	}
	return m, nil
}

// handleProfileKey handles keys while a hero profile is open
func (m *Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	profile := m.session.State().Ability

	switch msg.String() {
	case "esc", "backspace":
		return m, m.navigate(m.session.Prefix())
	case "up", "k":
		m.editor.MoveUp()
	case "down", "j":
		m.editor.MoveDown(profile)
	case "right", "l", "+", "=":
		return m.adjust(1)
	case "left", "h", "-":
		return m.adjust(-1)
	case "tab":
		// step to the next hero without leaving the profile page
		m.list.MoveDown()
		if h, ok := m.list.SelectedHero(); ok {
			return m, m.navigate(view.RouteFor(m.session.Prefix(), h.ID))
		}
	}
	return m, nil
}

// adjust edits the selected ability and dispatches the edited profile
func (m *Model) adjust(delta int) (tea.Model, tea.Cmd) {
	heroID := m.session.View().ActiveHeroID
	if m.editor.HeroID != heroID {
		m.notice = "Profile is still loading"
		return m, nil
	}

	next, err := m.editor.Adjust(m.session.State().Ability, delta)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}

	m.notice = ""
	return m, m.session.Dispatch(intent.EditProfile{HeroID: heroID, Profile: next})
}

// handleSearchKey edits the list search query
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	query := m.list.SearchQuery()

	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.list.SetSearch("")
	case tea.KeyEnter:
		m.searching = false
	case tea.KeyBackspace:
		if query != "" {
			r := []rune(query)
			m.list.SetSearch(string(r[:len(r)-1]))
		}
	case tea.KeyRunes, tea.KeySpace:
		m.list.SetSearch(query + string(msg.Runes))
	}
	return m, nil
}

// handleConfigReload applies the live-reloadable settings
func (m *Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("config reload failed: %v", msg.Err)
		m.notice = "Config reload failed: " + msg.Err.Error()
		return m, nil
	}

	cfg := msg.Config
	theme, ok := ThemeByName(cfg.UI.Theme)
	if !ok {
		m.log.Warn("unknown theme %q, using default", cfg.UI.Theme)
	}
	m.styles = NewStyles(theme)
	m.spinner.Style = m.styles.Spinner
	m.session.SetDismissDelay(cfg.UI.ErrorDismissDelay)
	emoji.SetEmojiDisabled(cfg.UI.NoEmoji)

	m.log.Info("config reloaded: theme=%s dismiss_delay=%s", theme.Name, cfg.UI.ErrorDismissDelay)
	m.notice = "Config reloaded"
	return m, nil
}

// View renders the page
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	vs := m.session.View()
	st := m.session.State()
	s := m.styles

	sections := []string{
		s.Render(s.Title, vs.Title) + " " + s.Render(s.Muted, m.session.Path()),
	}

	if vs.ShowErrorBanner {
		sections = append(sections, s.Render(s.Banner,
			fmt.Sprintf("%s %s  (x to dismiss)", emoji.GetEmoji("error"), vs.BannerText)))
	}

	sections = append(sections, "", m.list.Render(s.Palette(), vs.ActiveHeroID))

	if vs.HasActiveHero() {
		sections = append(sections, "", m.renderProfile(vs, st))
	}

	if vs.ShowLoadingOverlay {
		sections = append(sections, "", s.Render(s.Overlay, m.spinner.View()+" Loading..."))
	}

	if m.searching {
		sections = append(sections, "", s.Render(s.Subtitle, "/"+m.list.SearchQuery()+"█"))
	}

	if m.notice != "" {
		sections = append(sections, "", s.Render(s.Muted, m.notice))
	}

	sections = append(sections, "", m.renderHelp(vs))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		return s.Frame.Width(max(m.width-2, 20)).Render(content)
	}
	return content
}

func (m *Model) renderProfile(vs view.State, st store.State) string {
	s := m.styles
	name := vs.ActiveHeroID
	for _, h := range st.Heroes {
		if h.ID == vs.ActiveHeroID {
			name = h.Name
			break
		}
	}

	header := s.Render(s.Subtitle, fmt.Sprintf("%s %s", emoji.GetEmoji("profile"), name))
	if m.editor.HeroID != vs.ActiveHeroID {
		return lipgloss.JoinVertical(lipgloss.Left, header, s.Render(s.Muted, "Loading abilities..."))
	}

	label := func(ability string) string {
		if emoji.Has(ability) && !emoji.IsEmojiDisabled() {
			return emoji.GetEmoji(ability) + " " + ability
		}
		return ability
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.editor.Render(s.Palette(), st.Ability, label))
}

func (m *Model) renderHelp(vs view.State) string {
	var keys []string
	switch {
	case m.searching:
		keys = []string{"type to filter", "enter keep", "esc clear"}
	case vs.HasActiveHero():
		keys = []string{"↑↓ ability", "←→ adjust", "tab next hero", "esc back", "r reload"}
	default:
		keys = []string{"↑↓ move", "enter open", "/ search", "r reload"}
	}
	keys = append(keys, "x dismiss", "q quit")

	if m.showHelp {
		return m.styles.Render(m.styles.Help, strings.Join(keys, "\n"))
	}
	return m.styles.Render(m.styles.Help, strings.Join(keys, " • "))
}

// Run runs the hero page until the user quits or ctx is done
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.WatchConfig != "" {
		go func() {
			err := config.Watch(ctx, opts.WatchConfig, func(cfg *config.Config, err error) {
				p.Send(ConfigReloadedMsg{Config: cfg, Err: err})
			})
			if err != nil {
				model.log.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
