package tui

import (
	"context"

	"github.com/Veraticus/caisse/internal/ledger"
	"github.com/Veraticus/caisse/internal/model"
	"github.com/Veraticus/caisse/internal/tui/components"
	"github.com/Veraticus/caisse/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model of the ledger screen. All ledger state lives
// in the session; the model only adds widget and layout state.
type Model struct {
	ctx     context.Context
	session *ledger.Session
	theme   themes.Theme
	form    components.AddTransactionModel
	spinner spinner.Model
	config  Config
	keymap  KeyMap
	tab     Tab
	scroll  int
	width   int
	height  int
}

// NewModel creates the ledger model. The session is enabled only when a
// store is configured.
func NewModel(ctx context.Context, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(ctx, cfg)
}

func newModel(ctx context.Context, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		session: ledger.NewSession(cfg.Store != nil),
		theme:   cfg.Theme,
		form:    components.NewAddTransactionModel(nil, cfg.Theme),
		spinner: s,
		config:  cfg,
		keymap:  DefaultKeyMap(),
		tab:     TabTransactions,
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Session returns the ledger state shown by the model.
func (m Model) Session() *ledger.Session {
	return m.session
}

// Init starts the first full refresh.
func (m Model) Init() tea.Cmd {
	if !m.session.BeginRefresh() {
		return nil
	}
	return tea.Batch(m.refresh(), m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.Resize(min(60, m.width-4))
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		return m.handleRefreshDone(msg)

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case bannerExpiredMsg:
		m.session.ExpireBanner(msg.seq)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.session.Phase() == ledger.PhaseEditing {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleRefreshDone(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	again := m.session.EndRefresh(msg.snapshot, msg.err)
	if msg.err != nil {
		banner, _ := m.session.Banner()
		cmds = append(cmds, m.expireBanner(banner.Seq))
	} else {
		m.form.SetUsers(model.MemberNames(m.session.Members()))
		m.clampScroll()
	}

	if again {
		cmds = append(cmds, m.refresh(), m.spinner.Tick)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		seq := m.session.SubmitFailed(msg.err)
		return m, m.expireBanner(seq)
	}

	m.session.SubmitSucceeded()
	m.form = m.newForm()

	if m.session.BeginRefresh() {
		return m, tea.Batch(m.refresh(), m.spinner.Tick)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m, tea.Quit
	}

	switch m.session.Phase() {
	case ledger.PhaseSubmitting:
		return m, nil
	case ledger.PhaseEditing:
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % 2
		m.scroll = 0

	case key.Matches(msg, m.keymap.TabTransactions):
		m.tab = TabTransactions
		m.scroll = 0

	case key.Matches(msg, m.keymap.TabTeam):
		m.tab = TabTeam
		m.scroll = 0

	case key.Matches(msg, m.keymap.ScrollUp):
		m.scroll--
		m.clampScroll()

	case key.Matches(msg, m.keymap.ScrollDown):
		m.scroll++
		m.clampScroll()

	case key.Matches(msg, m.keymap.NewTransaction):
		if m.tab == TabTransactions && m.session.OpenForm() {
			m.form = m.newForm()
		}

	case key.Matches(msg, m.keymap.Refresh):
		if m.session.BeginRefresh() {
			return m, tea.Batch(m.refresh(), m.spinner.Tick)
		}

	case key.Matches(msg, m.keymap.DismissError):
		m.session.DismissBanner()
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.session.CancelForm()
		m.form = m.newForm()
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		m.session.SetForm(m.form.Values())
		draft, err := m.session.Submit()
		if err != nil {
			return m, nil
		}
		return m, m.submit(draft)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	m.session.SetForm(m.form.Values())
	return m, cmd
}

func (m Model) newForm() components.AddTransactionModel {
	form := components.NewAddTransactionModel(model.MemberNames(m.session.Members()), m.theme)
	form.Resize(min(60, m.width-4))
	return form
}

// clampScroll keeps the scroll offset inside the active list.
func (m *Model) clampScroll() {
	n := len(m.session.Transactions())
	if m.tab == TabTeam {
		n = (len(m.session.Members()) + 1) / 2
	}
	if m.scroll > n-1 {
		m.scroll = n - 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
