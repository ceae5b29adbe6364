package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/auth"
	"github.com/unijobs/unijobs/internal/authz"
	uniErrors "github.com/unijobs/unijobs/internal/errors"
	"github.com/unijobs/unijobs/internal/render"
)

// ViewType represents the current view being displayed
type ViewType int

const (
	// ViewList is the vacancy list
	ViewList ViewType = iota
	// ViewDetail is a single vacancy
	ViewDetail
)

// Intent is what the user chose to do before the browser quit. The calling
// command runs the matching form and API call after the program exits; the
// browser itself never mutates anything.
type Intent int

const (
	IntentNone Intent = iota
	IntentApply
	IntentEdit
	IntentDelete
	IntentLogin
)

// Result carries the selection out of a finished browse session.
type Result struct {
	Intent  Intent
	Vacancy *api.Vacancy
}

type keyMap struct {
	Open    key.Binding
	Back    key.Binding
	Apply   key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type vacanciesMsg []api.Vacancy

type vacancyMsg *api.Vacancy

type errMsg struct{ err error }

// Model is the vacancy browser state.
type Model struct {
	ctx      context.Context
	client   *api.Client
	session  *auth.SessionState
	renderer *render.Renderer
	filter   api.VacancyFilter

	list   list.Model
	detail *api.Vacancy

	currentView ViewType
	notice      string
	width       int
	height      int
	quitting    bool

	result Result
}

// NewModel creates a vacancy browser over the given client and session. The
// context bounds every fetch the browser makes; quitting cancels in-flight
// requests through it.
func NewModel(ctx context.Context, client *api.Client, session *auth.SessionState, filter api.VacancyFilter) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Vacancies"
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Refresh}
	}

	return Model{
		ctx:      ctx,
		client:   client,
		session:  session,
		renderer: render.NewRenderer(),
		filter:   filter,
		list:     l,
	}
}

// Result returns what the user chose before the program quit.
func (m Model) Result() Result {
	return m.result
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadVacancies()
}

func (m Model) loadVacancies() tea.Cmd {
	return func() tea.Msg {
		vacancies, err := m.client.Vacancies(m.ctx, m.filter)
		if err != nil {
			return errMsg{err}
		}
		return vacanciesMsg(vacancies)
	}
}

func (m Model) loadVacancy(id int64) tea.Cmd {
	return func() tea.Msg {
		vacancy, err := m.client.Vacancy(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return vacancyMsg(vacancy)
	}
}

// decision computes the gating decision for the current detail view. It is
// recomputed on every render so a session change is picked up immediately.
func (m Model) decision() authz.Decision {
	if m.detail == nil {
		return authz.Decision{}
	}
	owner := m.detail.Owner()
	return authz.Decide(m.session.Subject(&owner), authz.ContextVacancyDetail)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case vacanciesMsg:
		items := make([]list.Item, 0, len(msg))
		for _, v := range msg {
			items = append(items, vacancyItem{vacancy: v})
		}
		m.notice = ""
		return m, m.list.SetItems(items)

	case vacancyMsg:
		m.detail = msg
		m.currentView = ViewDetail
		m.notice = ""
		return m, nil

	case errMsg:
		// Redirect-carrying errors end the session: the command layer
		// handles the navigation.
		if _, ok := uniErrors.RedirectOf(msg.err); ok {
			m.result = Result{Intent: IntentLogin}
			m.quitting = true
			return m, tea.Quit
		}
		m.notice = m.renderer.Notice(render.NoticeFromError(msg.err))
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filtering captures all keys until accepted or cancelled.
	if m.currentView == ViewList && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		if m.currentView == ViewDetail {
			m.currentView = ViewList
			m.detail = nil
			return m, nil
		}

	case key.Matches(msg, keys.Refresh):
		return m, m.loadVacancies()

	case key.Matches(msg, keys.Open):
		if m.currentView == ViewList {
			if item, ok := m.list.SelectedItem().(vacancyItem); ok {
				return m, m.loadVacancy(item.vacancy.ID)
			}
		}

	case key.Matches(msg, keys.Apply):
		if m.currentView == ViewDetail {
			d := m.decision()
			switch {
			case d.Allows(authz.ActionApply):
				m.result = Result{Intent: IntentApply, Vacancy: m.detail}
				m.quitting = true
				return m, tea.Quit
			case d.Allows(authz.ActionLoginToApply):
				m.result = Result{Intent: IntentLogin, Vacancy: m.detail}
				m.quitting = true
				return m, tea.Quit
			}
			// Not offered for this subject; the key does nothing.
		}

	case key.Matches(msg, keys.Edit):
		if m.currentView == ViewDetail && m.decision().Allows(authz.ActionEditVacancy) {
			m.result = Result{Intent: IntentEdit, Vacancy: m.detail}
			m.quitting = true
			return m, tea.Quit
		}

	case key.Matches(msg, keys.Delete):
		if m.currentView == ViewDetail && m.decision().Allows(authz.ActionEditVacancy) {
			m.result = Result{Intent: IntentDelete, Vacancy: m.detail}
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.currentView == ViewList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.currentView {
	case ViewDetail:
		body = m.renderer.VacancyDetail(m.detail, m.decision())
	default:
		body = m.list.View()
	}

	if m.notice != "" {
		return m.notice + "\n\n" + body
	}
	return body
}
