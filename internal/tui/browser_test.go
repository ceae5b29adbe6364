package tui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/auth"
)

func sessionWith(t *testing.T, info *auth.UserInfo) *auth.SessionState {
	t.Helper()
	store := auth.NewTokenStore(auth.NewMemoryStorage())
	if info != nil {
		if err := store.Save("tok", *info); err != nil {
			t.Fatalf("save session: %v", err)
		}
	}
	return auth.NewSessionState(store)
}

func detailModel(t *testing.T, info *auth.UserInfo) Model {
	t.Helper()
	m := NewModel(context.Background(), nil, sessionWith(t, info), api.VacancyFilter{})
	m.detail = &api.Vacancy{
		ID:    5,
		Title: "Go developer",
		Employer: &api.EmployerProfile{
			CompanyName: "Acme",
			User:        &api.User{ID: 7, Username: "acme"},
		},
	}
	m.currentView = ViewDetail
	return m
}

func press(m Model, k string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// TestApplyKeyGating tests that the apply key only produces an apply intent
// when the gating decision offers it.
func TestApplyKeyGating(t *testing.T) {
	// A student gets the apply intent.
	m := detailModel(t, &auth.UserInfo{ID: 3, Username: "ivan", Role: "student"})
	m, _ = press(m, "a")
	if m.result.Intent != IntentApply {
		t.Errorf("Expected IntentApply for student, got %v", m.result.Intent)
	}
	if m.result.Vacancy == nil || m.result.Vacancy.ID != 5 {
		t.Error("Expected selected vacancy to be carried in the result")
	}

	// A visitor gets the login intent instead.
	m = detailModel(t, nil)
	m, _ = press(m, "a")
	if m.result.Intent != IntentLogin {
		t.Errorf("Expected IntentLogin for visitor, got %v", m.result.Intent)
	}

	// A foreign employer gets nothing; the key is inert.
	m = detailModel(t, &auth.UserInfo{ID: 99, Username: "other", Role: "employer"})
	m, _ = press(m, "a")
	if m.result.Intent != IntentNone {
		t.Errorf("Expected no intent for a foreign employer, got %v", m.result.Intent)
	}
	if m.quitting {
		t.Error("Expected the browser to stay open when the key is inert")
	}
}

// TestEditDeleteKeysOwnerOnly tests owner gating on edit and delete.
func TestEditDeleteKeysOwnerOnly(t *testing.T) {
	// The posting employer (user id 7) can edit and delete.
	m := detailModel(t, &auth.UserInfo{ID: 7, Username: "acme", Role: "employer"})
	m, _ = press(m, "e")
	if m.result.Intent != IntentEdit {
		t.Errorf("Expected IntentEdit for the owner, got %v", m.result.Intent)
	}

	m = detailModel(t, &auth.UserInfo{ID: 7, Username: "acme", Role: "employer"})
	m, _ = press(m, "d")
	if m.result.Intent != IntentDelete {
		t.Errorf("Expected IntentDelete for the owner, got %v", m.result.Intent)
	}

	// A student never gets edit or delete.
	m = detailModel(t, &auth.UserInfo{ID: 3, Username: "ivan", Role: "student"})
	m, _ = press(m, "e")
	if m.result.Intent != IntentNone {
		t.Errorf("Expected no edit intent for a student, got %v", m.result.Intent)
	}
}

// TestBackReturnsToList tests esc navigation from detail to list.
func TestBackReturnsToList(t *testing.T) {
	m := detailModel(t, nil)
	m, _ = press(m, "esc")
	if m.currentView != ViewList {
		t.Errorf("Expected ViewList after esc, got %v", m.currentView)
	}
	if m.detail != nil {
		t.Error("Expected detail to be cleared after esc")
	}
}

// TestQuitKey tests that q quits without any intent.
func TestQuitKey(t *testing.T) {
	m := detailModel(t, &auth.UserInfo{ID: 3, Username: "ivan", Role: "student"})
	m, cmd := press(m, "q")
	if !m.quitting {
		t.Error("Expected quitting after q")
	}
	if m.result.Intent != IntentNone {
		t.Errorf("Expected no intent after plain quit, got %v", m.result.Intent)
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
}

// TestDetailViewShowsGatedActions tests that the rendered detail follows the
// session role.
func TestDetailViewShowsGatedActions(t *testing.T) {
	m := detailModel(t, &auth.UserInfo{ID: 3, Username: "ivan", Role: "student"})
	view := m.View()
	if !strings.Contains(view, "Apply") {
		t.Error("Expected student detail view to offer Apply")
	}
	if strings.Contains(view, "Edit vacancy") {
		t.Error("Expected student detail view to hide Edit")
	}

	m = detailModel(t, nil)
	view = m.View()
	if !strings.Contains(view, "Login to apply") {
		t.Error("Expected visitor detail view to prompt for login")
	}
}

// TestErrorMessageBecomesNotice tests that non-auth failures degrade to a
// notice instead of ending the session.
func TestErrorMessageBecomesNotice(t *testing.T) {
	m := detailModel(t, &auth.UserInfo{ID: 3, Username: "ivan", Role: "student"})

	updated, _ := m.Update(errMsg{err: errFake{}})
	m = updated.(Model)
	if m.quitting {
		t.Error("Expected the browser to stay open on a plain error")
	}
	if m.notice == "" {
		t.Error("Expected the error to surface as a notice")
	}
}

type errFake struct{}

func (errFake) Error() string { return "boom" }

// TestFetchHonorsContext tests that fetch commands run on the model's
// context, so quitting the program cancels in-flight requests.
func TestFetchHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := auth.NewTokenStore(auth.NewMemoryStorage())
	gateway := auth.NewGateway(server.URL, time.Second, store)
	client := api.NewClient(server.URL, time.Second, gateway, "/login/")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewModel(ctx, client, auth.NewSessionState(store), api.VacancyFilter{})
	msg := m.loadVacancies()()
	if _, ok := msg.(errMsg); !ok {
		t.Fatalf("expected errMsg for a cancelled context, got %T", msg)
	}

	msg = m.loadVacancy(5)()
	if _, ok := msg.(errMsg); !ok {
		t.Fatalf("expected errMsg for a cancelled context, got %T", msg)
	}
}
