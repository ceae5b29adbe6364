package authz

import "testing"

var mutatingActions = []Action{ActionApply, ActionEditVacancy, ActionDeleteVacancy}

// Unauthenticated subjects must never see an edit, delete, or apply
// affordance, whatever role string is left lying around in storage.
func TestDecide_UnauthenticatedNeverMutates(t *testing.T) {
	roles := []Role{RoleStudent, RoleEmployer, RoleAdmin, RoleUnknown}
	contexts := []ScreenContext{ContextNavigation, ContextVacancyDetail, ContextVacancyRow}

	for _, role := range roles {
		for _, ctx := range contexts {
			d := Decide(Subject{Authenticated: false, Role: role, Owner: false}, ctx)
			for _, a := range mutatingActions {
				if d.Allows(a) {
					t.Errorf("unauthenticated %s in %s was offered %s", role, ctx, a)
				}
			}
		}
	}
}

func TestDecide_Navigation(t *testing.T) {
	cases := []struct {
		name    string
		subject Subject
		want    []Action
		absent  []Action
	}{
		{
			name:    "unauthenticated sees login only",
			subject: Subject{},
			want:    []Action{ActionNavLogin},
			absent:  []Action{ActionNavStudentDashboard, ActionNavEmployerDashboard, ActionNavApplications, ActionNavLogout},
		},
		{
			name:    "student sees own dashboard",
			subject: Subject{Authenticated: true, Role: RoleStudent},
			want:    []Action{ActionNavStudentDashboard, ActionNavLogout},
			absent:  []Action{ActionNavEmployerDashboard, ActionNavApplications, ActionNavLogin},
		},
		{
			name:    "employer sees dashboard and applications",
			subject: Subject{Authenticated: true, Role: RoleEmployer},
			want:    []Action{ActionNavEmployerDashboard, ActionNavApplications, ActionNavLogout},
			absent:  []Action{ActionNavStudentDashboard, ActionNavLogin},
		},
		{
			name:    "admin keeps all links",
			subject: Subject{Authenticated: true, Role: RoleAdmin},
			want:    []Action{ActionNavStudentDashboard, ActionNavEmployerDashboard, ActionNavApplications, ActionNavLogout},
		},
		{
			name:    "unknown role keeps all links",
			subject: Subject{Authenticated: true, Role: RoleUnknown},
			want:    []Action{ActionNavStudentDashboard, ActionNavEmployerDashboard, ActionNavApplications, ActionNavLogout},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.subject, ContextNavigation)
			for _, a := range tc.want {
				if !d.Allows(a) {
					t.Errorf("expected %s to be visible", a)
				}
			}
			for _, a := range tc.absent {
				if d.Allows(a) {
					t.Errorf("expected %s to be hidden", a)
				}
			}
		})
	}
}

func TestDecide_VacancyDetail(t *testing.T) {
	cases := []struct {
		name    string
		subject Subject
		primary Action
	}{
		{"unauthenticated gets login link", Subject{}, ActionLoginToApply},
		{"student gets apply", Subject{Authenticated: true, Role: RoleStudent}, ActionApply},
		{"owner gets edit", Subject{Authenticated: true, Role: RoleEmployer, Owner: true}, ActionEditVacancy},
		{"non-owner employer gets no primary", Subject{Authenticated: true, Role: RoleEmployer}, Action("")},
		{"admin gets no primary", Subject{Authenticated: true, Role: RoleAdmin}, Action("")},
		{"unknown role gets no primary", Subject{Authenticated: true, Role: RoleUnknown}, Action("")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.subject, ContextVacancyDetail)
			if d.Primary != tc.primary {
				t.Errorf("primary = %q, want %q", d.Primary, tc.primary)
			}
		})
	}
}

func TestDecide_VacancyDetailNotes(t *testing.T) {
	nonOwner := Decide(Subject{Authenticated: true, Role: RoleEmployer}, ContextVacancyDetail)
	if !nonOwner.Allows(ActionStudentsOnlyNote) {
		t.Error("non-owner employer should see the students-only note")
	}

	admin := Decide(Subject{Authenticated: true, Role: RoleAdmin}, ContextVacancyDetail)
	if !admin.Allows(ActionUnavailableNote) {
		t.Error("admin should see the unavailable note")
	}
	if admin.Allows(ActionApply) || admin.Allows(ActionEditVacancy) {
		t.Error("admin must not get apply or edit on vacancy detail")
	}
}

func TestDecide_VacancyRow(t *testing.T) {
	owner := Decide(Subject{Authenticated: true, Role: RoleEmployer, Owner: true}, ContextVacancyRow)
	if !owner.Allows(ActionEditVacancy) || !owner.Allows(ActionDeleteVacancy) {
		t.Error("owner row should show edit and delete")
	}

	for _, s := range []Subject{
		{Authenticated: true, Role: RoleEmployer},
		{Authenticated: true, Role: RoleStudent, Owner: true},
		{Authenticated: true, Role: RoleAdmin, Owner: true},
		{Authenticated: false, Role: RoleEmployer, Owner: true},
	} {
		d := Decide(s, ContextVacancyRow)
		if len(d.Visible) != 0 {
			t.Errorf("subject %+v should get an empty row decision, got %v", s, d.Visible)
		}
	}
}

// Ownership is only consulted for employers; a stray owner bit on any other
// role must not leak an edit affordance.
func TestDecide_OwnershipIgnoredForNonEmployers(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleAdmin, RoleUnknown} {
		d := Decide(Subject{Authenticated: true, Role: role, Owner: true}, ContextVacancyDetail)
		if d.Allows(ActionEditVacancy) {
			t.Errorf("role %s with owner bit got edit affordance", role)
		}
	}
}

func TestResourceOwner_Owns(t *testing.T) {
	id7 := int64(7)
	id8 := int64(8)

	owner := ResourceOwner{UserID: &id7, Username: "acme"}
	if !owner.Owns(7, true, "someone-else") {
		t.Error("matching user id must establish ownership")
	}
	if owner.Owns(8, true, "someone-else") {
		t.Error("different user id with different username must not own")
	}

	// Username fallback when the id is absent on either side.
	noID := ResourceOwner{Username: "acme"}
	if !noID.Owns(7, true, "acme") {
		t.Error("username equality must establish ownership when ids are missing")
	}

	changed := ResourceOwner{UserID: &id8, Username: "other"}
	if changed.Owns(7, true, "acme") {
		t.Error("reassigned owner id must drop ownership")
	}

	empty := ResourceOwner{}
	if empty.Owns(7, true, "acme") || empty.Owns(0, false, "") {
		t.Error("missing owner data is never an ownership match")
	}
}
