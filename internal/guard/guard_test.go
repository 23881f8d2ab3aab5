package guard

import (
	"testing"

	"github.com/openshelf/librarium/internal/domain"
	lberrors "github.com/openshelf/librarium/internal/errors"
)

func TestStateFor(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		user          domain.User
		want          State
	}{
		{
			name: "unauthenticated",
			want: Anonymous,
		},
		{
			name:          "admin role",
			authenticated: true,
			user:          domain.User{ID: "1", Role: domain.Role{Name: "admin"}},
			want:          Admin,
		},
		{
			name:          "admin role mixed case",
			authenticated: true,
			user:          domain.User{ID: "1", Role: domain.Role{Name: "Admin"}},
			want:          Admin,
		},
		{
			name:          "user role",
			authenticated: true,
			user:          domain.User{ID: "1", Role: domain.Role{Name: "user"}},
			want:          Member,
		},
		{
			name:          "missing role",
			authenticated: true,
			user:          domain.User{ID: "1"},
			want:          Member,
		},
		{
			name:          "unrecognized role",
			authenticated: true,
			user:          domain.User{ID: "1", Role: domain.Role{Name: "librarian"}},
			want:          Member,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateFor(tt.authenticated, tt.user); got != tt.want {
				t.Fatalf("expected state %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCheckAnonymousRedirects(t *testing.T) {
	for _, path := range []string{"/books", "/book/9780441013593", "/book/edit", "/userbooks"} {
		decision := Check(Anonymous, path)
		if decision.Allowed {
			t.Fatalf("expected %s to be blocked for anonymous", path)
		}
		if decision.RedirectTo != RouteSignIn {
			t.Fatalf("expected redirect to %s for %s, got %q", RouteSignIn, path, decision.RedirectTo)
		}
		if !lberrors.IsCode(decision.Err, lberrors.CodeAuthRequired) {
			t.Fatalf("expected AUTH_REQUIRED for %s, got %v", path, decision.Err)
		}
	}
}

func TestCheckAnonymousAllowed(t *testing.T) {
	for _, path := range []string{"/", "/sign-in"} {
		decision := Check(Anonymous, path)
		if !decision.Allowed {
			t.Fatalf("expected %s to be reachable for anonymous: %v", path, decision.Err)
		}
		if decision.RedirectTo != "" {
			t.Fatalf("expected no redirect for %s, got %q", path, decision.RedirectTo)
		}
	}
}

func TestCheckMemberEditorDenied(t *testing.T) {
	for _, path := range []string{"/book/edit", "/book/edit/17"} {
		decision := Check(Member, path)
		if decision.Allowed {
			t.Fatalf("expected %s to be denied for member", path)
		}
		if decision.RedirectTo != "" {
			t.Fatalf("expected denial without redirect for %s, got %q", path, decision.RedirectTo)
		}
		if !lberrors.IsCode(decision.Err, lberrors.CodeAccessDenied) {
			t.Fatalf("expected ACCESS_DENIED for %s, got %v", path, decision.Err)
		}
	}
}

func TestCheckMemberAllowed(t *testing.T) {
	for _, path := range []string{"/books", "/book/9780441013593", "/userbooks", "/", "/sign-in"} {
		decision := Check(Member, path)
		if !decision.Allowed {
			t.Fatalf("expected %s to be reachable for member: %v", path, decision.Err)
		}
	}
}

func TestCheckAdminEditorAllowed(t *testing.T) {
	decision := Check(Admin, "/book/edit/17")
	if !decision.Allowed {
		t.Fatalf("expected editor to be reachable for admin: %v", decision.Err)
	}
	if decision.Params["id"] != "17" {
		t.Fatalf("expected id param %q, got %q", "17", decision.Params["id"])
	}
}

func TestCheckBookInfoParams(t *testing.T) {
	decision := Check(Member, "/book/9780441013593")
	if !decision.Allowed {
		t.Fatalf("expected book info to be reachable: %v", decision.Err)
	}
	if decision.Route != RouteBookInfo {
		t.Fatalf("expected route %s, got %s", RouteBookInfo, decision.Route)
	}
	if decision.Params["isbn"] != "9780441013593" {
		t.Fatalf("expected isbn param %q, got %q", "9780441013593", decision.Params["isbn"])
	}
}

func TestCheckEditorLiteralWinsOverParam(t *testing.T) {
	decision := Check(Admin, "/book/edit")
	if decision.Route != RouteBookNew {
		t.Fatalf("expected route %s, got %s", RouteBookNew, decision.Route)
	}
}

func TestCheckUnknownPath(t *testing.T) {
	for _, state := range []State{Anonymous, Member, Admin} {
		decision := Check(state, "/no/such/screen")
		if decision.Allowed {
			t.Fatalf("expected unknown path to be blocked for %v", state)
		}
		if !lberrors.IsCode(decision.Err, lberrors.CodeRouteNotFound) {
			t.Fatalf("expected ROUTE_NOT_FOUND for %v, got %v", state, decision.Err)
		}
	}
}

func TestCheckTrailingSlash(t *testing.T) {
	decision := Check(Member, "/books/")
	if !decision.Allowed {
		t.Fatalf("expected trailing slash to match: %v", decision.Err)
	}
	if decision.Route != RouteCatalog {
		t.Fatalf("expected route %s, got %s", RouteCatalog, decision.Route)
	}
}
