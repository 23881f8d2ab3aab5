package guard

import (
	"strings"

	"github.com/openshelf/librarium/internal/domain"
	lberrors "github.com/openshelf/librarium/internal/errors"
)

// State is the access level derived from a session.
type State int

const (
	// Anonymous sessions may only reach registration and sign-in.
	Anonymous State = iota
	// Member sessions reach the catalog, book details and their loans.
	Member
	// Admin sessions additionally reach the book editor and deletes.
	Admin
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Member:
		return "member"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// StateFor derives the access state from a session's user. An absent or
// unrecognized role never grants more than Member.
func StateFor(authenticated bool, user domain.User) State {
	if !authenticated {
		return Anonymous
	}
	if strings.EqualFold(user.Role.Name, "admin") {
		return Admin
	}
	return Member
}

// Route names.
const (
	RouteRegister = "/"
	RouteSignIn   = "/sign-in"
	RouteCatalog  = "/books"
	RouteBookInfo = "/book/:isbn"
	RouteBookNew  = "/book/edit"
	RouteBookEdit = "/book/edit/:id"
	RouteMyBooks  = "/userbooks"
)

type route struct {
	pattern string
	minimum State
}

// routes maps each route pattern to the minimum state that may visit it.
var routes = []route{
	{RouteRegister, Anonymous},
	{RouteSignIn, Anonymous},
	{RouteBookNew, Admin},
	{RouteBookEdit, Admin},
	{RouteBookInfo, Member},
	{RouteCatalog, Member},
	{RouteMyBooks, Member},
}

// Decision is the outcome of checking a path against the route table.
type Decision struct {
	// Route is the matched route pattern, empty when no route matched.
	Route string
	// Params holds values captured from :param segments.
	Params map[string]string
	// Allowed reports whether the session may visit the route.
	Allowed bool
	// RedirectTo is the path to send the session to instead, empty when
	// the visit is allowed or flatly denied.
	RedirectTo string
	// Err explains a denial.
	Err error
}

// Check resolves a requested path for the given state.
//
// Anonymous sessions are redirected to sign-in rather than denied so the
// original destination is simply dropped. Authenticated sessions short of
// the required state are denied in place. Unknown paths resolve to a
// not-found decision regardless of state.
func Check(state State, path string) Decision {
	matched, params, ok := match(path)
	if !ok {
		return Decision{
			Err: lberrors.WithMetadata(lberrors.CodeRouteNotFound, "no screen is registered for this path", map[string]string{"Path": path}),
		}
	}

	decision := Decision{Route: matched.pattern, Params: params}

	if state >= matched.minimum {
		decision.Allowed = true
		return decision
	}

	if state == Anonymous {
		decision.RedirectTo = RouteSignIn
		decision.Err = lberrors.New(lberrors.CodeAuthRequired, "sign in to continue")
		return decision
	}

	decision.Err = lberrors.New(lberrors.CodeAccessDenied, "this screen requires the admin role")
	return decision
}

func match(path string) (route, map[string]string, bool) {
	segments := splitPath(path)
	for _, candidate := range routes {
		patternSegments := splitPath(candidate.pattern)
		if len(patternSegments) != len(segments) {
			continue
		}
		params := map[string]string{}
		matched := true
		for i, patternSegment := range patternSegments {
			if strings.HasPrefix(patternSegment, ":") {
				params[patternSegment[1:]] = segments[i]
				continue
			}
			if patternSegment != segments[i] {
				matched = false
				break
			}
		}
		if matched {
			return candidate, params, true
		}
	}
	return route{}, nil, false
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
