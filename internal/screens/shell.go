package screens

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/openshelf/librarium/internal/api"
	lberrors "github.com/openshelf/librarium/internal/errors"
	"github.com/openshelf/librarium/internal/errors/i18n"
	"github.com/openshelf/librarium/internal/guard"
	"github.com/openshelf/librarium/internal/session"
)

// errQuit signals a clean, user-requested exit from the screen loop.
var errQuit = errors.New("quit")

// PasswordReader prompts for a secret without echoing it.
type PasswordReader func(prompt string) (string, error)

// Shell runs the interactive terminal loop. It owns the current path;
// every navigation goes through the guard first.
type Shell struct {
	session  *session.Store
	gateway  *api.Client
	catalog  *i18n.Catalog
	in       *bufio.Scanner
	out      io.Writer
	logger   *log.Logger
	password PasswordReader

	path string
}

// Config carries the shell's dependencies.
type Config struct {
	Session *session.Store
	Gateway *api.Client
	Locale  string
	In      io.Reader
	Out     io.Writer
	Logger  *log.Logger
	// Password overrides the default masked prompt, mainly for tests.
	Password PasswordReader
}

// New assembles a shell.
func New(cfg Config) (*Shell, error) {
	if cfg.Session == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if cfg.Gateway == nil {
		return nil, fmt.Errorf("gateway client is required")
	}
	if cfg.In == nil || cfg.Out == nil {
		return nil, fmt.Errorf("input and output streams are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	shell := &Shell{
		session: cfg.Session,
		gateway: cfg.Gateway,
		catalog: i18n.GetCatalog(cfg.Locale),
		in:      bufio.NewScanner(cfg.In),
		out:     cfg.Out,
		logger:  logger,
	}
	shell.password = cfg.Password
	if shell.password == nil {
		shell.password = shell.promptLine
	}
	return shell, nil
}

// Run drives the screen loop until the input stream ends, the user
// quits, or the context is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("%s\n", s.text(i18n.UIAppTitle))
	if user := s.session.User(); !user.IsZero() {
		s.printf("%s\n", s.format(i18n.UISignedInAs, map[string]string{"Name": user.Name}))
		s.path = guard.RouteMyBooks
	} else {
		s.path = guard.RouteRegister
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		decision := guard.Check(s.state(), s.path)
		if !decision.Allowed {
			s.fail(decision.Err)
			s.path = s.fallback(decision)
			continue
		}

		next, err := s.render(ctx, decision)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
		s.path = next
	}
}

// Navigate asks the guard about a destination and returns the path the
// shell should actually show.
func (s *Shell) Navigate(path string) string {
	decision := guard.Check(s.state(), path)
	if decision.Allowed {
		return path
	}
	s.fail(decision.Err)
	return s.fallback(decision)
}

func (s *Shell) state() guard.State {
	return guard.StateFor(s.session.Authenticated(), s.session.User())
}

// fallback picks where to land after a blocked navigation.
func (s *Shell) fallback(decision guard.Decision) string {
	if decision.RedirectTo != "" {
		return decision.RedirectTo
	}
	if s.state() == guard.Anonymous {
		return guard.RouteSignIn
	}
	return guard.RouteCatalog
}

func (s *Shell) render(ctx context.Context, decision guard.Decision) (string, error) {
	switch decision.Route {
	case guard.RouteRegister:
		return s.renderRegister(ctx)
	case guard.RouteSignIn:
		return s.renderSignIn(ctx)
	case guard.RouteCatalog:
		return s.renderCatalog(ctx)
	case guard.RouteBookInfo:
		return s.renderBookInfo(ctx, decision.Params["isbn"])
	case guard.RouteBookNew:
		return s.renderEditor(ctx, "")
	case guard.RouteBookEdit:
		return s.renderEditor(ctx, decision.Params["id"])
	case guard.RouteMyBooks:
		return s.renderLoans(ctx)
	default:
		s.fail(lberrors.New(lberrors.CodeRouteNotFound, "no screen is registered for this path"))
		return s.fallback(guard.Decision{}), nil
	}
}

// refreshTokens exchanges the stored refresh token for a fresh pair and
// persists it.
func (s *Shell) refreshTokens(ctx context.Context) {
	current := s.session.Current().Tokens
	if current.IsZero() {
		return
	}
	tokens, err := s.gateway.RefreshAccessToken(ctx, current)
	if err != nil {
		s.fail(err)
		return
	}
	if err := s.session.SetTokens(ctx, tokens); err != nil {
		s.fail(err)
	}
}

// logout clears the session and forces navigation to sign-in.
func (s *Shell) logout(ctx context.Context) string {
	if err := s.session.Logout(ctx); err != nil {
		s.logger.Printf("logout: %v", err)
	}
	s.printf("%s\n", s.text(i18n.UISignedOut))
	return guard.RouteSignIn
}

// promptLine asks for one line of input. It doubles as the default
// password reader when no masked prompt is wired in.
func (s *Shell) promptLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) text(code string) string {
	return s.catalog.Format(code, nil)
}

func (s *Shell) format(code string, metadata map[string]string) string {
	return s.catalog.Format(code, metadata)
}

// fail prints a localized rendering of err on the screen and keeps the
// raw error in the log for diagnosis.
func (s *Shell) fail(err error) {
	if err == nil {
		return
	}
	s.logger.Printf("screen error: %v", err)
	s.printf("! %s\n", lberrors.Localize(err, s.catalog.Locale()))
}
