package screens

import (
	"context"

	"github.com/openshelf/librarium/internal/errors/i18n"
	"github.com/openshelf/librarium/internal/guard"
	"github.com/openshelf/librarium/internal/token"
)

// renderSignIn runs the sign-in form once. On success the session is
// populated and the shell moves to the user's loans, mirroring the
// post-login landing screen.
func (s *Shell) renderSignIn(ctx context.Context) (string, error) {
	s.printf("\n-- %s --\n", s.text(i18n.UISignInTitle))
	s.printf("(enter 'register' as the email to go to the registration screen)\n")

	email, err := s.promptLine("Email: ")
	if err != nil {
		return "", err
	}
	if email == "register" {
		return guard.RouteRegister, nil
	}

	password, err := s.password("Password: ")
	if err != nil {
		return "", err
	}

	if err := ValidateSignIn(email, password); err != nil {
		s.fail(err)
		return guard.RouteSignIn, nil
	}

	tokens, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.fail(err)
		return guard.RouteSignIn, nil
	}

	claims, err := token.Decode(tokens.AccessToken)
	if err != nil {
		s.fail(err)
		return guard.RouteSignIn, nil
	}
	userID, err := token.UserID(claims)
	if err != nil {
		s.fail(err)
		return guard.RouteSignIn, nil
	}

	// Tokens are stored first so the user lookup goes out with the
	// fresh bearer credential.
	if err := s.session.SetTokens(ctx, tokens); err != nil {
		s.fail(err)
		return guard.RouteSignIn, nil
	}

	user, err := s.gateway.User(ctx, userID)
	if err != nil {
		s.fail(err)
		return guard.RouteSignIn, nil
	}
	if err := s.session.SetUser(ctx, user); err != nil {
		s.fail(err)
		return guard.RouteSignIn, nil
	}

	s.printf("%s\n", s.format(i18n.UISignedInAs, map[string]string{"Name": user.Name}))
	return guard.RouteMyBooks, nil
}
