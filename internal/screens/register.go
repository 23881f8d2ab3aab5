package screens

import (
	"context"

	"github.com/openshelf/librarium/internal/errors/i18n"
	"github.com/openshelf/librarium/internal/guard"
	"github.com/openshelf/librarium/internal/token"
)

// renderRegister runs the registration form once and reports where to go
// next. Validation failures keep the user on the form. A successful
// registration signs the new account in with the token pair the service
// returned, so the shell lands on the loans screen like after sign-in.
func (s *Shell) renderRegister(ctx context.Context) (string, error) {
	s.printf("\n-- %s --\n", s.text(i18n.UIRegisterTitle))
	s.printf("(enter 'sign-in' as the user name to go to the sign-in screen)\n")

	name, err := s.promptLine("User name: ")
	if err != nil {
		return "", err
	}
	if name == "sign-in" {
		return guard.RouteSignIn, nil
	}

	email, err := s.promptLine("Email: ")
	if err != nil {
		return "", err
	}
	password, err := s.password("Password: ")
	if err != nil {
		return "", err
	}
	confirm, err := s.password("Confirm password: ")
	if err != nil {
		return "", err
	}

	if err := ValidateRegistration(name, email, password, confirm); err != nil {
		s.fail(err)
		return guard.RouteRegister, nil
	}

	tokens, err := s.gateway.Register(ctx, name, email, password)
	if err != nil {
		s.fail(err)
		return guard.RouteRegister, nil
	}

	s.printf("%s\n", s.text(i18n.UIRegisterSuccess))

	// The account exists at this point; a failure wiring up the session
	// leaves the user on the sign-in form instead of re-registering.
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
