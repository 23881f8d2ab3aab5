// Package token decodes bearer token payloads for client-side convenience.
//
// Decoding performs no signature verification: the claims are a hint for the
// client (which user id to fetch), never an authorization input. The remote
// service is the sole authority on what a token grants.
package token

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openshelf/librarium/internal/errors"
)

// Claims is the key-value payload embedded in a token.
type Claims = jwt.MapClaims

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode extracts the claims from the payload segment of a bearer token.
//
// The token must have at least two dot-separated segments; the second segment
// must be base64url (padded or raw) carrying a JSON object. Anything else is
// a TOKEN_MALFORMED error.
func Decode(tokenStr string) (Claims, error) {
	segments := strings.Split(tokenStr, ".")
	if len(segments) < 2 {
		return nil, errors.New(errors.CodeTokenMalformed, "token has fewer than two segments")
	}

	payload, err := parser.DecodeSegment(segments[1])
	if err != nil {
		return nil, errors.Wrap(errors.CodeTokenMalformed, "decode token payload", err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.Wrap(errors.CodeTokenMalformed, "parse token payload", err)
	}
	return claims, nil
}

// UserID extracts the user identifier claim from a decoded token.
//
// The upstream service issues the identifier under "id"; "sub" is accepted as
// a fallback. Numeric forms are rendered in their decimal representation.
func UserID(claims Claims) (string, error) {
	for _, key := range []string{"id", "sub"} {
		value, ok := claims[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return v, nil
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case json.Number:
			return v.String(), nil
		default:
			return "", errors.New(errors.CodeTokenMalformed,
				fmt.Sprintf("unsupported %q claim type %T", key, value))
		}
	}
	return "", errors.New(errors.CodeTokenMalformed, "token has no user id claim")
}
