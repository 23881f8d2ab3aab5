package errors

import (
	stderrors "errors"

	"github.com/openshelf/librarium/internal/errors/i18n"
)

// Localize formats err as user-facing text in the given locale.
//
// Domain errors resolve through the i18n catalog with their metadata. When a
// remote rejection carried a server-provided message, that message wins over
// the catalog template. Unknown errors collapse to the generic catalog entry —
// internal details never reach the screen.
func Localize(err error, locale string) string {
	catalog := i18n.GetCatalog(locale)

	var appErr *Error
	if stderrors.As(err, &appErr) {
		if appErr.Code == CodeRemoteRejected {
			if msg, ok := appErr.Metadata["Message"]; ok && msg != "" {
				return msg
			}
		}
		return catalog.Format(string(appErr.Code), appErr.Metadata)
	}

	return catalog.Format(string(CodeUnknown), nil)
}
