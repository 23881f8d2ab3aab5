package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown            = "UNKNOWN"
	CodeNetworkUnreachable = "NETWORK_UNREACHABLE"
	CodeRemoteRejected     = "REMOTE_REJECTED"

	CodeBookNotFound    = "BOOK_NOT_FOUND"
	CodeGenreNotFound   = "GENRE_NOT_FOUND"
	CodePageNotFound    = "PAGE_NOT_FOUND"
	CodeSearchNoMatches = "SEARCH_NO_MATCHES"
	CodeFilterNoMatches = "FILTER_NO_MATCHES"
	CodeRouteNotFound   = "ROUTE_NOT_FOUND"

	CodeAuthRejected   = "AUTH_REJECTED"
	CodeAuthRequired   = "AUTH_REQUIRED"
	CodeAccessDenied   = "ACCESS_DENIED"
	CodeTokenMalformed = "TOKEN_MALFORMED"

	CodeValidationUsername      = "VALIDATION_USERNAME"
	CodeValidationEmail         = "VALIDATION_EMAIL"
	CodeValidationPassword      = "VALIDATION_PASSWORD"
	CodeValidationPasswordMatch = "VALIDATION_PASSWORD_MATCH"
	CodeValidationFieldsEmpty   = "VALIDATION_FIELDS_EMPTY"
	CodeValidationBookName      = "VALIDATION_BOOK_NAME"
	CodeValidationBookISBN      = "VALIDATION_BOOK_ISBN"
	CodeValidationBookGenre     = "VALIDATION_BOOK_GENRE"
	CodeValidationBookCount     = "VALIDATION_BOOK_COUNT"
	CodeValidationBookAuthors   = "VALIDATION_BOOK_AUTHORS"

	CodeNotFound = "NOT_FOUND"
)

// UI message keys share the catalog with error codes so screens and errors
// resolve text through one lookup path.
const (
	UIAppTitle         = "UI_APP_TITLE"
	UISignInTitle      = "UI_SIGNIN_TITLE"
	UIRegisterTitle    = "UI_REGISTER_TITLE"
	UIRegisterSuccess  = "UI_REGISTER_SUCCESS"
	UICatalogTitle     = "UI_CATALOG_TITLE"
	UICatalogEmpty     = "UI_CATALOG_EMPTY"
	UICatalogPage      = "UI_CATALOG_PAGE"
	UIMyBooks          = "UI_MY_BOOKS"
	UIArchive          = "UI_ARCHIVE"
	UINoActiveBooks    = "UI_NO_ACTIVE_BOOKS"
	UINoArchivedBooks  = "UI_NO_ARCHIVED_BOOKS"
	UIAuthor           = "UI_AUTHOR"
	UIGenre            = "UI_GENRE"
	UIDescription      = "UI_DESCRIPTION"
	UIDateTaken        = "UI_DATE_TAKEN"
	UIReturnDate       = "UI_RETURN_DATE"
	UILoanStatus       = "UI_LOAN_STATUS"
	UILoanReturned     = "UI_LOAN_RETURNED"
	UILoanNotReturned  = "UI_LOAN_NOT_RETURNED"
	UITakeBook         = "UI_TAKE_BOOK"
	UIReturnBook       = "UI_RETURN_BOOK"
	UIBookTaken        = "UI_BOOK_TAKEN"
	UIBookReturned     = "UI_BOOK_RETURNED"
	UIEditorTitleNew   = "UI_EDITOR_TITLE_NEW"
	UIEditorTitleEdit  = "UI_EDITOR_TITLE_EDIT"
	UIBookAdded        = "UI_BOOK_ADDED"
	UIBookUpdated      = "UI_BOOK_UPDATED"
	UIBookDeleted      = "UI_BOOK_DELETED"
	UINoChanges        = "UI_NO_CHANGES"
	UIStockInStock     = "UI_STOCK_IN_STOCK"
	UIStockLastCopy    = "UI_STOCK_LAST_COPY"
	UIStockOutOfStock  = "UI_STOCK_OUT_OF_STOCK"
	UISignedOut        = "UI_SIGNED_OUT"
	UISignedInAs       = "UI_SIGNED_IN_AS"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Transport errors
		CodeUnknown:            "An unexpected error occurred",
		CodeNetworkUnreachable: "Unable to reach the library service",
		CodeRemoteRejected:     "The library service rejected the request",

		// Lookup errors
		CodeBookNotFound:    "Book not found",
		CodeGenreNotFound:   "Genre not found",
		CodePageNotFound:    "No books found on the requested page",
		CodeSearchNoMatches: "No books found with the given title",
		CodeFilterNoMatches: "No books found matching the criteria",
		CodeRouteNotFound:   "Page not found",

		// Authentication errors
		CodeAuthRejected:   "Sign-in failed: check your email and password",
		CodeAuthRequired:   "Sign in to continue",
		CodeAccessDenied:   "You do not have permission to open this page",
		CodeTokenMalformed: "The session token is malformed",

		// Validation errors
		CodeValidationUsername:      "User name must be 4 to 24 characters, start with a letter, and use only letters, digits, underscores, and hyphens",
		CodeValidationEmail:         "Please enter a valid email address",
		CodeValidationPassword:      "Password must be 8 to 24 characters and include upper and lower case letters, a digit, and one of ! @ # $ %",
		CodeValidationPasswordMatch: "Passwords do not match",
		CodeValidationFieldsEmpty:   "Fields cannot be empty",
		CodeValidationBookName:      "Book title is required",
		CodeValidationBookISBN:      "ISBN is required",
		CodeValidationBookGenre:     "Genre is required",
		CodeValidationBookCount:     "Copy count must be at least 1",
		CodeValidationBookAuthors:   "Select at least one author",

		// Storage errors
		CodeNotFound: "The requested resource was not found",

		// Screen labels
		UIAppTitle:        "Book Library",
		UISignInTitle:     "Sign in",
		UIRegisterTitle:   "Registration",
		UIRegisterSuccess: "You have registered successfully!",
		UICatalogTitle:    "Book List",
		UICatalogEmpty:    "No books available",
		UICatalogPage:     "Page {{.Page}} of {{.Total}}",
		UIMyBooks:         "My books",
		UIArchive:         "Archive",
		UINoActiveBooks:   "You have no active books yet",
		UINoArchivedBooks: "You have no archived books",
		UIAuthor:          "Author",
		UIGenre:           "Genre",
		UIDescription:     "Description",
		UIDateTaken:       "Date taken",
		UIReturnDate:      "Return date",
		UILoanStatus:      "Status",
		UILoanReturned:    "returned",
		UILoanNotReturned: "not returned",
		UITakeBook:        "Take book",
		UIReturnBook:      "Return book",
		UIBookTaken:       "The book is yours until {{.ReturnDate}}",
		UIBookReturned:    "Book returned",
		UIEditorTitleNew:  "Add a new book",
		UIEditorTitleEdit: "Edit book",
		UIBookAdded:       "Book added successfully",
		UIBookUpdated:     "Book updated successfully",
		UIBookDeleted:     "Book deleted",
		UINoChanges:       "No changes to save",
		UIStockInStock:    "In stock",
		UIStockLastCopy:   "Last copy in stock",
		UIStockOutOfStock: "Out of stock",
		UISignedOut:       "You have signed out",
		UISignedInAs:      "Signed in as {{.Name}}",
	},
}
