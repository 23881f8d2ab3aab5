// Package screens renders the interactive terminal screens: catalog,
// book detail, editor, sign-in, registration and the user's loans. The
// shell owns the current path and asks the guard before every switch.
package screens
