package cli

import (
	"fmt"
	"io"
)

// ConsoleNotifier surfaces session-level events on the terminal. It is the
// CLI's stand-in for the SPA's toast-and-redirect behavior: a ban notice is
// printed, and "navigation to the login view" becomes a hint to sign in
// again.
type ConsoleNotifier struct {
	Out io.Writer
}

func (n ConsoleNotifier) Notice(msg string) {
	fmt.Fprintln(n.Out, msg)
}

func (n ConsoleNotifier) NavigateToLogin() {
	fmt.Fprintln(n.Out, `Signed out. Run "forumcli login" to sign in again.`)
}
