package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	s := u.Name
	if u.IsAdmin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive loop on stdin until EOF or exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, titleStyle.Render("blogctl"))
	fmt.Fprintln(a.out, "Blog client (type 'help' for commands)")
	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", u.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}
