package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	urlText    = color.New(color.FgYellow).SprintFunc()
	cmdText    = color.New(color.FgCyan).SprintFunc()
)

// FormatRemoteConflict renders the remediation page shown when init finds an
// existing remote that does not point at the local storage.
func FormatRemoteConflict(err *RemoteConflictError, useColors bool) string {
	if err == nil {
		return ""
	}

	label := "ERROR:"
	url := err.URL
	push := "git push"
	remove := "git remote rm " + err.Remote
	rename := "git local --remote=local init"
	if useColors {
		label = errorLabel(label)
		url = urlText(url)
		push = cmdText(push)
		remove = cmdText(remove)
		rename = cmdText(rename)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s the remote %q already exists.\n\n", label, err.Remote)
	sb.WriteString("Are you trying to run gitlocal in a directory that already has a git\n")
	sb.WriteString("repository? This would overwrite your existing remote, which points to:\n\n")
	fmt.Fprintf(&sb, "  %s\n\n", url)
	sb.WriteString("If you've previously run gitlocal in this directory and you want to update\n")
	sb.WriteString("the contents of this git, just push to the existing git remote:\n\n")
	fmt.Fprintf(&sb, "  %s\n\n", push)
	sb.WriteString("If you don't need this remote anymore (say, if you cloned someone else's\n")
	sb.WriteString("repository), gitlocal will replace it with a new one if you first run:\n\n")
	fmt.Fprintf(&sb, "  %s\n\n", remove)
	sb.WriteString("Lastly, you can also specify a different remote name for gitlocal, so that\n")
	sb.WriteString("you can push to multiple git remotes:\n\n")
	fmt.Fprintf(&sb, "  %s\n\n", rename)
	sb.WriteString("Please do one of the above and try again.\n")
	return sb.String()
}

// FprintError writes the user-facing form of err to w. Remote conflicts get
// the remediation page, git failures get git's own error text. With verbose
// set the whole error chain follows.
func FprintError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	var conflict *RemoteConflictError
	var gitErr *GitCommandError
	switch {
	case As(err, &conflict):
		fmt.Fprint(w, FormatRemoteConflict(conflict, shouldColor(w)))
	case As(err, &gitErr):
		fmt.Fprintln(w, gitErr.Message())
	default:
		if shouldColor(w) {
			fmt.Fprintf(w, "%s %v\n", errorLabel("error:"), err)
		} else {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}

	if verbose {
		fmt.Fprintf(w, "\n[debug] %+v\n", err)
	}
}

// shouldColor reports whether w is a terminal that accepts colors.
func shouldColor(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
