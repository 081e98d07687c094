package commands

import "io"

// SetArgs sets the arguments for the command.
func (a *App) SetArgs(args []string) {
	a.cmd.SetArgs(args)
}

// SetOut sets the destination for command output.
func (a *App) SetOut(w io.Writer) {
	a.cmd.SetOut(w)
}
