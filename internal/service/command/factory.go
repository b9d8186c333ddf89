package command

import (
	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/internal/service/state"
)

type commandLister interface {
	ListCommands() []core.Command
}

func NewCommands(
	wd *state.Workdir,
	lister commandLister,
	opts ...Option,
) []core.Command {
	o := newOptions(opts)
	return []core.Command{
		NewHelloCommand(),
		NewDateCommand(o.now),
		NewTimeCommand(o.now),
		NewClearCommand(),
		NewPwdCommand(wd),
		NewListCommand(wd),
		NewWhoamiCommand(o.lookupEnv),
		NewHelpCommand(lister),
		NewEchoCommand(),
		NewCatCommand(wd),
		NewTouchCommand(wd),
		NewRemoveCommand(wd),
		NewWriteCommand(wd),
		NewChangeDirCommand(wd),
	}
}

// verb holds the static description shared by every command.
type verb struct {
	name        string
	usage       string
	description string
	args        bool
}

func (v verb) Name() string        { return v.name }
func (v verb) Usage() string       { return v.usage }
func (v verb) Description() string { return v.description }
func (v verb) TakesArgs() bool     { return v.args }
