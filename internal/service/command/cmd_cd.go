package command

import (
	"context"

	"github.com/sandevgo/termcore/internal/service/state"
)

// ChangeDirCommand is the only command that moves the working directory.
type ChangeDirCommand struct {
	verb
	wd *state.Workdir
}

func NewChangeDirCommand(wd *state.Workdir) *ChangeDirCommand {
	return &ChangeDirCommand{
		verb: verb{name: "cd", usage: "cd [dir]", description: "Changes the current directory.", args: true},
		wd:   wd,
	}
}

func (c *ChangeDirCommand) Execute(ctx context.Context, path string) (string, error) {
	dir, err := c.wd.Change(path)
	if err != nil {
		return "", failure("changing directory", err)
	}
	return "Changed directory to " + dir, nil
}
