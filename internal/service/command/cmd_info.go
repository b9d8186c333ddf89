package command

import (
	"context"
	"errors"
	"time"

	"github.com/sandevgo/termcore/internal/core"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

var errNoUser = errors.New("Could not retrieve username")

type HelloCommand struct {
	verb
}

func NewHelloCommand() *HelloCommand {
	return &HelloCommand{verb{name: "hello", usage: "hello", description: "Greets the user."}}
}

func (c *HelloCommand) Execute(ctx context.Context, _ string) (string, error) {
	return "Hello, user!", nil
}

type DateCommand struct {
	verb
	now func() time.Time
}

func NewDateCommand(now func() time.Time) *DateCommand {
	return &DateCommand{
		verb: verb{name: "date", usage: "date", description: "Shows the current date."},
		now:  now,
	}
}

func (c *DateCommand) Execute(ctx context.Context, _ string) (string, error) {
	return "Today's date is " + c.now().Local().Format(dateLayout), nil
}

type TimeCommand struct {
	verb
	now func() time.Time
}

func NewTimeCommand(now func() time.Time) *TimeCommand {
	return &TimeCommand{
		verb: verb{name: "time", usage: "time", description: "Shows the current time."},
		now:  now,
	}
}

func (c *TimeCommand) Execute(ctx context.Context, _ string) (string, error) {
	return "The current time is " + c.now().Local().Format(timeLayout), nil
}

type ClearCommand struct {
	verb
}

func NewClearCommand() *ClearCommand {
	return &ClearCommand{verb{name: "clear", usage: "clear", description: "Clears the screen."}}
}

func (c *ClearCommand) Execute(ctx context.Context, _ string) (string, error) {
	return core.ClearScreen, nil
}

type WhoamiCommand struct {
	verb
	lookupEnv func(string) (string, bool)
}

func NewWhoamiCommand(lookupEnv func(string) (string, bool)) *WhoamiCommand {
	return &WhoamiCommand{
		verb:      verb{name: "whoami", usage: "whoami", description: "Displays the current username."},
		lookupEnv: lookupEnv,
	}
}

func (c *WhoamiCommand) Execute(ctx context.Context, _ string) (string, error) {
	user, ok := LookupUser(c.lookupEnv)
	if !ok {
		return "", errNoUser
	}
	return "Current user: " + user, nil
}

type EchoCommand struct {
	verb
}

func NewEchoCommand() *EchoCommand {
	return &EchoCommand{verb{name: "echo", usage: "echo [msg]", description: "Displays the message entered.", args: true}}
}

func (c *EchoCommand) Execute(ctx context.Context, args string) (string, error) {
	return args, nil
}
