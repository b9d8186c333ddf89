package core

import "context"

// Dispatcher turns one input line into one result. Implementations never
// return an error: every failure is folded into the result text.
type Dispatcher interface {
	Dispatch(ctx context.Context, line string) Result
	Execute(ctx context.Context, line string) string
	ListCommands() []Command
}

// Command is one built-in verb.
//
// A command with TakesArgs is matched by the prefix "<name> " and receives
// the raw remainder of the line; otherwise it matches the exact name and
// receives an empty string.
type Command interface {
	Name() string
	Usage() string
	Description() string
	TakesArgs() bool
	Execute(ctx context.Context, args string) (string, error)
}
