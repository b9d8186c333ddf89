package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/internal/service/state"
	"github.com/sandevgo/termcore/pkg/log"
)

var _ core.Dispatcher = (*Router)(nil)

// Router matches a line against the registered verbs. Exact verbs are looked
// up first, then verbs taking arguments by their "<name> " prefix.
type Router struct {
	ordered  []core.Command
	exact    map[string]core.Command
	prefixed []core.Command
}

func New(commands []core.Command) *Router {
	r := &Router{
		exact: make(map[string]core.Command),
	}
	for _, cmd := range commands {
		r.register(cmd)
	}
	return r
}

// NewRouter builds the router with the full built-in verb set.
func NewRouter(wd *state.Workdir, opts ...Option) *Router {
	r := New(nil)
	for _, cmd := range NewCommands(wd, r, opts...) {
		r.register(cmd)
	}
	return r
}

func (r *Router) register(cmd core.Command) {
	r.ordered = append(r.ordered, cmd)
	if cmd.TakesArgs() {
		r.prefixed = append(r.prefixed, cmd)
		return
	}
	r.exact[cmd.Name()] = cmd
}

func (r *Router) Dispatch(ctx context.Context, line string) core.Result {
	if cmd, ok := r.exact[line]; ok {
		return r.run(ctx, cmd, "")
	}

	for _, cmd := range r.prefixed {
		prefix := cmd.Name() + " "
		if strings.HasPrefix(line, prefix) {
			return r.run(ctx, cmd, line[len(prefix):])
		}
	}

	log.FromCtx(ctx).Debug().Str("line", line).Msg("unknown command")
	return core.Success(fmt.Sprintf("Unknown command: %s", line))
}

func (r *Router) Execute(ctx context.Context, line string) string {
	return r.Dispatch(ctx, line).Output
}

func (r *Router) run(ctx context.Context, cmd core.Command, args string) core.Result {
	logger := log.FromCtx(ctx)

	out, err := cmd.Execute(ctx, args)
	if err != nil {
		logger.Debug().Err(err).Str("command", cmd.Name()).Msg("command failed")
		return core.Failure(err.Error())
	}

	logger.Debug().Str("command", cmd.Name()).Msg("command executed")
	return core.Success(out)
}

func (r *Router) ListCommands() []core.Command {
	res := make([]core.Command, len(r.ordered))
	copy(res, r.ordered)
	return res
}
