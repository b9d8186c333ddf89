package ui

import (
	"fmt"
	"os"

	"github.com/sandevgo/termcore/internal/service/command"
	"github.com/sandevgo/termcore/internal/service/state"
)

// Prompt renders "<user>@<host> <dir> > ".
type Prompt struct {
	wd        *state.Workdir
	lookupEnv func(string) (string, bool)
	hostname  func() (string, error)
}

func NewPrompt(wd *state.Workdir) *Prompt {
	return &Prompt{
		wd:        wd,
		lookupEnv: os.LookupEnv,
		hostname:  os.Hostname,
	}
}

func (p *Prompt) User() string {
	if user, ok := command.LookupUser(p.lookupEnv); ok {
		return user
	}
	return "user"
}

func (p *Prompt) Host() string {
	host, err := p.hostname()
	if err != nil || host == "" {
		return "hostname"
	}
	return host
}

func (p *Prompt) Dir() string {
	return p.wd.Base("unknown")
}

func (p *Prompt) String() string {
	return fmt.Sprintf("%s@%s %s > ", p.User(), p.Host(), p.Dir())
}
