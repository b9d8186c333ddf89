package command

import (
	"context"
)

type HelpCommand struct {
	verb
	lister    commandLister
	formatter *ResponseFormatter
}

func NewHelpCommand(lister commandLister) *HelpCommand {
	return &HelpCommand{
		verb:      verb{name: "help", usage: "help", description: "Lists the available commands."},
		lister:    lister,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Execute(ctx context.Context, _ string) (string, error) {
	lines := []string{c.formatter.Title("Available commands")}
	for _, cmd := range c.lister.ListCommands() {
		lines = append(lines, c.formatter.Row(cmd.Usage(), cmd.Description()))
	}
	lines = append(lines, c.formatter.Row("exit", "Exits the terminal."))
	return c.formatter.Combine(lines...), nil
}
