package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/sandevgo/termcore/internal/service/state"
	"github.com/sandevgo/termcore/pkg/log"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

type PwdCommand struct {
	verb
	wd *state.Workdir
}

func NewPwdCommand(wd *state.Workdir) *PwdCommand {
	return &PwdCommand{
		verb: verb{name: "pwd", usage: "pwd", description: "Prints the current working directory."},
		wd:   wd,
	}
}

func (c *PwdCommand) Execute(ctx context.Context, _ string) (string, error) {
	dir, err := c.wd.Get()
	if err != nil {
		return "", failure("retrieving current directory", err)
	}
	return dir, nil
}

type ListCommand struct {
	verb
	wd *state.Workdir
}

func NewListCommand(wd *state.Workdir) *ListCommand {
	return &ListCommand{
		verb: verb{name: "ls", usage: "ls", description: "Lists files in the current directory."},
		wd:   wd,
	}
}

// Execute lists names in directory order. A failure while reading keeps the
// names read so far; only failing to open the directory is reported.
func (c *ListCommand) Execute(ctx context.Context, _ string) (string, error) {
	var names []string
	err := c.wd.Read(func() error {
		dir, err := os.Open(".")
		if err != nil {
			return err
		}
		defer dir.Close()

		entries, err := dir.ReadDir(-1)
		if err != nil {
			log.FromCtx(ctx).Debug().Err(err).Int("read", len(entries)).Msg("partial directory listing")
		}
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		return nil
	})
	if err != nil {
		return "", failure("listing files", err)
	}
	return strings.Join(names, "\n"), nil
}

type CatCommand struct {
	verb
	wd *state.Workdir
}

func NewCatCommand(wd *state.Workdir) *CatCommand {
	return &CatCommand{
		verb: verb{name: "cat", usage: "cat [file]", description: "Displays the contents of a file.", args: true},
		wd:   wd,
	}
}

func (c *CatCommand) Execute(ctx context.Context, path string) (string, error) {
	var content []byte
	err := c.wd.Read(func() error {
		var err error
		content, err = os.ReadFile(path)
		return err
	})
	if err != nil {
		return "", failure("reading file", err)
	}
	if !utf8.Valid(content) {
		return "", failure("reading file", errInvalidUTF8)
	}
	return string(content), nil
}

type TouchCommand struct {
	verb
	wd *state.Workdir
}

func NewTouchCommand(wd *state.Workdir) *TouchCommand {
	return &TouchCommand{
		verb: verb{name: "touch", usage: "touch [file]", description: "Creates an empty file.", args: true},
		wd:   wd,
	}
}

func (c *TouchCommand) Execute(ctx context.Context, path string) (string, error) {
	err := c.wd.Read(func() error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		return f.Close()
	})
	if err != nil {
		return "", failure("creating file", err)
	}
	return "Created file: " + path, nil
}

type RemoveCommand struct {
	verb
	wd *state.Workdir
}

func NewRemoveCommand(wd *state.Workdir) *RemoveCommand {
	return &RemoveCommand{
		verb: verb{name: "rm", usage: "rm [file]", description: "Deletes the specified file.", args: true},
		wd:   wd,
	}
}

// Execute removes files only; directories are refused like unlink(2) does.
func (c *RemoveCommand) Execute(ctx context.Context, path string) (string, error) {
	err := c.wd.Read(func() error {
		info, err := os.Lstat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return &fs.PathError{Op: "remove", Path: path, Err: syscall.EISDIR}
		}
		return os.Remove(path)
	})
	if err != nil {
		return "", failure("deleting file", err)
	}
	return "Deleted file: " + path, nil
}

type WriteCommand struct {
	verb
	wd *state.Workdir
}

func NewWriteCommand(wd *state.Workdir) *WriteCommand {
	return &WriteCommand{
		verb: verb{
			name:        "write",
			usage:       "write [file]",
			description: "Appends text to the file, creating it if needed.",
			args:        true,
		},
		wd: wd,
	}
}

// Execute appends "<text>\n" to the named file. It never truncates.
func (c *WriteCommand) Execute(ctx context.Context, args string) (string, error) {
	filename, content, _ := strings.Cut(args, " ")
	if filename == "" || content == "" {
		return "", &usageError{usage: `write <filename> "<text>"`}
	}

	err := c.wd.Read(func() error {
		f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return failure("opening file", err)
		}
		defer f.Close()

		if _, err := fmt.Fprintln(f, content); err != nil {
			return failure("writing to file", err)
		}
		return f.Close()
	})
	if err != nil {
		var op *opError
		if errors.As(err, &op) {
			return "", err
		}
		return "", failure("writing to file", err)
	}
	return "Text written to " + filename, nil
}
