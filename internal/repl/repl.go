// Package repl implements the line-oriented command interpreter over the
// forest engine. It reads whitespace-delimited commands, converts textual
// ids, invokes engine operations, and prints results; every failure is
// reported to the user and the loop continues.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todotree.dev/todotree/internal/engine"
	"todotree.dev/todotree/internal/errors"
	"todotree.dev/todotree/internal/output"
	"todotree.dev/todotree/internal/runtime"
	"todotree.dev/todotree/internal/utils"
)

const helpText = `Commands:
  root <title>               create a top-level task
  child <parent_id> <title>  create a task under parent_id
  toggle <id>                flip a task's done flag
  delete <id>                delete a task and its whole subtree
  move <id> <new_parent_id>  reparent a task (cycles are rejected)
  get <id>                   show one task
  show                       print the whole forest
  help                       print this help
  quit | exit                end the session`

// REPL is a line-oriented session over a single engine
type REPL struct {
	ctx      *runtime.Context
	in       io.Reader
	renderer *output.ForestRenderer

	// Prompt is printed before each read when non-empty
	Prompt string
}

// New creates a REPL reading commands from in
func New(ctx *runtime.Context, in io.Reader) *REPL {
	return &REPL{
		ctx:      ctx,
		in:       in,
		renderer: output.NewForestRenderer(ctx.Engine),
	}
}

// Run reads and executes commands until quit/exit or EOF
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.in)
	for {
		if r.Prompt != "" {
			r.ctx.Splog.Page(r.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		quit, err := r.Execute(scanner.Text())
		if err != nil {
			r.ctx.Splog.Error("%v", err)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line. It returns true when the session
// should end. Errors are returned to the caller, never fatal: engine
// failures surface as NodeNotFound/InvalidMove, malformed input as a
// ParseError before the engine is ever invoked.
func (r *REPL) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "root":
		return false, r.cmdRoot(args)
	case "child":
		return false, r.cmdChild(args)
	case "toggle":
		return false, r.cmdToggle(args)
	case "delete":
		return false, r.cmdDelete(args)
	case "move":
		return false, r.cmdMove(args)
	case "get":
		return false, r.cmdGet(args)
	case "show":
		r.ctx.Splog.Page(r.renderer.RenderString(output.RenderOptions{}))
		return false, nil
	case "help":
		r.ctx.Splog.Info(helpText)
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, errors.NewParseError(cmd, "unknown command (try 'help')")
	}
}

func (r *REPL) cmdRoot(args []string) error {
	title, err := titleArg("root", args)
	if err != nil {
		return err
	}

	id := r.ctx.Engine.AddRoot(title)
	r.ctx.Splog.Info("Created root %d", id)
	return nil
}

func (r *REPL) cmdChild(args []string) error {
	if len(args) < 1 {
		return errors.NewParseError("child", "usage: child <parent_id> <title>")
	}
	parentID, err := parseID("child", args[0])
	if err != nil {
		return err
	}
	title, err := titleArg("child", args[1:])
	if err != nil {
		return err
	}

	id, err := r.ctx.Engine.AddChild(parentID, title)
	if err != nil {
		return err
	}
	r.ctx.Splog.Info("Created node %d under %d", id, parentID)
	return nil
}

func (r *REPL) cmdToggle(args []string) error {
	id, err := oneID("toggle", args)
	if err != nil {
		return err
	}

	if err := r.ctx.Engine.Toggle(id); err != nil {
		return err
	}

	info, err := r.ctx.Engine.Get(id)
	if err != nil {
		return err
	}
	r.ctx.Splog.Info("Node %d done=%v", id, info.Done)
	return nil
}

func (r *REPL) cmdDelete(args []string) error {
	id, err := oneID("delete", args)
	if err != nil {
		return err
	}

	descendants, err := r.ctx.Engine.Descendants(id)
	if err != nil {
		return err
	}
	if err := r.ctx.Engine.Delete(id); err != nil {
		return err
	}

	if len(descendants) > 0 {
		r.ctx.Splog.Info("Deleted node %d and %d descendants", id, len(descendants))
	} else {
		r.ctx.Splog.Info("Deleted node %d", id)
	}
	return nil
}

func (r *REPL) cmdMove(args []string) error {
	if len(args) != 2 {
		return errors.NewParseError("move", "usage: move <id> <new_parent_id>")
	}
	id, err := parseID("move", args[0])
	if err != nil {
		return err
	}
	newParentID, err := parseID("move", args[1])
	if err != nil {
		return err
	}

	if err := r.ctx.Engine.Move(id, newParentID); err != nil {
		return err
	}
	r.ctx.Splog.Info("Moved node %d under %d", id, newParentID)
	return nil
}

func (r *REPL) cmdGet(args []string) error {
	id, err := oneID("get", args)
	if err != nil {
		return err
	}

	info, err := r.ctx.Engine.Get(id)
	if err != nil {
		return err
	}

	marker := " "
	if info.Done {
		marker = "x"
	}
	r.ctx.Splog.Info("[%s] %s (id: %d)", marker, info.Title, info.ID)
	if info.IsRoot() {
		r.ctx.Splog.Info("  root, %d children", len(info.ChildIDs))
	} else {
		r.ctx.Splog.Info("  parent %d, %d children", info.ParentID, len(info.ChildIDs))
	}
	return nil
}

// parseID converts a textual id. Failures are ParseErrors: the engine only
// ever sees well-typed ids.
func parseID(cmd, token string) (engine.NodeID, error) {
	v, err := strconv.ParseUint(token, 10, 64)
	if err != nil || v == 0 {
		return engine.NoNode, errors.NewParseError(cmd, fmt.Sprintf("invalid id %q", token))
	}
	return engine.NodeID(v), nil
}

func oneID(cmd string, args []string) (engine.NodeID, error) {
	if len(args) != 1 {
		return engine.NoNode, errors.NewParseError(cmd, "usage: "+cmd+" <id>")
	}
	return parseID(cmd, args[0])
}

func titleArg(cmd string, args []string) (string, error) {
	title := strings.Join(args, " ")
	if err := utils.ValidateTitle(title); err != nil {
		return "", errors.NewParseError(cmd, "title must not be empty")
	}
	return title, nil
}
