// Package script replays line-oriented menu scenarios against the engine.
//
// Each non-blank line is one command; '#' starts a comment.
//
//	spawn <name> [kind=<kind>] [parent=<name>] [marker...]
//	parent <child> <parent|->
//	push|remove|toggle|despawn <name>
//	close <name>
//	show <kind>
//	tick
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Command is a parsed script line.
type Command struct {
	Line int
	Op   string
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Op
	}
	return c.Op + " " + strings.Join(c.Args, " ")
}

var arity = map[string][2]int{
	"spawn":   {1, -1},
	"parent":  {2, 2},
	"push":    {1, 1},
	"remove":  {1, 1},
	"toggle":  {1, 1},
	"despawn": {1, 1},
	"close":   {1, 1},
	"show":    {1, 1},
	"tick":    {0, 0},
}

// Parse reads commands from r, validating operation names and argument counts.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		op := strings.ToLower(fields[0])
		bounds, ok := arity[op]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown command %q", line, fields[0])
		}
		args := fields[1:]
		if len(args) < bounds[0] || (bounds[1] >= 0 && len(args) > bounds[1]) {
			return nil, fmt.Errorf("line %d: %s: wrong number of arguments (%d)", line, op, len(args))
		}
		cmds = append(cmds, Command{Line: line, Op: op, Args: args})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}
