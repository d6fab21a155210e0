package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CommandArgs holds a command name followed by "-key value" parameters,
// e.g. "tests tactic -depth 4 -eval material".
type CommandArgs struct {
	commandName string
	params      map[string]string
}

func NewCommandArgs(args []string) *CommandArgs {
	var result = &CommandArgs{params: make(map[string]string)}
	for i := 1; i < len(args); i++ {
		var arg = args[i]
		if key, ok := strings.CutPrefix(arg, "-"); ok {
			if i+1 < len(args) {
				result.params[key] = args[i+1]
				i++
			}
			continue
		}
		if result.commandName == "" {
			result.commandName = arg
		}
	}
	return result
}

func (ca *CommandArgs) CommandName() string {
	return ca.commandName
}

func (ca *CommandArgs) GetString(name string, defaultVal string) string {
	if val, ok := ca.params[name]; ok {
		return val
	}
	return defaultVal
}

func (ca *CommandArgs) GetInt(name string, defaultVal int) int {
	var v, err = strconv.Atoi(ca.GetString(name, ""))
	if err != nil {
		return defaultVal
	}
	return v
}

type CommandHandler struct {
	items map[string]func() error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func() error),
	}
}

func (ch *CommandHandler) Add(name string, handler func() error) {
	ch.items[name] = handler
}

func (ch *CommandHandler) Execute(commandName string) error {
	handler, found := ch.items[commandName]
	if !found {
		var names = make([]string, 0, len(ch.items))
		for name := range ch.items {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("command not found %q, available: %v", commandName, strings.Join(names, ", "))
	}
	return handler()
}
