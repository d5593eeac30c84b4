// Package commands parses command-palette input into typed planner intents.
// Every mutation the palette can cause goes through one of these commands and
// is applied by a handler, which keeps the UI layer free of ad hoc state
// edits.
package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd   Type = "add"   // add an ad hoc task to the selected day
	TypeGoal  Type = "goal"  // create a goal from "name: task, task"
	TypePlan  Type = "plan"  // generate a goal from a free-form prompt
	TypeSched Type = "sched" // schedule a task for a future date
	TypeCarry Type = "carry" // carry yesterday's unfinished tasks over
	TypeGo    Type = "go"    // jump the selected day
	TypePhoto Type = "photo" // attach or clear the day's photo
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Task string
}

type GoalArgs struct {
	Name  string
	Tasks string
}

type PlanArgs struct {
	Prompt string
}

type SchedArgs struct {
	Date string
	Task string
}

type GoArgs struct {
	When string
}

type PhotoArgs struct {
	Path  string
	Clear bool
}

type Command struct {
	Type  Type
	Raw   string
	Add   *AddArgs
	Goal  *GoalArgs
	Plan  *PlanArgs
	Sched *SchedArgs
	Go    *GoArgs
	Photo *PhotoArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	rest := strings.TrimSpace(strings.TrimPrefix(raw, parts[0]))

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeGoal:
		return parseGoal(input, rest)
	case TypePlan:
		return parsePlan(input, rest)
	case TypeSched:
		return parseSched(input, parts[1:])
	case TypeCarry:
		return Command{Type: TypeCarry, Raw: input}, nil
	case TypeGo:
		return parseGo(input, rest)
	case TypePhoto:
		return parsePhoto(input, rest)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Task: rest}}, nil
}

func parseGoal(raw, rest string) (Command, error) {
	name, tasks, found := strings.Cut(rest, ":")
	if !found || strings.TrimSpace(name) == "" || strings.TrimSpace(tasks) == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: `goal requires "name: task, task"`}
	}
	return Command{Type: TypeGoal, Raw: raw, Goal: &GoalArgs{
		Name:  strings.TrimSpace(name),
		Tasks: strings.TrimSpace(tasks),
	}}, nil
}

func parsePlan(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "plan requires a prompt"}
	}
	return Command{Type: TypePlan, Raw: raw, Plan: &PlanArgs{Prompt: rest}}, nil
}

func parseSched(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sched requires a date and a task"}
	}
	return Command{Type: TypeSched, Raw: raw, Sched: &SchedArgs{
		Date: args[0],
		Task: strings.Join(args[1:], " "),
	}}, nil
}

func parseGo(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: `go requires a date or "today"`}
	}
	return Command{Type: TypeGo, Raw: raw, Go: &GoArgs{When: strings.ToLower(rest)}}, nil
}

func parsePhoto(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: `photo requires a file path or "clear"`}
	}
	if strings.EqualFold(rest, "clear") {
		return Command{Type: TypePhoto, Raw: raw, Photo: &PhotoArgs{Clear: true}}, nil
	}
	return Command{Type: TypePhoto, Raw: raw, Photo: &PhotoArgs{Path: rest}}, nil
}
