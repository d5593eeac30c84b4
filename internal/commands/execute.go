package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add   func(AddArgs) (Result, error)
	Goal  func(GoalArgs) (Result, error)
	Plan  func(PlanArgs) (Result, error)
	Sched func(SchedArgs) (Result, error)
	Carry func() (Result, error)
	Go    func(GoArgs) (Result, error)
	Photo func(PhotoArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeGoal:
		if handlers.Goal == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goal handler not configured"}
		}
		return handlers.Goal(*cmd.Goal)
	case TypePlan:
		if handlers.Plan == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "plan handler not configured"}
		}
		return handlers.Plan(*cmd.Plan)
	case TypeSched:
		if handlers.Sched == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sched handler not configured"}
		}
		return handlers.Sched(*cmd.Sched)
	case TypeCarry:
		if handlers.Carry == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "carry handler not configured"}
		}
		return handlers.Carry()
	case TypeGo:
		if handlers.Go == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "go handler not configured"}
		}
		return handlers.Go(*cmd.Go)
	case TypePhoto:
		if handlers.Photo == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "photo handler not configured"}
		}
		return handlers.Photo(*cmd.Photo)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
