package commands

import (
	"errors"

	"osonish/internal/core/domain/model/kernel"
	"osonish/internal/pkg/guard"
)

var ErrAutoTransitionOrdersCommandIsNotConstructed = errors.New(
	"AutoTransitionOrdersCommand must be created via NewAutoTransitionOrdersCommand constructor",
)

// AutoTransitionOrdersCommand represents a request to run the daily cutoff
// over every order whose service date has arrived. The scope narrows the run
// to a slice of the store, letting a sandbox pass touch only marked orders
// while the scheduled run covers everything.
//
// Example:
//
//	cmd, err := NewAutoTransitionOrdersCommand(kernel.NewAllScope())
//	if err != nil {
//	    return fmt.Errorf("invalid run request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("cutoff run failed: %w", err)
//	}
//	fmt.Printf("completed %d, cancelled %d", result.CompletedCount, result.CancelledCount)
type AutoTransitionOrdersCommand struct { //nolint:recvcheck //using for validation
	scope kernel.Scope

	guard guard.ConstructorGuard
}

// NewAutoTransitionOrdersCommand creates a command to run the cutoff engine
// over the given scope. Returns an error if the scope was not constructed.
func NewAutoTransitionOrdersCommand(scope kernel.Scope) (AutoTransitionOrdersCommand, error) {
	cmd := AutoTransitionOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setScope(scope); err != nil {
		return AutoTransitionOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoTransitionOrdersCommandIsNotConstructed if validation fails.
func (c AutoTransitionOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAutoTransitionOrdersCommandIsNotConstructed)
}

// Scope returns the slice of the order store this run may touch.
func (c AutoTransitionOrdersCommand) Scope() kernel.Scope {
	return c.scope
}

func (c *AutoTransitionOrdersCommand) setScope(scope kernel.Scope) error {
	if err := scope.Validate(); err != nil {
		return err
	}

	c.scope = scope
	return nil
}
