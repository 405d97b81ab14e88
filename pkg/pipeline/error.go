package pipeline

import (
	"fmt"
)

type ErrPipeline = error

func NewPipelineError(err error) ErrPipeline {
	return fmt.Errorf("failed to evaluate pipeline: %w", err)
}

type ErrStage = error

func NewStageError(op string, err error) ErrStage {
	return fmt.Errorf("failed to evaluate %s stage: %w", op, err)
}

type ErrJoin = error

func NewJoinError(err error) ErrJoin {
	return fmt.Errorf("failed to evaluate join expression: %w", err)
}

type ErrInvalidObject = error

func NewInvalidObjectError(message string) ErrInvalidObject {
	return fmt.Errorf("invalid object: %s", message)
}

type ErrPlan = error

func NewPlanError(view string, err error) ErrPlan {
	return fmt.Errorf("failed to evaluate view %q: %w", view, err)
}
