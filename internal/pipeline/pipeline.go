// Package pipeline runs the validate → map → persist sequence shared by
// every feature service and reports the outcome as a Result.
package pipeline

import (
	"context"
	"fmt"

	"ai-assistant-be/internal/pkg/apperror"
	"ai-assistant-be/internal/pkg/logger"
)

type State string

const (
	StateReceived   State = "RECEIVED"
	StateValidating State = "VALIDATING"
	StateRejected   State = "REJECTED"
	StateMapping    State = "MAPPING"
	StatePersisting State = "PERSISTING"
	StateResponding State = "RESPONDING"
	StateDone       State = "DONE"
)

// Outcome is a validator's verdict. The zero value is a rejection with no
// reason, so validators must opt in to acceptance.
type Outcome struct {
	accepted bool
	reason   string
}

func Accept() Outcome {
	return Outcome{accepted: true}
}

func Reject(reason string) Outcome {
	return Outcome{reason: reason}
}

func (o Outcome) Accepted() bool { return o.accepted }

func (o Outcome) Reason() string { return o.reason }

type Validator[Req any] interface {
	Validate(req *Req) Outcome
}

type Mapper[Req, Ent any] interface {
	MapToEntity(req *Req, existing *Ent) (*Ent, error)
}

type Store[Ent any] interface {
	Create(ctx context.Context, ent *Ent) error
}

type ValidatorFunc[Req any] func(req *Req) Outcome

func (f ValidatorFunc[Req]) Validate(req *Req) Outcome { return f(req) }

type MapperFunc[Req, Ent any] func(req *Req, existing *Ent) (*Ent, error)

func (f MapperFunc[Req, Ent]) MapToEntity(req *Req, existing *Ent) (*Ent, error) {
	return f(req, existing)
}

type StoreFunc[Ent any] func(ctx context.Context, ent *Ent) error

func (f StoreFunc[Ent]) Create(ctx context.Context, ent *Ent) error { return f(ctx, ent) }

// Result holds either the stored entity or the rejection, never both.
type Result[Ent any] struct {
	Entity    *Ent
	Rejection *apperror.Error
	States    []State
}

func (r *Result[Ent]) Rejected() bool {
	return r.Rejection != nil
}

func (r *Result[Ent]) enter(s State) {
	r.States = append(r.States, s)
}

func (r *Result[Ent]) reject(err *apperror.Error) {
	r.Entity = nil
	r.Rejection = err
	r.enter(StateRejected)
}

type Pipeline[Req, Ent any] struct {
	name      string
	validator Validator[Req]
	mapper    Mapper[Req, Ent]
	store     Store[Ent]
	logger    logger.ILogger
}

func New[Req, Ent any](
	name string,
	validator Validator[Req],
	mapper Mapper[Req, Ent],
	store Store[Ent],
	log logger.ILogger,
) *Pipeline[Req, Ent] {
	return &Pipeline[Req, Ent]{
		name:      name,
		validator: validator,
		mapper:    mapper,
		store:     store,
		logger:    log,
	}
}

// Run never panics and always returns exactly one Result. The store is not
// touched unless the request was accepted and mapped.
func (p *Pipeline[Req, Ent]) Run(ctx context.Context, req *Req) (result Result[Ent]) {
	result.enter(StateReceived)

	defer func() {
		if r := recover(); r != nil {
			result.reject(apperror.Internal(fmt.Errorf("panic: %v", r)))
		}
		result.enter(StateResponding)
		result.enter(StateDone)
		p.report(&result)
	}()

	result.enter(StateValidating)
	outcome := p.validator.Validate(req)
	if !outcome.Accepted() {
		result.reject(apperror.Validation(outcome.Reason()))
		return result
	}

	result.enter(StateMapping)
	ent, err := p.mapper.MapToEntity(req, nil)
	if err != nil {
		result.reject(classify(err, apperror.KindInternal))
		return result
	}

	result.enter(StatePersisting)
	if err := p.store.Create(ctx, ent); err != nil {
		result.reject(classify(err, apperror.KindStorage))
		return result
	}

	result.Entity = ent
	return result
}

func classify(err error, fallback apperror.Kind) *apperror.Error {
	if appErr, ok := apperror.As(err); ok {
		return appErr
	}
	if fallback == apperror.KindStorage {
		return apperror.Storage("store operation failed", err)
	}
	return apperror.Internal(err)
}

func (p *Pipeline[Req, Ent]) report(result *Result[Ent]) {
	if !result.Rejected() {
		p.logger.Debug(p.name, "request processed", nil)
		return
	}

	details := map[string]interface{}{
		"kind":   string(result.Rejection.Kind),
		"reason": result.Rejection.Reason,
	}
	if result.Rejection.Err != nil {
		details["error"] = result.Rejection.Err.Error()
	}

	switch result.Rejection.Kind {
	case apperror.KindValidation:
		p.logger.Info(p.name, "request rejected", details)
	default:
		p.logger.Error(p.name, "request failed", details)
	}
}
