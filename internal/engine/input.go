package engine

import "context"

// Input is the inbound surface an input source drives. Controller implements it.
type Input interface {
	OnDirectionRequest(d Direction) bool
	OnRestartRequest() bool
}

// InputSource delivers requests to an Input until ctx is cancelled or the
// source is exhausted. Delivery is asynchronous with respect to ticks.
type InputSource interface {
	Run(ctx context.Context, in Input) error
}

var _ Input = (*Controller)(nil)
