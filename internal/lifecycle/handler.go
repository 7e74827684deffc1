// Package lifecycle dispatches CloudFormation custom-resource events.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"

	"github.com/deftunes/labsetup/internal/cleanup"
)

// Provisioner runs the Create path.
type Provisioner interface {
	Run(ctx context.Context) error
}

// Sweeper runs the teardown pass and empties individual buckets.
type Sweeper interface {
	Sweep(ctx context.Context)
	EmptyBucket(ctx context.Context, bucket string) cleanup.Outcome
}

// Handler routes one lifecycle event to the matching path and sends exactly
// one completion signal, whatever happens internally: the stack operation
// on the other end blocks until the signal arrives.
type Handler struct {
	provisioner Provisioner
	sweeper     Sweeper
	buckets     []string
	responder   Responder
	log         zerolog.Logger
}

// NewHandler builds the lifecycle handler.
func NewHandler(provisioner Provisioner, sweeper Sweeper, buckets []string, responder Responder, log zerolog.Logger) *Handler {
	return &Handler{
		provisioner: provisioner,
		sweeper:     sweeper,
		buckets:     buckets,
		responder:   responder,
		log:         log,
	}
}

// Handle processes one event. Create is fail-fast and reports FAILED on any
// error; Delete is best-effort and always reports SUCCESS so a broken
// environment can still be torn down. Unknown request types report FAILED
// instead of silently succeeding.
func (h *Handler) Handle(ctx context.Context, event cfn.Event) error {
	h.log.Info().
		Str("request_type", string(event.RequestType)).
		Str("stack_id", event.StackID).
		Str("request_id", event.RequestID).
		Msg("received lifecycle event")

	resp := h.newResponse(event)

	switch event.RequestType {
	case cfn.RequestCreate:
		if err := h.provisioner.Run(ctx); err != nil {
			h.log.Error().Err(err).Msg("provisioning failed")
			resp.Status = cfn.StatusFailed
			resp.Reason = err.Error()
		}

	case cfn.RequestDelete:
		h.sweeper.Sweep(ctx)
		for _, bucket := range h.buckets {
			h.sweeper.EmptyBucket(ctx, bucket)
		}
		h.log.Info().
			Str("physical_resource_id", resp.PhysicalResourceID).
			Str("logical_resource_id", resp.LogicalResourceID).
			Msg("teardown complete")

	case cfn.RequestUpdate:
		// Stack updates do not reshape the lab; acknowledge and move on.
		h.log.Info().Msg("update event acknowledged, no action")

	default:
		resp.Status = cfn.StatusFailed
		resp.Reason = fmt.Sprintf("unsupported request type %q", event.RequestType)
	}

	if err := h.responder.Send(ctx, event.ResponseURL, resp); err != nil {
		h.log.Error().Err(err).Msg("could not send completion signal")
		return err
	}
	h.log.Info().Str("status", string(resp.Status)).Msg("completion signal sent")
	return nil
}

func (h *Handler) newResponse(event cfn.Event) Response {
	physicalID := event.PhysicalResourceID
	if physicalID == "" {
		// First Create has no physical ID yet; the log stream name is the
		// conventional stand-in.
		physicalID = lambdacontext.LogStreamName
	}
	return Response{
		Status:             cfn.StatusSuccess,
		PhysicalResourceID: physicalID,
		StackID:            event.StackID,
		RequestID:          event.RequestID,
		LogicalResourceID:  event.LogicalResourceID,
	}
}
