package cleanup

import (
	"errors"

	gluetypes "github.com/aws/aws-sdk-go-v2/service/glue/types"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Status classifies one deletion attempt.
type Status string

const (
	StatusDeleted  Status = "deleted"
	StatusNotFound Status = "not_found"
	StatusFailed   Status = "failed"
)

// Outcome is the result of a single idempotent deletion attempt. Deleters
// return it instead of an error, which makes the never-propagate contract
// part of their signature: the sweep sequences attempts without branching
// on results.
type Outcome struct {
	Kind   string
	Name   string
	Status Status
	Err    error
}

func classify(kind, name string, err error) Outcome {
	o := Outcome{Kind: kind, Name: name, Status: StatusDeleted}
	if err == nil {
		return o
	}
	o.Err = err
	if isNotFound(err) {
		o.Status = StatusNotFound
	} else {
		o.Status = StatusFailed
	}
	return o
}

// isNotFound reports whether err means the resource is already absent.
// Already-absent is the expected steady state for a re-run sweep, so it is
// kept distinct from real failures.
func isNotFound(err error) bool {
	var glueNF *gluetypes.EntityNotFoundException
	if errors.As(err, &glueNF) {
		return true
	}
	var iamNF *iamtypes.NoSuchEntityException
	if errors.As(err, &iamNF) {
		return true
	}
	var noBucket *s3types.NoSuchBucket
	if errors.As(err, &noBucket) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "EntityNotFoundException", "NoSuchEntity", "NoSuchBucket", "NotFound", "ResourceNotFoundException":
			return true
		}
	}
	return false
}
