package lifecycle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/cfn"
)

// Response is the completion payload CloudFormation polls for. The stack
// operation blocks until exactly one of these lands on the event's
// pre-signed response URL.
type Response struct {
	Status             cfn.StatusType    `json:"Status"`
	Reason             string            `json:"Reason,omitempty"`
	PhysicalResourceID string            `json:"PhysicalResourceId"`
	StackID            string            `json:"StackId"`
	RequestID          string            `json:"RequestId"`
	LogicalResourceID  string            `json:"LogicalResourceId"`
	Data               map[string]string `json:"Data,omitempty"`
}

// Responder delivers the completion signal for one invocation.
type Responder interface {
	Send(ctx context.Context, url string, resp Response) error
}

// HTTPResponder PUTs the completion payload to the pre-signed S3 URL.
type HTTPResponder struct {
	Client *http.Client
}

// NewHTTPResponder builds a responder with a default client.
func NewHTTPResponder() *HTTPResponder {
	return &HTTPResponder{Client: http.DefaultClient}
}

// Send delivers resp to url.
func (r *HTTPResponder) Send(ctx context.Context, url string, resp Response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal completion payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build completion request: %w", err)
	}
	// The pre-signed URL was signed with an empty content type; setting one
	// invalidates the signature.
	req.Header.Set("Content-Type", "")

	res, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send completion signal: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return fmt.Errorf("completion signal rejected: %s", res.Status)
	}
	return nil
}
