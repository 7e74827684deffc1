package cleanup

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	gluetypes "github.com/aws/aws-sdk-go-v2/service/glue/types"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"no error", nil, StatusDeleted},
		{"glue entity missing", &gluetypes.EntityNotFoundException{Message: aws.String("no such table")}, StatusNotFound},
		{"iam entity missing", &iamtypes.NoSuchEntityException{Message: aws.String("no such role")}, StatusNotFound},
		{"bucket missing", &s3types.NoSuchBucket{}, StatusNotFound},
		{"generic api not found", &smithy.GenericAPIError{Code: "ResourceNotFoundException"}, StatusNotFound},
		{"wrapped not found", &smithy.OperationError{Err: &gluetypes.EntityNotFoundException{}}, StatusNotFound},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDeniedException"}, StatusFailed},
		{"plain error", errors.New("connection reset"), StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := classify("glue_job", "job", tt.err)
			assert.Equal(t, tt.want, o.Status)
			if tt.err != nil {
				assert.Error(t, o.Err)
			}
		})
	}
}
