package awsapi

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Clients bundles the concrete service clients built from one shared SDK
// config. They are constructed once in main and injected; no package-level
// singletons.
type Clients struct {
	Glue GlueAPI
	IAM  IAMAPI
	S3   S3API
	STS  STSAPI
}

// NewClients builds all service clients from a loaded SDK config.
func NewClients(cfg aws.Config) *Clients {
	return &Clients{
		Glue: glue.NewFromConfig(cfg),
		IAM:  iam.NewFromConfig(cfg),
		S3:   s3.NewFromConfig(cfg),
		STS:  sts.NewFromConfig(cfg),
	}
}
