// Package awsapi narrows the AWS SDK clients to the calls this handler makes.
package awsapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// GlueAPI defines the Glue operations used by the teardown pass.
type GlueAPI interface {
	DeleteJob(ctx context.Context, params *glue.DeleteJobInput, optFns ...func(*glue.Options)) (*glue.DeleteJobOutput, error)
	GetDatabases(ctx context.Context, params *glue.GetDatabasesInput, optFns ...func(*glue.Options)) (*glue.GetDatabasesOutput, error)
	GetTables(ctx context.Context, params *glue.GetTablesInput, optFns ...func(*glue.Options)) (*glue.GetTablesOutput, error)
	DeleteTable(ctx context.Context, params *glue.DeleteTableInput, optFns ...func(*glue.Options)) (*glue.DeleteTableOutput, error)
	DeleteDatabase(ctx context.Context, params *glue.DeleteDatabaseInput, optFns ...func(*glue.Options)) (*glue.DeleteDatabaseOutput, error)
	DeleteConnection(ctx context.Context, params *glue.DeleteConnectionInput, optFns ...func(*glue.Options)) (*glue.DeleteConnectionOutput, error)
	ListDataQualityRulesets(ctx context.Context, params *glue.ListDataQualityRulesetsInput, optFns ...func(*glue.Options)) (*glue.ListDataQualityRulesetsOutput, error)
	DeleteDataQualityRuleset(ctx context.Context, params *glue.DeleteDataQualityRulesetInput, optFns ...func(*glue.Options)) (*glue.DeleteDataQualityRulesetOutput, error)
}

// IAMAPI defines the IAM operations used by the teardown pass.
type IAMAPI interface {
	DeleteRolePolicy(ctx context.Context, params *iam.DeleteRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DeleteRolePolicyOutput, error)
	DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error)
}

// S3API defines the S3 operations used by both lifecycle paths.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectVersions(ctx context.Context, params *s3.ListObjectVersionsInput, optFns ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// STSAPI defines the STS operations used by the bulk import.
type STSAPI interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}
