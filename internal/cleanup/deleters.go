// Package cleanup sweeps the lab environment back to a clean slate.
//
// Every deleter is best-effort and idempotent: it attempts one resource,
// classifies the result as an Outcome, logs it, and returns normally. The
// sweep is safe to run against an environment in any state, including one
// that was never provisioned or is already torn down.
package cleanup

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/rs/zerolog"

	"github.com/deftunes/labsetup/internal/awsapi"
	"github.com/deftunes/labsetup/internal/inventory"
)

// Sweeper deletes every resource family in the lab inventory plus whatever
// the catalog accumulated outside direct tracking.
type Sweeper struct {
	glue awsapi.GlueAPI
	iam  awsapi.IAMAPI
	s3   awsapi.S3API
	inv  inventory.Inventory
	log  zerolog.Logger
}

// NewSweeper builds a sweeper over injected service clients.
func NewSweeper(glueClient awsapi.GlueAPI, iamClient awsapi.IAMAPI, s3Client awsapi.S3API, inv inventory.Inventory, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		glue: glueClient,
		iam:  iamClient,
		s3:   s3Client,
		inv:  inv,
		log:  log,
	}
}

// report logs an outcome with context and discards it. Outcomes are never
// escalated; logging is the only observer.
func (s *Sweeper) report(o Outcome) Outcome {
	switch o.Status {
	case StatusDeleted:
		s.log.Info().Str("kind", o.Kind).Str("name", o.Name).Msg("deleted resource")
	case StatusNotFound:
		s.log.Info().Str("kind", o.Kind).Str("name", o.Name).Msg("resource already absent")
	default:
		s.log.Warn().Str("kind", o.Kind).Str("name", o.Name).Err(o.Err).Msg("could not delete resource")
	}
	return o
}

func (s *Sweeper) deleteJob(ctx context.Context, name string) Outcome {
	_, err := s.glue.DeleteJob(ctx, &glue.DeleteJobInput{JobName: aws.String(name)})
	return s.report(classify("glue_job", name, err))
}

func (s *Sweeper) deleteTable(ctx context.Context, database, table string) Outcome {
	_, err := s.glue.DeleteTable(ctx, &glue.DeleteTableInput{
		DatabaseName: aws.String(database),
		Name:         aws.String(table),
	})
	return s.report(classify("glue_table", database+"."+table, err))
}

func (s *Sweeper) deleteDatabase(ctx context.Context, name string) Outcome {
	_, err := s.glue.DeleteDatabase(ctx, &glue.DeleteDatabaseInput{Name: aws.String(name)})
	return s.report(classify("glue_database", name, err))
}

func (s *Sweeper) deleteConnection(ctx context.Context, name string) Outcome {
	_, err := s.glue.DeleteConnection(ctx, &glue.DeleteConnectionInput{ConnectionName: aws.String(name)})
	return s.report(classify("glue_connection", name, err))
}

func (s *Sweeper) deleteRuleset(ctx context.Context, name string) Outcome {
	_, err := s.glue.DeleteDataQualityRuleset(ctx, &glue.DeleteDataQualityRulesetInput{Name: aws.String(name)})
	return s.report(classify("glue_ruleset", name, err))
}

func (s *Sweeper) deleteRolePolicy(ctx context.Context, role, policy string) Outcome {
	_, err := s.iam.DeleteRolePolicy(ctx, &iam.DeleteRolePolicyInput{
		RoleName:   aws.String(role),
		PolicyName: aws.String(policy),
	})
	return s.report(classify("iam_role_policy", role+"/"+policy, err))
}

func (s *Sweeper) deleteRole(ctx context.Context, name string) Outcome {
	_, err := s.iam.DeleteRole(ctx, &iam.DeleteRoleInput{RoleName: aws.String(name)})
	return s.report(classify("iam_role", name, err))
}
