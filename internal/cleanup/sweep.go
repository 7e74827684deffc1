package cleanup

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
)

// Sweep runs the full teardown pass in a fixed sequence:
//
//  1. data-quality rulesets
//  2. inventory jobs, in inventory order
//  3. catalog tables, then their databases (default excluded)
//  4. the RDS connection
//  5. the role policy, then the role
//
// Each step is fault-isolated through the Outcome contract, so no absent
// resource or unavailable service stops the remaining steps. Sweep always
// completes; it returns nothing by construction. The policy must go before
// the role: IAM refuses to delete a role with inline policies attached.
func (s *Sweeper) Sweep(ctx context.Context) {
	s.log.Info().Msg("starting teardown sweep")

	s.sweepRulesets(ctx)

	for _, job := range s.inv.JobNames {
		s.deleteJob(ctx, job)
	}

	s.sweepCatalog(ctx)

	s.deleteConnection(ctx, s.inv.ConnectionName)

	s.deleteRolePolicy(ctx, s.inv.RoleName, s.inv.PolicyName)
	s.deleteRole(ctx, s.inv.RoleName)

	s.log.Info().Msg("teardown sweep finished")
}

// sweepRulesets deletes every data-quality ruleset the catalog knows about.
// Rulesets are auto-created alongside jobs and are not in the inventory, so
// they are discovered rather than named.
func (s *Sweeper) sweepRulesets(ctx context.Context) {
	var nextToken *string
	for {
		page, err := s.glue.ListDataQualityRulesets(ctx, &glue.ListDataQualityRulesetsInput{NextToken: nextToken})
		if err != nil {
			s.log.Warn().Err(err).Msg("could not list data quality rulesets")
			return
		}

		for _, ruleset := range page.Rulesets {
			s.deleteRuleset(ctx, aws.ToString(ruleset.Name))
		}

		if page.NextToken == nil {
			return
		}
		nextToken = page.NextToken
	}
}
