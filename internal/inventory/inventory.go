// Package inventory derives the fixed set of lab resource names.
package inventory

import "fmt"

// Inventory names every resource family the handler manages. It is a pure
// function of (project, account, region): no randomness, nothing persisted
// across invocations, so every invocation converges on the same names.
type Inventory struct {
	JobNames       []string
	BucketNames    []string
	ConnectionName string
	RoleName       string
	PolicyName     string
}

// New builds the inventory for one lab environment.
func New(project, accountID, region string) Inventory {
	return Inventory{
		JobNames: []string{
			project + "-api-users-extract-job",
			project + "-api-sessions-extract-job",
			project + "-rds-extract-job",
			project + "-json-transform-job",
			project + "-songs-transform-job",
		},
		BucketNames: []string{
			fmt.Sprintf("%s-%s-%s-scripts", project, accountID, region),
			fmt.Sprintf("%s-%s-%s-data-lake", project, accountID, region),
			fmt.Sprintf("%s-%s-%s-dags", project, accountID, region),
			fmt.Sprintf("%s-%s-%s-dbt", project, accountID, region),
		},
		ConnectionName: project + "-connection-rds",
		RoleName:       project + "-glue-role",
		PolicyName:     project + "-glue-role-policy",
	}
}
