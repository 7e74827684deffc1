package cleanup

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
)

// defaultDatabase ships with every Glue catalog and must never be deleted.
const defaultDatabase = "default"

// sweepCatalog enumerates catalog databases and deletes them bottom-up:
// every table of a database is attempted strictly before the database
// itself. The catalog rejects dropping a database that still holds tables,
// so the order is load-bearing, not cosmetic.
//
// A listing failure logs and abandons the walk; individual deletions are
// already isolated by the deleter contract.
func (s *Sweeper) sweepCatalog(ctx context.Context) {
	var nextToken *string
	for {
		page, err := s.glue.GetDatabases(ctx, &glue.GetDatabasesInput{NextToken: nextToken})
		if err != nil {
			s.log.Warn().Err(err).Msg("could not list catalog databases, skipping catalog sweep")
			return
		}

		for _, db := range page.DatabaseList {
			name := aws.ToString(db.Name)
			if name == defaultDatabase {
				continue
			}
			s.sweepDatabase(ctx, name)
		}

		if page.NextToken == nil {
			return
		}
		nextToken = page.NextToken
	}
}

// sweepDatabase deletes all tables of one database, then the database.
func (s *Sweeper) sweepDatabase(ctx context.Context, database string) {
	var nextToken *string
	for {
		page, err := s.glue.GetTables(ctx, &glue.GetTablesInput{
			DatabaseName: aws.String(database),
			NextToken:    nextToken,
		})
		if err != nil {
			// Without the table listing the database cannot be dropped in
			// order; leave it for the next sweep.
			s.log.Warn().Err(err).Str("database", database).Msg("could not list catalog tables, skipping database")
			return
		}

		for _, table := range page.TableList {
			s.deleteTable(ctx, database, aws.ToString(table.Name))
		}

		if page.NextToken == nil {
			break
		}
		nextToken = page.NextToken
	}

	s.deleteDatabase(ctx, database)
}
