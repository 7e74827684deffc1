// labsetup provisions and tears down the data-platform lab environment in
// response to CloudFormation custom-resource lifecycle events.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"

	"github.com/deftunes/labsetup/internal/awsapi"
	"github.com/deftunes/labsetup/internal/cleanup"
	"github.com/deftunes/labsetup/internal/config"
	"github.com/deftunes/labsetup/internal/database"
	"github.com/deftunes/labsetup/internal/inventory"
	"github.com/deftunes/labsetup/internal/lifecycle"
	"github.com/deftunes/labsetup/internal/provision"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "labsetup").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}
	if level, perr := zerolog.ParseLevel(cfg.LogLevel); perr == nil {
		zerolog.SetGlobalLevel(level)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		log.Fatal().Err(err).Msg("could not load AWS config")
	}

	clients := awsapi.NewClients(awsCfg)
	inv := inventory.New(cfg.Project, cfg.AccountID, cfg.Region)
	sweeper := cleanup.NewSweeper(clients.Glue, clients.IAM, clients.S3, inv, log)

	connect := func(ctx context.Context) (database.Executor, error) {
		return database.Connect(ctx, cfg.DSN(), log)
	}
	provisioner := provision.New(sweeper, clients.S3, clients.STS, connect, cfg, log)

	handler := lifecycle.NewHandler(provisioner, sweeper, inv.BucketNames, lifecycle.NewHTTPResponder(), log)
	lambda.Start(handler.Handle)
}
