// Package provision seeds the lab database and triggers the bulk import.
package provision

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	ststypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/rs/zerolog"

	"github.com/deftunes/labsetup/internal/awsapi"
	"github.com/deftunes/labsetup/internal/config"
	"github.com/deftunes/labsetup/internal/database"
)

// Sweeper pre-cleans the environment so a re-run Create never collides with
// stale resources.
type Sweeper interface {
	Sweep(ctx context.Context)
}

// Connector opens the database session for one provisioning run. The
// connection is opened lazily so the Delete path never touches the
// database.
type Connector func(ctx context.Context) (database.Executor, error)

// importSongs loads the songs CSV straight from S3 into the destination
// table using temporary cross-account credentials. The import is
// server-side: the file never streams through this process.
const importSongs = `SELECT aws_s3.table_import_from_s3(
    'deftunes.songs', '', '(format csv, HEADER true)',
    aws_commons.create_s3_uri($1, $2, $3),
    aws_commons.create_aws_credentials($4, $5, $6)
)`

const importSessionName = "labsetup-bulk-import"

// Provisioner runs the Create path: pre-clean, seed script, bulk import.
type Provisioner struct {
	sweeper Sweeper
	s3      awsapi.S3API
	sts     awsapi.STSAPI
	connect Connector
	cfg     config.Config
	log     zerolog.Logger
}

// New builds a provisioner over injected collaborators.
func New(sweeper Sweeper, s3Client awsapi.S3API, stsClient awsapi.STSAPI, connect Connector, cfg config.Config, log zerolog.Logger) *Provisioner {
	return &Provisioner{
		sweeper: sweeper,
		s3:      s3Client,
		sts:     stsClient,
		connect: connect,
		cfg:     cfg,
		log:     log,
	}
}

// Run executes the Create path in order: teardown sweep, fetch and apply
// the seed script on one session, then the credentialed bulk import.
// Unlike teardown, this path is fail-fast: the first error aborts the run
// and propagates to the handler.
func (p *Provisioner) Run(ctx context.Context) error {
	if err := p.validate(); err != nil {
		return err
	}

	p.sweeper.Sweep(ctx)

	script, err := p.fetchScript(ctx)
	if err != nil {
		return err
	}

	db, err := p.connect(ctx)
	if err != nil {
		return fmt.Errorf("open database session: %w", err)
	}
	defer func() {
		if cerr := db.Close(ctx); cerr != nil {
			p.log.Warn().Err(cerr).Msg("could not close database session")
		}
	}()

	n, err := db.ExecScript(ctx, script)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	p.log.Info().Int("statements", n).Msg("seed script applied")

	creds, err := p.assumeImportRole(ctx)
	if err != nil {
		return err
	}

	key := p.cfg.BucketPath + "/songs.csv"
	err = db.Exec(ctx, importSongs,
		p.cfg.ScriptBucket, key, p.cfg.Region,
		aws.ToString(creds.AccessKeyId),
		aws.ToString(creds.SecretAccessKey),
		aws.ToString(creds.SessionToken),
	)
	if err != nil {
		return fmt.Errorf("bulk import songs: %w", err)
	}
	p.log.Info().Str("bucket", p.cfg.ScriptBucket).Str("key", key).Msg("bulk import complete")
	return nil
}

// validate checks the Create-only settings the global config load leaves
// optional.
func (p *Provisioner) validate() error {
	switch {
	case p.cfg.DBHost == "":
		return fmt.Errorf("DBHOST is required to provision")
	case p.cfg.ScriptBucket == "":
		return fmt.Errorf("BUCKET_NAME is required to provision")
	case p.cfg.ScriptKey == "":
		return fmt.Errorf("OBJECT_KEY is required to provision")
	case p.cfg.ImportRoleARN == "":
		return fmt.Errorf("IAM_ROLE_ARN is required to provision")
	}
	return nil
}

func (p *Provisioner) fetchScript(ctx context.Context) (string, error) {
	out, err := p.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.cfg.ScriptBucket),
		Key:    aws.String(p.cfg.ScriptKey),
	})
	if err != nil {
		return "", fmt.Errorf("fetch seed script s3://%s/%s: %w", p.cfg.ScriptBucket, p.cfg.ScriptKey, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("read seed script: %w", err)
	}
	return string(data), nil
}

// assumeImportRole exchanges the import role for short-lived credentials,
// used once for the bulk import and discarded.
func (p *Provisioner) assumeImportRole(ctx context.Context) (*ststypes.Credentials, error) {
	out, err := p.sts.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(p.cfg.ImportRoleARN),
		RoleSessionName: aws.String(importSessionName),
	})
	if err != nil {
		return nil, fmt.Errorf("assume import role: %w", err)
	}
	return out.Credentials, nil
}
