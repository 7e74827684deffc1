package cleanup

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// EmptyBucket removes every object version and delete marker from a bucket
// so the orchestrator can drop the bucket itself. Versioned buckets keep
// deleted keys around as versions, hence the version walk instead of a
// plain object listing. Reports not_found when there was nothing to remove.
func (s *Sweeper) EmptyBucket(ctx context.Context, bucket string) Outcome {
	var keyMarker, versionMarker *string
	removed := 0

	for {
		page, err := s.s3.ListObjectVersions(ctx, &s3.ListObjectVersionsInput{
			Bucket:          aws.String(bucket),
			KeyMarker:       keyMarker,
			VersionIdMarker: versionMarker,
		})
		if err != nil {
			return s.report(classify("s3_bucket", bucket, err))
		}

		objects := make([]s3types.ObjectIdentifier, 0, len(page.Versions)+len(page.DeleteMarkers))
		for _, v := range page.Versions {
			objects = append(objects, s3types.ObjectIdentifier{Key: v.Key, VersionId: v.VersionId})
		}
		for _, m := range page.DeleteMarkers {
			objects = append(objects, s3types.ObjectIdentifier{Key: m.Key, VersionId: m.VersionId})
		}

		if len(objects) > 0 {
			_, err = s.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
				Bucket: aws.String(bucket),
				Delete: &s3types.Delete{Objects: objects, Quiet: aws.Bool(true)},
			})
			if err != nil {
				return s.report(classify("s3_bucket", bucket, err))
			}
			removed += len(objects)
		}

		if !aws.ToBool(page.IsTruncated) {
			break
		}
		keyMarker = page.NextKeyMarker
		versionMarker = page.NextVersionIdMarker
	}

	status := StatusDeleted
	if removed == 0 {
		status = StatusNotFound
	}
	return s.report(Outcome{Kind: "s3_bucket", Name: bucket, Status: status})
}
