package backup

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config locates the bucket. Credentials come from the default AWS chain.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, for S3-compatible servers
	PathStyle bool
}

// S3Target keeps backups as objects in a single bucket.
type S3Target struct {
	client *s3.Client
	bucket string
}

func NewS3Target(ctx context.Context, cfg S3Config) (*S3Target, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &S3Target{client: client, bucket: cfg.Bucket}, nil
}

func (t *S3Target) Name() string { return "s3" }

func (t *S3Target) Put(ctx context.Context, key string, r io.Reader, size int64) (Info, error) {
	// PutObject overwrites silently, so check first.
	if _, err := t.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &t.bucket, Key: &key}); err == nil {
		return Info{}, fmt.Errorf("backup %s already exists", key)
	}
	input := &s3.PutObjectInput{
		Bucket:      &t.bucket,
		Key:         &key,
		Body:        r,
		ContentType: aws.String("application/vnd.sqlite3"),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := t.client.PutObject(ctx, input); err != nil {
		return Info{}, err
	}
	return Info{Key: key, Size: size, CreatedAt: time.Now().UTC()}, nil
}

func (t *S3Target) List(ctx context.Context, prefix string) ([]Info, error) {
	var infos []Info
	p := s3.NewListObjectsV2Paginator(t.client, &s3.ListObjectsV2Input{Bucket: &t.bucket, Prefix: &prefix})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range out.Contents {
			infos = append(infos, Info{
				Key:       aws.ToString(obj.Key),
				Size:      aws.ToInt64(obj.Size),
				CreatedAt: aws.ToTime(obj.LastModified),
			})
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, nil
}
