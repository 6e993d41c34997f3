package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	"github.com/BruksfildServices01/meeting-scheduler/internal/calendar"
	"github.com/BruksfildServices01/meeting-scheduler/internal/config"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

// ObjectPutter is the slice of the S3 client the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher keeps a copy of the exported calendar in a bucket so
// calendar apps can subscribe to a stable URL. It republishes on every
// new booking.
type S3Publisher struct {
	client ObjectPutter
	bucket string
	key    string
	repo   domain.Repository
	now    func() time.Time
}

// NewS3Client builds a client from static keys. Without keys requests
// are sent unsigned, which suits public-write test buckets only.
func NewS3Client(cfg *config.Config) *s3.Client {
	return s3.New(s3.Options{Region: cfg.S3Region}, func(o *s3.Options) {
		if cfg.AWSKeyID != "" {
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AWSKeyID,
				cfg.AWSSecret,
				"",
			)
		}
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewS3Publisher(
	client ObjectPutter,
	bucket string,
	key string,
	repo domain.Repository,
) *S3Publisher {
	return &S3Publisher{
		client: client,
		bucket: bucket,
		key:    key,
		repo:   repo,
		now:    time.Now,
	}
}

func (p *S3Publisher) Record(ctx context.Context, ev audit.Event) error {
	if ev.Action != audit.ActionBookingCreated {
		return nil
	}
	return p.Publish(ctx)
}

func (p *S3Publisher) Publish(ctx context.Context) error {
	bookings, err := p.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("publish calendar: %w", err)
	}

	body := calendar.Export(bookings, p.now())

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(p.bucket),
		Key:                aws.String(p.key),
		Body:               strings.NewReader(body),
		ContentType:        aws.String(calendar.ContentType),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", calendar.FileName)),
	})
	if err != nil {
		return fmt.Errorf("publish calendar: %w", err)
	}

	return nil
}

var _ audit.Sink = (*S3Publisher)(nil)
