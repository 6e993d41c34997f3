package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	"github.com/BruksfildServices01/meeting-scheduler/internal/config"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
)

type fakePutter struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

type staticRepo struct {
	bookings []domain.Booking
	err      error
}

func (r staticRepo) Load(context.Context) ([]domain.Booking, error) { return r.bookings, r.err }
func (r staticRepo) Append(context.Context, domain.Booking) error    { return nil }

func TestS3Publisher_PublishesOnBookingCreated(t *testing.T) {
	b, err := domain.New(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "10:00", "Ana", "a@x.com", "", "hi", time.UTC)
	require.NoError(t, err)

	putter := &fakePutter{}
	p := NewS3Publisher(putter, "calendars", "owner/my_schedule.ics", staticRepo{bookings: []domain.Booking{b}})

	require.NoError(t, p.Record(context.Background(), audit.Event{Action: audit.ActionBookingCreated}))

	require.Len(t, putter.inputs, 1)
	assert.Equal(t, "calendars", aws.ToString(putter.inputs[0].Bucket))
	assert.Equal(t, "owner/my_schedule.ics", aws.ToString(putter.inputs[0].Key))
	assert.Equal(t, "text/calendar", aws.ToString(putter.inputs[0].ContentType))
	assert.Contains(t, putter.bodies[0], "SUMMARY:Meeting with Ana")
}

func TestS3Publisher_IgnoresOtherActions(t *testing.T) {
	putter := &fakePutter{}
	p := NewS3Publisher(putter, "b", "k", staticRepo{})

	require.NoError(t, p.Record(context.Background(), audit.Event{Action: audit.ActionCalendarExported}))
	assert.Empty(t, putter.inputs)
}

func TestS3Publisher_Errors(t *testing.T) {
	p := NewS3Publisher(&fakePutter{}, "b", "k", staticRepo{err: errors.New("disk")})
	assert.ErrorContains(t, p.Publish(context.Background()), "publish calendar")

	p = NewS3Publisher(&fakePutter{err: errors.New("denied")}, "b", "k", staticRepo{})
	assert.ErrorContains(t, p.Publish(context.Background()), "denied")
}

func TestNewS3Client_CustomEndpoint(t *testing.T) {
	client := NewS3Client(&config.Config{
		S3Region:   "us-east-1",
		S3Endpoint: "http://localhost:9000",
		AWSKeyID:   "key",
		AWSSecret:  "secret",
	})

	opts := client.Options()
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "us-east-1", opts.Region)
}
