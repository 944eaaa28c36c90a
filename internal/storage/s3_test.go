package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects map[string][]byte
	putErr  error
	getErr  error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}}
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3Slot_SetThenGet(t *testing.T) {
	fake := newFakeObjects()
	slot := newS3Slot(fake, "journal", "tgj/")
	ctx := context.Background()

	require.NoError(t, slot.Set(ctx, "gratitude.v1.entries", []byte("[]")))
	assert.Contains(t, fake.objects, "journal/tgj/gratitude.v1.entries.json")

	v, err := slot.Get(ctx, "gratitude.v1.entries")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestS3Slot_GetMissingKeyReturnsNilNil(t *testing.T) {
	slot := newS3Slot(newFakeObjects(), "journal", "")

	v, err := slot.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestS3Slot_ErrorsAreWrapped(t *testing.T) {
	fake := newFakeObjects()
	boom := errors.New("boom")
	fake.getErr = boom
	fake.putErr = boom
	slot := newS3Slot(fake, "journal", "")
	ctx := context.Background()

	_, err := slot.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, slot.Set(ctx, "k", nil), boom)
}

func TestNewS3Slot_RequiresBucket(t *testing.T) {
	_, err := NewS3Slot(context.Background(), S3Options{})
	assert.Error(t, err)
}

func TestNewS3Slot_AppliesEndpointAndCredentials(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			_ = fn(&lo)
		}
		return aws.Config{Region: lo.Region}, nil
	}
	var applied s3.Options
	fake := newFakeObjects()
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectAPI {
		for _, fn := range optFns {
			fn(&applied)
		}
		return fake
	}

	slot, err := NewS3Slot(context.Background(), S3Options{
		Bucket:          "journal",
		Region:          "eu-central-1",
		Endpoint:        "http://127.0.0.1:9000",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
	})
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", lo.Region)
	assert.NotNil(t, lo.Credentials)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(applied.BaseEndpoint))
	assert.True(t, applied.UsePathStyle)

	require.NoError(t, slot.Set(context.Background(), "k", []byte("x")))
	assert.Contains(t, fake.objects, "journal/k.json")
}

func TestNewS3Slot_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := NewS3Slot(context.Background(), S3Options{Bucket: "b"})
	assert.Error(t, err)
}
