package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"
)

// S3 serves one bucket through the Store interface.
type S3 struct {
	Bucket string

	svc *s3.S3
}

var _ Store = &S3{}

// NewS3FromEnv builds a Store for the named bucket using S3_HOSTNAME,
// S3_REGION, S3_ACCESS and S3_SECRET. Hostname is optional and defaults
// to the regular AWS endpoint.
func NewS3FromEnv(bucket string) (*S3, error) {
	region, exists := os.LookupEnv("S3_REGION")
	if !exists {
		region = "auto"
	}
	access, exists := os.LookupEnv("S3_ACCESS")
	if !exists {
		return nil, fmt.Errorf("missing env var S3_ACCESS")
	}
	secret, exists := os.LookupEnv("S3_SECRET")
	if !exists {
		return nil, fmt.Errorf("missing env var S3_SECRET")
	}

	cfg := &aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(access, secret, ""),
	}
	if endpoint, exists := os.LookupEnv("S3_HOSTNAME"); exists {
		cfg.Endpoint = aws.String(endpoint)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to s3; %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"region": region,
		"access": access[:4],
		"bucket": bucket,
	}).Infoln("s3 configuration")

	return &S3{
		Bucket: bucket,
		svc:    s3.New(sess),
	}, nil
}

func (s *S3) List(ctx context.Context, prefix string) ([]string, error) {
	keys := []string{}
	err := s.svc.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.Bucket),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, aws.StringValue(obj.Key))
		}
		return true
	})
	if err != nil {
		return nil, &Error{Op: "list", Key: prefix, Err: err}
	}
	return keys, nil
}

func (s *S3) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, &Error{Op: "get", Key: key, Err: err}
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, &Error{Op: "get", Key: key, Err: err}
	}
	return data, nil
}

func (s *S3) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return &Error{Op: "put", Key: key, Err: err}
	}
	return nil
}
