package storage

import (
	"alcyxob/workout-planner/internal/config"
	"bytes"
	"context"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// objectAPI is the part of the S3 client the sink needs.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// presignAPI is the part of the presign client the sink needs.
type presignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*presignedRequest, error)
}

// presignedRequest mirrors the URL part of v4.PresignedHTTPRequest.
type presignedRequest struct {
	URL string
}

type presignAdapter struct {
	client *s3.PresignClient
}

func (p presignAdapter) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*presignedRequest, error) {
	req, err := p.client.PresignGetObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &presignedRequest{URL: req.URL}, nil
}

// s3Sink uploads exported documents to an S3-compatible bucket and hands
// back a presigned download URL.
type s3Sink struct {
	client     objectAPI
	presigner  presignAPI
	bucketName string
	prefix     string
	expires    time.Duration
	newID      func() string
}

// NewS3Sink creates an export sink backed by the configured bucket.
func NewS3Sink(ctx context.Context, cfg config.S3Config) (DocumentSink, error) {
	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx,
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		log.Printf("ERROR: Failed to load AWS SDK config for S3: %v", err)
		return nil, err
	}

	// Path-style addressing is required by most S3-compatible services (MinIO).
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if endpoint := endpointURL(cfg); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})

	log.Printf("INFO: S3 export sink initialized for endpoint: %s, bucket: %s", cfg.Endpoint, cfg.BucketName)

	return &s3Sink{
		client:     s3Client,
		presigner:  presignAdapter{client: s3.NewPresignClient(s3Client)},
		bucketName: cfg.BucketName,
		prefix:     "exports",
		expires:    DefaultPresignedURLExpiry,
		newID:      uuid.NewString,
	}, nil
}

// endpointURL gives a bare host[:port] endpoint the scheme selected by
// UseSSL. Endpoints that already carry a scheme are used as given.
func endpointURL(cfg config.S3Config) string {
	if cfg.Endpoint == "" || strings.Contains(cfg.Endpoint, "://") {
		return cfg.Endpoint
	}
	if cfg.UseSSL {
		return "https://" + cfg.Endpoint
	}
	return "http://" + cfg.Endpoint
}

// Save uploads data under exports/<uuid>/<name> so repeated exports never
// overwrite each other, then returns a presigned GET URL for it.
func (s *s3Sink) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if name == "" || path.Base(name) != name {
		return "", ErrInvalidName
	}
	objectKey := path.Join(s.prefix, s.newID(), name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.bucketName),
		Key:                aws.String(objectKey),
		Body:               bytes.NewReader(data),
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(`attachment; filename="` + name + `"`),
	})
	if err != nil {
		log.Printf("ERROR: Failed to upload '%s' to bucket '%s': %v", objectKey, s.bucketName, err)
		return "", err
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(s.expires))
	if err != nil {
		log.Printf("ERROR: Failed to generate presigned GET URL for key '%s': %v", objectKey, err)
		return "", err
	}

	log.Printf("INFO: Uploaded '%s' to bucket '%s'", objectKey, s.bucketName)
	return req.URL, nil
}
