// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage provides the object store that holds uploaded media bytes.

Any S3-compatible service works (AWS S3, MinIO, R2). When an endpoint is
configured the client switches to path-style addressing, which is what most
self-hosted stores expect.
*/
package storage

import (
	"bytes"
	stdctx "context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrObjectNotFound is returned by [S3Store.Get] for a missing key.
var ErrObjectNotFound = errors.New("storage: object not found")

// Options configures [NewS3Store].
type Options struct {
	Bucket   string
	Region   string
	Endpoint string
}

// S3Store stores blobs in a single bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store loads the default AWS credential chain and builds a client for
// the configured bucket.
func NewS3Store(context stdctx.Context, options Options, logger *slog.Logger) (*S3Store, error) {
	if options.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}

	cfg, err := config.LoadDefaultConfig(context, config.WithRegion(options.Region))
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info("object_store_configured",
		slog.String("bucket", options.Bucket),
		slog.String("region", options.Region),
		slog.String("endpoint", options.Endpoint),
	)

	return &S3Store{client: client, bucket: options.Bucket}, nil
}

// Put uploads body under key, replacing any existing object.
func (store *S3Store) Put(context stdctx.Context, key string, body []byte, contentType string) error {
	_, err := store.client.PutObject(context, &s3.PutObjectInput{
		Bucket:        aws.String(store.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("storage: put %s: %w", key, err)
	}
	return nil
}

// Get opens the object stored under key. The caller closes the reader.
func (store *S3Store) Get(context stdctx.Context, key string) (io.ReadCloser, string, error) {
	result, err := store.client.GetObject(context, &s3.GetObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, "", ErrObjectNotFound
		}
		return nil, "", fmt.Errorf("storage: get %s: %w", key, err)
	}

	return result.Body, aws.ToString(result.ContentType), nil
}

// Delete removes the object. Deleting a missing key is not an error.
func (store *S3Store) Delete(context stdctx.Context, key string) error {
	_, err := store.client.DeleteObject(context, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// Ping verifies the bucket exists and the credentials can reach it.
func (store *S3Store) Ping(context stdctx.Context) error {
	_, err := store.client.HeadBucket(context, &s3.HeadBucketInput{Bucket: aws.String(store.bucket)})
	if err != nil {
		return fmt.Errorf("storage: head bucket %s: %w", store.bucket, err)
	}
	return nil
}
