package config

import (
	"context"
	"encoding/json"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinIOClient connects to the object store and makes sure the media
// bucket exists with anonymous read access, since avatar and gallery URLs
// are served to browsers directly from the bucket.
func NewMinIOClient(cfg *Config) (*minio.Client, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, err
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.Printf("Created media bucket %s", cfg.MinIOBucket)
	}

	readOnlyPolicy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{"arn:aws:s3:::" + cfg.MinIOBucket + "/*"},
			},
		},
	}
	policyJSON, err := json.Marshal(readOnlyPolicy)
	if err != nil {
		return nil, err
	}
	if err := client.SetBucketPolicy(ctx, cfg.MinIOBucket, string(policyJSON)); err != nil {
		log.Printf("Warning: failed to set public-read policy on %s, media URLs may 403: %v", cfg.MinIOBucket, err)
	}

	return client, nil
}
