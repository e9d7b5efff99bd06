// Command setup-bucket prepares the S3/MinIO bucket that holds product images:
// it creates the bucket if needed, makes products/* publicly readable and
// checks that the configured key can write and delete objects.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/DsDac0/Website/pkg/config"
)

const checkKey = "products/.setup-bucket-check"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	s3 := cfg.Storage.S3

	fmt.Printf("Endpoint: %s\nBucket:   %s\nRegion:   %s\n", s3.Endpoint, s3.Bucket, s3.Region)

	client, err := minio.New(s3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s3.AccessKey, s3.SecretKey, ""),
		Secure: s3.UseSSL,
		Region: s3.Region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		log.Fatalf("Failed to check bucket: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, s3.Bucket, minio.MakeBucketOptions{Region: s3.Region}); err != nil {
			log.Fatalf("Failed to create bucket %q: %v", s3.Bucket, err)
		}
		fmt.Printf("Bucket %q created\n", s3.Bucket)
	} else {
		fmt.Printf("Bucket %q exists\n", s3.Bucket)
	}

	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Sid":       "PublicReadProductImages",
				"Effect":    "Allow",
				"Principal": map[string]interface{}{"AWS": []string{"*"}},
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/products/*", s3.Bucket)},
			},
		},
	}
	policyJSON, _ := json.MarshalIndent(policy, "", "  ")

	if err := client.SetBucketPolicy(ctx, s3.Bucket, string(policyJSON)); err != nil {
		log.Printf("Warning: failed to set bucket policy: %v", err)
	} else {
		fmt.Println("Public read policy set on products/*")
	}

	fmt.Print("Testing PutObject... ")
	content := []byte("setup-bucket write check")
	if _, err := client.PutObject(ctx, s3.Bucket, checkKey, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "text/plain"}); err != nil {
		fmt.Printf("failed: %v\n", err)
		return
	}
	fmt.Println("OK")

	fmt.Print("Testing RemoveObject... ")
	if err := client.RemoveObject(ctx, s3.Bucket, checkKey, minio.RemoveObjectOptions{}); err != nil {
		fmt.Printf("failed: %v\n", err)
		return
	}
	fmt.Println("OK")
}
