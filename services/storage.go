package services

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"cvinsight/config"
)

// StorageService archives uploaded resume files to S3 so a parse can be
// re-run later against the original document.
type StorageService struct {
	s3Client *s3.S3
	bucket   string
	region   string
}

// NewStorageService creates the archival service from configuration.
// Credentials come from the default AWS chain (environment, shared config,
// instance role).
func NewStorageService(cfg config.StorageConfig) (*StorageService, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("storage not configured")
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
	}, nil
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".doc":  "application/msword",
	".txt":  "text/plain",
	".rtf":  "application/rtf",
	".html": "text/html",
	".htm":  "text/html",
}

// ArchiveResume uploads the raw document bytes and returns the object URL.
func (s *StorageService) ArchiveResume(data []byte, fileName string) (string, error) {
	contentType, ok := contentTypes[filepath.Ext(fileName)]
	if !ok {
		contentType = "application/octet-stream"
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String("resumes/" + fileName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}
	if _, err := s.s3Client.PutObject(input); err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/resumes/%s", s.bucket, s.region, fileName), nil
}
