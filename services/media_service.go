package services

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaService issues presigned URLs for profile photo storage. The S3
// client is injected; the service holds no global state.
type MediaService struct {
	Presigner *s3.PresignClient
	Bucket    string
}

func NewMediaService(client *s3.Client, bucket string) *MediaService {
	return &MediaService{
		Presigner: s3.NewPresignClient(client),
		Bucket:    bucket,
	}
}

// GenerateUploadURL returns a presigned PUT URL and the object key it
// uploads to
func (m *MediaService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-photos/" + time.Now().UTC().Format("20060102150405") + "-" + fileName
	request, err := m.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return request.URL, key, nil
}

// GenerateReadURL returns a presigned GET URL for an object key
func (m *MediaService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	request, err := m.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return request.URL, nil
}
