package storage

import (
	"HealthPantry-Backend/internal/utils"
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AllowImage lists the extensions accepted for uploaded media.
var AllowImage = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		log.Printf("Error loading AWS config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func validateExt(fileName string, allowedExt []string) error {
	if len(allowedExt) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range allowedExt {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("file extension %s is not allowed", ext)
}

func (a *awsS3) putObject(objectKey string, file *multipart.FileHeader) error {
	f, err := file.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	contentType := file.Header.Get("Content-Type")
	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	return err
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	if err := validateExt(file.Filename, allowedExt); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, ext)

	if err := a.putObject(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	if err := validateExt(file.Filename, allowedExt); err != nil {
		return "", err
	}
	if err := a.putObject(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
