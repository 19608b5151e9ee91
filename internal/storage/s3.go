package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/service/ports"
)

// Allowed workshop image MIME types and extensions.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// S3Store uploads workshop images and returns their public object URL.
type S3Store struct {
	uploader *manager.Uploader
	cfg      S3Config
	logger   logger.Logger
}

func NewS3Store(ctx context.Context, cfg S3Config, log logger.Logger) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	} else {
		log.Warn("s3 store using default credential chain")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Store{
		uploader: manager.NewUploader(client),
		cfg:      cfg,
		logger:   log,
	}, nil
}

// Upload stores the image under {folder}/{uuid}{ext} and returns its URL.
// The key embeds a fresh uuid so re-uploads never clobber a prior image
// that a workshop row may still reference.
func (s *S3Store) Upload(ctx context.Context, folder string, img ports.ImageUpload) (string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(img.ContentType)]
	if !ok {
		ext = strings.ToLower(path.Ext(img.Filename))
		if !validImageExt(ext) {
			return "", fmt.Errorf("unsupported image type %q", img.ContentType)
		}
	}

	key := path.Join(folder, uuid.New().String()+ext)
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        img.Body,
		ContentType: aws.String(img.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
	s.logger.Info("image uploaded",
		logger.String("key", key),
	)

	return url, nil
}

func validImageExt(ext string) bool {
	for _, allowed := range allowedImageTypes {
		if ext == allowed {
			return true
		}
	}
	return ext == ".jpeg"
}
