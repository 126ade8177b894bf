package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Uploader подмножество *s3manager.Uploader
type Uploader interface {
	UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// Archive хранит сгенерированные PDF документы в S3
type Archive struct {
	uploader Uploader
	bucket   string
	prefix   string
}

// New создает архив поверх загрузчика
func New(uploader Uploader, bucket, prefix string) *Archive {
	return &Archive{uploader: uploader, bucket: bucket, prefix: prefix}
}

// NewFromRegion создает архив с сессией AWS из стандартной цепочки учётных данных
// (переменные окружения AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY, профиль, роль)
func NewFromRegion(region, bucket, prefix string) (*Archive, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}
	return New(s3manager.NewUploader(sess), bucket, prefix), nil
}

// Put загружает PDF под именем name и возвращает его URL
func (a *Archive) Put(ctx context.Context, name string, pdf []byte) (string, error) {
	key := path.Join(a.prefix, name)

	out, err := a.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return out.Location, nil
}
