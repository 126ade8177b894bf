package archive

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	input *s3manager.UploadInput
	body  []byte
	err   error
}

func (f *fakeUploader) UploadWithContext(_ aws.Context, input *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = input
	f.body, _ = io.ReadAll(input.Body)
	return &s3manager.UploadOutput{Location: "https://bucket.s3.amazonaws.com/" + aws.StringValue(input.Key)}, nil
}

func TestPut(t *testing.T) {
	up := &fakeUploader{}

	url, err := New(up, "wjl-docs", "tickets/").Put(context.Background(), "WJL-1.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)

	assert.Equal(t, "https://bucket.s3.amazonaws.com/tickets/WJL-1.pdf", url)
	assert.Equal(t, "wjl-docs", aws.StringValue(up.input.Bucket))
	assert.Equal(t, "application/pdf", aws.StringValue(up.input.ContentType))
	assert.Equal(t, []byte("%PDF-1.3"), up.body)
}

func TestPut_Error(t *testing.T) {
	_, err := New(&fakeUploader{err: errors.New("access denied")}, "b", "p").Put(context.Background(), "x.pdf", nil)
	assert.ErrorContains(t, err, "upload p/x.pdf")
}
