package s3store

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-records/internal/ports/blob"
)

type fakeS3 struct {
	objects   map[string][]byte
	putErr    error
	deleteErr error
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string][]byte{}} }

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestStore_PutThenDelete(t *testing.T) {
	api := newFakeS3()
	st := NewStore(api, "bucket", nil)
	ctx := context.Background()

	key, err := st.Put(ctx, "growth-photos", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "growth-photos/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Equal(t, []byte("jpeg-bytes"), api.objects[key])

	require.NoError(t, st.Delete(ctx, key))
	assert.NotContains(t, api.objects, key)

	assert.ErrorIs(t, st.Delete(ctx, key), blob.ErrNotFound)
}

func TestStore_PropagatesFailures(t *testing.T) {
	api := newFakeS3()
	st := NewStore(api, "bucket", nil)
	ctx := context.Background()

	api.putErr = errors.New("quota exceeded")
	_, err := st.Put(ctx, "growth-photos", []byte("x"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	api.putErr = nil
	key, err := st.Put(ctx, "growth-photos", []byte("x"), "image/png")
	require.NoError(t, err)

	api.deleteErr = errors.New("service unavailable")
	err = st.Delete(ctx, key)
	require.Error(t, err)
	assert.NotErrorIs(t, err, blob.ErrNotFound)
	assert.Contains(t, api.objects, key)
}
