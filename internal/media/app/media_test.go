package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"gamevault/internal/media/domain"
	"gamevault/pkg/logger"

	"github.com/disintegration/imaging"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMinIOClient struct {
	mock.Mock
}

func (m *MockMinIOClient) PutObject(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, objectName, data, size, contentType)
	return args.Error(0)
}

func (m *MockMinIOClient) GetObject(ctx context.Context, objectName string) ([]byte, error) {
	args := m.Called(ctx, objectName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockMinIOClient) PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}

type MockRabbit struct {
	mock.Mock
}

func (m *MockRabbit) GetRabbit() *amqp.Channel {
	return nil
}

func (m *MockRabbit) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

// recordingAck remembers how a delivery was settled
type recordingAck struct {
	mu      sync.Mutex
	acked   int
	nacked  int
	requeue bool
	reject  int
}

func (a *recordingAck) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acked++
	return nil
}

func (a *recordingAck) Nack(tag uint64, multiple, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacked++
	a.requeue = requeue
	return nil
}

func (a *recordingAck) Reject(tag uint64, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reject++
	return nil
}

// pngBytes w x h png filled with one color
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestCropSquare(t *testing.T) {
	out, err := cropSquare(pngBytes(t, 800, 300), domain.AvatarSize)
	require.NoError(t, err)
	w, h := decodedSize(t, out)
	assert.Equal(t, domain.AvatarSize, w)
	assert.Equal(t, domain.AvatarSize, h)

	_, err = cropSquare([]byte("definitely not an image"), domain.AvatarSize)
	assert.ErrorIs(t, err, domain.ErrNotImage)
}

func TestUploadAvatar(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	now = func() time.Time { return time.Unix(1700000000, 0) }
	defer func() { now = time.Now }()

	t.Run("stores square avatar and queues thumbnail", func(t *testing.T) {
		store := new(MockMinIOClient)
		jobs := new(MockRabbit)
		uc := NewAvatarUseCase(store, jobs, time.Hour, "https://api.gamevault.test/")

		store.On("PutObject", ctx, "profile-images/m1", mock.MatchedBy(func(data []byte) bool {
			w, h := decodedSize(t, data)
			return w == domain.AvatarSize && h == domain.AvatarSize
		}), mock.AnythingOfType("int64"), domain.AvatarContentType).Return(nil)
		jobs.On("Publish", "", domain.QueueName, false, false, mock.MatchedBy(func(p amqp.Publishing) bool {
			var job domain.ThumbnailJob
			return json.Unmarshal(p.Body, &job) == nil && job.MemberID == "m1" && p.DeliveryMode == amqp.Persistent
		})).Return(nil)

		url, err := uc.UploadAvatar(ctx, "m1", bytes.NewReader(pngBytes(t, 640, 480)))
		require.NoError(t, err)
		assert.Equal(t, "https://api.gamevault.test/members/m1/avatar?v=1700000000", url)
		store.AssertExpectations(t)
		store.AssertNotCalled(t, "PresignGetURL", mock.Anything, mock.Anything, mock.Anything)
		jobs.AssertExpectations(t)
	})

	t.Run("publish failure keeps the upload", func(t *testing.T) {
		store := new(MockMinIOClient)
		jobs := new(MockRabbit)
		uc := NewAvatarUseCase(store, jobs, time.Hour, "")

		store.On("PutObject", ctx, "profile-images/m1", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		jobs.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("channel closed"))

		url, err := uc.UploadAvatar(ctx, "m1", bytes.NewReader(pngBytes(t, 64, 64)))
		require.NoError(t, err)
		assert.Equal(t, "/members/m1/avatar?v=1700000000", url)
	})

	t.Run("rejects", func(t *testing.T) {
		store := new(MockMinIOClient)
		uc := NewAvatarUseCase(store, nil, time.Hour, "")

		_, err := uc.UploadAvatar(ctx, "m1", strings.NewReader(""))
		assert.ErrorIs(t, err, domain.ErrEmptyUpload)

		_, err = uc.UploadAvatar(ctx, "m1", strings.NewReader("plain text"))
		assert.ErrorIs(t, err, domain.ErrNotImage)

		_, err = uc.UploadAvatar(ctx, "m1", bytes.NewReader(make([]byte, domain.MaxAvatarBytes+1)))
		assert.ErrorIs(t, err, domain.ErrTooLarge)

		store.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAvatarURL(t *testing.T) {
	ctx := context.Background()
	store := new(MockMinIOClient)
	uc := NewAvatarUseCase(store, nil, 15*time.Minute, "")

	store.On("PresignGetURL", ctx, "profile-images/m1", 15*time.Minute).Return("http://minio/profile-images/m1?sig=1", nil).Once()
	store.On("PresignGetURL", ctx, "profile-images/m1", 15*time.Minute).Return("http://minio/profile-images/m1?sig=2", nil).Once()

	first, err := uc.AvatarURL(ctx, "m1")
	require.NoError(t, err)
	second, err := uc.AvatarURL(ctx, "m1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "every call signs a fresh url")
	store.AssertExpectations(t)
}

func runConsumer(t *testing.T, store *MockMinIOClient, bodies ...[]byte) []*recordingAck {
	t.Helper()
	deliveries := make(chan amqp.Delivery, len(bodies))
	acks := make([]*recordingAck, len(bodies))
	for i, body := range bodies {
		acks[i] = &recordingAck{}
		deliveries <- amqp.Delivery{Acknowledger: acks[i], Body: body}
	}
	close(deliveries)

	NewConsumer(deliveries, store, time.Millisecond).StartConsumer(context.Background())
	return acks
}

func TestThumbnailConsumer(t *testing.T) {
	logger.SetNewNop()
	job := func(memberID string) []byte {
		b, _ := json.Marshal(domain.ThumbnailJob{MemberID: memberID, ObjectName: domain.AvatarObject(memberID)})
		return b
	}

	t.Run("thumbnail written and acked", func(t *testing.T) {
		store := new(MockMinIOClient)
		store.On("GetObject", mock.Anything, "profile-images/m1").Return(pngBytes(t, 512, 512), nil)
		store.On("PutObject", mock.Anything, "profile-images/m1_thumb", mock.MatchedBy(func(data []byte) bool {
			w, h := decodedSize(t, data)
			return w == domain.ThumbSize && h == domain.ThumbSize
		}), mock.AnythingOfType("int64"), domain.AvatarContentType).Return(nil)

		acks := runConsumer(t, store, job("m1"))
		assert.Equal(t, 1, acks[0].acked)
		store.AssertExpectations(t)
	})

	t.Run("storage failure is requeued", func(t *testing.T) {
		store := new(MockMinIOClient)
		store.On("GetObject", mock.Anything, "profile-images/m2").Return(nil, errors.New("minio down"))

		acks := runConsumer(t, store, job("m2"))
		assert.Equal(t, 1, acks[0].nacked)
		assert.True(t, acks[0].requeue)
	})

	t.Run("poison messages are dropped", func(t *testing.T) {
		store := new(MockMinIOClient)
		store.On("GetObject", mock.Anything, "profile-images/m3").Return([]byte("not an image"), nil)

		acks := runConsumer(t, store, []byte("{broken"), job("m3"))
		assert.Equal(t, 1, acks[0].reject)
		assert.Equal(t, 1, acks[1].reject)
		assert.Zero(t, acks[1].nacked)
	})
}
