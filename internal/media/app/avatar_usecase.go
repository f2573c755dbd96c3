package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gamevault/internal/media/domain"
	"gamevault/pkg/database"
	errprocess "gamevault/pkg/err"
	"gamevault/pkg/logger"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

var now = time.Now

// AvatarUseCase profile image storage
type AvatarUseCase interface {
	// UploadAvatar stores the cropped image and returns the stable gateway url of the avatar
	UploadAvatar(ctx context.Context, memberID string, file io.Reader) (string, error)
	// AvatarURL short lived presigned url of the stored object
	AvatarURL(ctx context.Context, memberID string) (string, error)
}

type avatarUseCase struct {
	store     database.MinIOClientRepo
	jobs      database.RabbitRepo
	urlExpiry time.Duration
	publicURL string
}

// NewAvatarUseCase jobs may be nil, thumbnails are then never produced.
// publicURL is the gateway origin prefixed to avatar routes, empty keeps them relative.
func NewAvatarUseCase(store database.MinIOClientRepo, jobs database.RabbitRepo, urlExpiry time.Duration, publicURL string) AvatarUseCase {
	return &avatarUseCase{
		store:     store,
		jobs:      jobs,
		urlExpiry: urlExpiry,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (a *avatarUseCase) UploadAvatar(ctx context.Context, memberID string, file io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, domain.MaxAvatarBytes+1))
	if err != nil {
		return "", errprocess.Wrap("read avatar upload", err)
	}
	if len(data) == 0 {
		return "", domain.ErrEmptyUpload
	}
	if len(data) > domain.MaxAvatarBytes {
		return "", domain.ErrTooLarge
	}

	avatar, err := cropSquare(data, domain.AvatarSize)
	if err != nil {
		return "", err
	}

	objectName := domain.AvatarObject(memberID)
	if err := a.store.PutObject(ctx, objectName, bytes.NewReader(avatar), int64(len(avatar)), domain.AvatarContentType); err != nil {
		return "", errprocess.Wrap(fmt.Sprintf("store avatar of %s", memberID), err)
	}

	a.publishThumbnailJob(memberID, objectName)

	// the version busts client caches after a re-upload
	return fmt.Sprintf("%s%s?v=%d", a.publicURL, domain.AvatarPath(memberID), now().Unix()), nil
}

func (a *avatarUseCase) AvatarURL(ctx context.Context, memberID string) (string, error) {
	url, err := a.store.PresignGetURL(ctx, domain.AvatarObject(memberID), a.urlExpiry)
	if err != nil {
		return "", errprocess.Wrap(fmt.Sprintf("presign avatar of %s", memberID), err)
	}
	return url, nil
}

// publishThumbnailJob failures only cost the thumbnail, the upload itself succeeded
func (a *avatarUseCase) publishThumbnailJob(memberID, objectName string) {
	if a.jobs == nil {
		return
	}
	body, err := json.Marshal(domain.ThumbnailJob{MemberID: memberID, ObjectName: objectName})
	if err != nil {
		logger.Log.Error("marshal thumbnail job", zap.Error(err))
		return
	}

	err = a.jobs.Publish("", domain.QueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		logger.Log.Warn("publish thumbnail job failed", zap.String("member", memberID), zap.Error(err))
	}
}
