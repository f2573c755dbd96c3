package domain

import "errors"

const (
	// QueueName thumbnail jobs queue
	QueueName = "avatar_thumbnail"

	// AvatarSize edge of the stored square avatar
	AvatarSize = 512
	// ThumbSize edge of the thumbnail written by the worker
	ThumbSize = 128
	// MaxAvatarBytes upload limit
	MaxAvatarBytes = 5 << 20

	// AvatarContentType avatars are re-encoded as jpeg
	AvatarContentType = "image/jpeg"

	objectPrefix = "profile-images/"
)

var (
	ErrNotImage    = errors.New("file is not a supported image")
	ErrTooLarge    = errors.New("image is larger than 5 MiB")
	ErrEmptyUpload = errors.New("empty upload")
)

// ThumbnailJob message published after an avatar upload
type ThumbnailJob struct {
	MemberID   string `json:"member_id"`
	ObjectName string `json:"object_name"`
}

// AvatarObject object key of the avatar of memberID
func AvatarObject(memberID string) string {
	return objectPrefix + memberID
}

// AvatarPath gateway route that redirects to a fresh presigned url of the avatar
func AvatarPath(memberID string) string {
	return "/members/" + memberID + "/avatar"
}

// ThumbObject object key of the thumbnail of memberID
func ThumbObject(memberID string) string {
	return objectPrefix + memberID + "_thumb"
}
