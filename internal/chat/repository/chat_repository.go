package repository

import (
	"context"
	"errors"
	"time"

	"gamevault/internal/chat/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChatRepository chats collection
type ChatRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateChat(ctx context.Context, chat *domain.Chat) error
	FindByID(ctx context.Context, chatID string) (*domain.Chat, error)
	FindByParticipant(ctx context.Context, memberID string) ([]*domain.Chat, error)
	// UpsertDirectChat inserts chat unless a chat with the same direct key exists, returns the stored one
	UpsertDirectChat(ctx context.Context, chat *domain.Chat) (*domain.Chat, bool, error)
	// UpsertGameChannel inserts chat unless the game already has that channel, returns the stored one
	UpsertGameChannel(ctx context.Context, chat *domain.Chat) (*domain.Chat, bool, error)
	AddParticipant(ctx context.Context, chatID, memberID string, p domain.Participant, at time.Time) error
	UpdateLastMessage(ctx context.Context, chatID string, last *domain.MessageSnapshot) error
}

type chatRepository struct {
	coll *mongo.Collection
}

// NewMongoChatRepository create new mongo chat
func NewMongoChatRepository(db *mongo.Database) ChatRepository {
	return &chatRepository{
		coll: db.Collection("chats"),
	}
}

// EnsureIndexes direct_key and (game_id, channel_name) are unique, which makes the upserts race free
func (r *chatRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "direct_key", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"direct_key": bson.M{"$exists": true}}),
		},
		{
			Keys: bson.D{{Key: "game_id", Value: 1}, {Key: "channel_name", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_game_channel": true}),
		},
		{
			Keys: bson.D{{Key: "participants", Value: 1}, {Key: "updated_at", Value: -1}},
		},
	})
	return err
}

func (r *chatRepository) CreateChat(ctx context.Context, chat *domain.Chat) error {
	_, err := r.coll.InsertOne(ctx, chat)
	return err
}

func (r *chatRepository) FindByID(ctx context.Context, chatID string) (*domain.Chat, error) {
	return r.findOne(ctx, bson.M{"_id": chatID})
}

func (r *chatRepository) findOne(ctx context.Context, filter bson.M) (*domain.Chat, error) {
	var chat domain.Chat
	err := r.coll.FindOne(ctx, filter).Decode(&chat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChatNotFound
		}
		return nil, err
	}
	return &chat, nil
}

// FindByParticipant newest activity first
func (r *chatRepository) FindByParticipant(ctx context.Context, memberID string) ([]*domain.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"participants": memberID}, opts)
	if err != nil {
		return nil, err
	}

	var chats []*domain.Chat
	if err := cur.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) UpsertDirectChat(ctx context.Context, chat *domain.Chat) (*domain.Chat, bool, error) {
	return r.upsert(ctx, bson.M{"direct_key": chat.DirectKey}, chat)
}

func (r *chatRepository) UpsertGameChannel(ctx context.Context, chat *domain.Chat) (*domain.Chat, bool, error) {
	return r.upsert(ctx, bson.M{
		"is_game_channel": true,
		"game_id":         chat.GameID,
		"channel_name":    chat.ChannelName,
	}, chat)
}

func (r *chatRepository) upsert(ctx context.Context, filter bson.M, chat *domain.Chat) (*domain.Chat, bool, error) {
	res, err := r.coll.UpdateOne(ctx, filter,
		bson.M{"$setOnInsert": chat},
		options.Update().SetUpsert(true))
	created := false
	switch {
	case err == nil:
		created = res.UpsertedCount == 1
	case mongo.IsDuplicateKeyError(err):
		// a concurrent upsert inserted first
	default:
		return nil, false, err
	}

	stored, err := r.findOne(ctx, filter)
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

// AddParticipant idempotent, also refreshes the stored name and image and moves updated_at to at
func (r *chatRepository) AddParticipant(ctx context.Context, chatID, memberID string, p domain.Participant, at time.Time) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": chatID}, bson.M{
		"$addToSet": bson.M{"participants": memberID},
		"$set": bson.M{
			"participant_names." + memberID:  p.Name,
			"participant_images." + memberID: p.Image,
			"updated_at":                     at,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrChatNotFound
	}
	return nil
}

func (r *chatRepository) UpdateLastMessage(ctx context.Context, chatID string, last *domain.MessageSnapshot) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": chatID}, bson.M{
		"$set": bson.M{
			"last_message": last,
			"updated_at":   last.Timestamp,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrChatNotFound
	}
	return nil
}
