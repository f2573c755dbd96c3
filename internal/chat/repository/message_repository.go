package repository

import (
	"context"
	"fmt"

	"gamevault/internal/chat/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository messages collection
type MessageRepository interface {
	EnsureIndexes(ctx context.Context) error
	InsertMessage(ctx context.Context, msg *domain.Message) error
	// FindByChat oldest first. limit > 0 keeps only the newest limit messages.
	FindByChat(ctx context.Context, chatID string, limit int64) ([]*domain.Message, error)
	// MarkRead flags every unread message of chatID not sent by readerID
	MarkRead(ctx context.Context, chatID, readerID string) (int64, error)
	CountUnread(ctx context.Context, memberID string, chatIDs []string) (map[string]int, error)
}

type chatMessageRepository struct {
	coll *mongo.Collection
}

// NewMongoChatMessageRepository create a MessageRepository
func NewMongoChatMessageRepository(db *mongo.Database) MessageRepository {
	return &chatMessageRepository{
		coll: db.Collection("chat_messages"),
	}
}

func (r *chatMessageRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "chat_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "chat_id", Value: 1}, {Key: "read", Value: 1}, {Key: "sender_id", Value: 1}}},
	})
	return err
}

func (r *chatMessageRepository) InsertMessage(ctx context.Context, msg *domain.Message) error {
	_, err := r.coll.InsertOne(ctx, msg)
	return err
}

func (r *chatMessageRepository) FindByChat(ctx context.Context, chatID string, limit int64) ([]*domain.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	if limit > 0 {
		opts.SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, bson.M{"chat_id": chatID}, opts)
	if err != nil {
		return nil, err
	}

	var messages []*domain.Message
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}

	if limit > 0 {
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
	}
	return messages, nil
}

// MarkRead only ever sets read to true
func (r *chatMessageRepository) MarkRead(ctx context.Context, chatID, readerID string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, bson.M{
		"chat_id":   chatID,
		"sender_id": bson.M{"$ne": readerID},
		"read":      false,
	}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *chatMessageRepository) CountUnread(ctx context.Context, memberID string, chatIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(chatIDs))
	if len(chatIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "chat_id", Value: bson.D{{Key: "$in", Value: chatIDs}}},
			{Key: "sender_id", Value: bson.D{{Key: "$ne", Value: memberID}}},
			{Key: "read", Value: false},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$chat_id"},
			{Key: "unread_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate error: %w", err)
	}

	var results []struct {
		ChatID      string `bson:"_id"`
		UnreadCount int    `bson:"unread_count"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("cursor All error: %w", err)
	}

	for _, res := range results {
		counts[res.ChatID] = res.UnreadCount
	}
	return counts, nil
}
