package app

import (
	"context"
	"errors"
	"time"

	"gamevault/internal/chat/domain"
	memberpb "gamevault/pkg/proto/member"
)

// MemberDirectory resolves participant names and avatars
type MemberDirectory interface {
	Resolve(ctx context.Context, memberIDs []string) (map[string]domain.Participant, error)
}

type grpcMemberDirectory struct {
	client  memberpb.MemberServiceClient
	timeout time.Duration
}

// NewMemberDirectory backed by the member service
func NewMemberDirectory(client memberpb.MemberServiceClient) MemberDirectory {
	return &grpcMemberDirectory{client: client, timeout: 5 * time.Second}
}

// Resolve unknown ids are left out of the result
func (d *grpcMemberDirectory) Resolve(ctx context.Context, memberIDs []string) (map[string]domain.Participant, error) {
	out := make(map[string]domain.Participant, len(memberIDs))
	if len(memberIDs) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	res, err := d.client.FindMembers(ctx, &memberpb.FindMembersReq{MemberIds: memberIDs})
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, errors.New(res.Message)
	}

	for _, m := range res.GetMembers() {
		out[m.GetMemberId()] = domain.Participant{
			Name:   m.GetUsername(),
			Image:  m.GetProfileImageUrl(),
			Status: m.GetStatus(),
		}
	}
	return out, nil
}
