package app

import (
	"context"
	"errors"
	"time"

	memberpb "gamevault/pkg/proto/member"
)

// MemberDirectory public profiles by id, unknown ids are left out
type MemberDirectory interface {
	Profiles(ctx context.Context, memberIDs []string) (map[string]*memberpb.MemberProfile, error)
}

type grpcMemberDirectory struct {
	client  memberpb.MemberServiceClient
	timeout time.Duration
}

// NewMemberDirectory backed by the member service
func NewMemberDirectory(client memberpb.MemberServiceClient) MemberDirectory {
	return &grpcMemberDirectory{client: client, timeout: 5 * time.Second}
}

func (d *grpcMemberDirectory) Profiles(ctx context.Context, memberIDs []string) (map[string]*memberpb.MemberProfile, error) {
	out := make(map[string]*memberpb.MemberProfile, len(memberIDs))
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
		out[m.GetMemberId()] = m
	}
	return out, nil
}
