package testtool

import (
	"context"
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"gamevault/pkg/database"
	memberpb "gamevault/pkg/proto/member"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"google.golang.org/grpc"
)

// SetupContainer starts req and returns the container with the host and mapped port of ExposedPorts[0]
func SetupContainer(ctx context.Context, req testcontainers.ContainerRequest) (testcontainers.Container, string, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, "", "", err
	}

	natPort, err := nat.NewPort("tcp", strings.TrimSuffix(req.ExposedPorts[0], "/tcp"))
	if err != nil {
		return nil, "", "", err
	}

	port, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return nil, "", "", err
	}

	return container, host, port.Port(), nil
}

// StartMockMemberGRPCServer serves srv on a random local port
func StartMockMemberGRPCServer(srv memberpb.MemberServiceServer) (*grpc.Server, string) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatalf("Failed to start gRPC listener: %v", err)
	}

	grpcServer := grpc.NewServer()
	memberpb.RegisterMemberServiceServer(grpcServer, srv)

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Printf("Mock gRPC Member Service stopped: %v", err)
		}
	}()

	return grpcServer, listener.Addr().String()
}

// NewMemberClient dials addr and waits for the connection to be ready
func NewMemberClient(addr string) (memberpb.MemberServiceClient, *grpc.ClientConn, error) {
	conn, err := database.CreateGRPCClient(addr, 5*time.Second)
	if err != nil {
		return nil, nil, err
	}
	return memberpb.NewMemberServiceClient(conn), conn, nil
}

// MockMemberService in memory member directory, answers FindMembers and GetProfile
type MockMemberService struct {
	memberpb.UnimplementedMemberServiceServer

	mu      sync.RWMutex
	members map[string]*memberpb.MemberProfile
}

// NewMockMemberService seeds the directory with profiles
func NewMockMemberService(profiles ...*memberpb.MemberProfile) *MockMemberService {
	m := &MockMemberService{members: map[string]*memberpb.MemberProfile{}}
	for _, p := range profiles {
		m.members[p.MemberId] = p
	}
	return m
}

// FindMembers returns the known profiles among req.MemberIds
func (m *MockMemberService) FindMembers(_ context.Context, req *memberpb.FindMembersReq) (*memberpb.MembersRes, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := &memberpb.MembersRes{Success: true}
	for _, id := range req.MemberIds {
		if p, ok := m.members[id]; ok {
			res.Members = append(res.Members, p)
		}
	}
	return res, nil
}

// GetProfile returns one profile
func (m *MockMemberService) GetProfile(_ context.Context, req *memberpb.GetProfileReq) (*memberpb.ProfileRes, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.members[req.MemberId]
	if !ok {
		return &memberpb.ProfileRes{Success: false, Message: "user not found"}, nil
	}
	return &memberpb.ProfileRes{Success: true, Profile: p}, nil
}
