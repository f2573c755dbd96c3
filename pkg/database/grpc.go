package database

import (
	"fmt"
	"time"

	"gamevault/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// CreateGRPCClient dials addr and waits up to timeout for the connection to become READY
func CreateGRPCClient(addr string, timeout time.Duration, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	client, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	client.Connect()

	deadline := time.After(timeout)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			client.Close()
			return nil, fmt.Errorf("connection[%s] did not become READY within %s", addr, timeout)
		case <-ticker.C:
			state := client.GetState()
			logger.Log.Debug("grpc connection state", zap.String("addr", addr), zap.String("state", state.String()))
			if state == connectivity.Ready {
				logger.Log.Info("grpc connection is READY", zap.String("addr", addr))
				return client, nil
			}
			if state == connectivity.Idle {
				client.Connect()
			}
		}
	}
}
