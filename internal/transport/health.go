package transport

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the service name reported by the gRPC health endpoint.
const ServiceName = "mocknode.v1.MockNode"

// HealthServer implements grpc.health.v1.Health on top of the node healthcheck.
type HealthServer struct {
	grpc_health_v1.UnimplementedHealthServer
	checker Healthchecker
	logger  *zap.Logger
}

func NewHealthServer(checker Healthchecker, logger *zap.Logger) (*HealthServer, error) {
	if checker == nil {
		return nil, errors.New("healthchecker is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthServer{checker: checker, logger: logger.Named("health")}, nil
}

// Check answers for the empty service name and ServiceName.
func (s *HealthServer) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}

	if err := s.checker.Healthcheck(ctx); err != nil {
		s.logger.Warn("healthcheck failed", zap.Error(err))
		return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}
