package grpc

import (
	"context"
	"net"

	"wdr/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthgrpc "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const ArchiveServiceName = "withdrawal.v1.ArchiveWorker"

// HealthServer exposes the standard gRPC health protocol for the archive worker.
type HealthServer struct {
	srv    *grpc.Server
	health *health.Server
}

func NewHealthServer() *HealthServer {
	s := grpc.NewServer()

	h := health.NewServer()
	h.SetServingStatus("", healthgrpc.HealthCheckResponse_SERVING)
	h.SetServingStatus(ArchiveServiceName, healthgrpc.HealthCheckResponse_NOT_SERVING)
	healthgrpc.RegisterHealthServer(s, h)

	// Reflection (dev tools: grpcurl/evans)
	reflection.Register(s)

	return &HealthServer{srv: s, health: h}
}

// SetServing flips the archive worker status reported to probes.
func (h *HealthServer) SetServing(serving bool) {
	status := healthgrpc.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthgrpc.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(ArchiveServiceName, status)
}

// Serve runs on listener until ctx is done, then stops gracefully.
func (h *HealthServer) Serve(ctx context.Context, listener net.Listener) {
	errChan := make(chan error, 1)
	go func() {
		logger.Infof("🚀 gRPC health server listening on %s", listener.Addr())
		errChan <- h.srv.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		logger.Info("🔴 Stopping gRPC server...")
		h.health.Shutdown()
		h.srv.GracefulStop()
		logger.Info("✅ gRPC server stopped.")
	case err := <-errChan:
		if err != nil {
			logger.Error("❌ gRPC server error: " + err.Error())
		}
	}
}
