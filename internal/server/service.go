package server

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	contractspb "github.com/ebolowa/contract-insight/gen/proto/contracts/v1"
)

// NewGRPCServer assembles the gRPC server: both business services, the
// standard health service, and reflection for grpcurl.
func NewGRPCServer(contractSvc *ContractService, summarySvc *SummaryService) (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer()

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	contractspb.RegisterContractServiceServer(grpcServer, contractSvc)
	contractspb.RegisterSummaryServiceServer(grpcServer, summarySvc)

	return grpcServer, hs
}
