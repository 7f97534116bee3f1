package server

import (
	"context"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
)

// Metadata keys populated by the upstream auth gateway. Authentication itself
// is out of scope here; the interceptor only materializes the resolved facts.
const (
	mdUserID   = "x-user-id"
	mdRole     = "x-role"
	mdSchoolID = "x-school-id"
)

// PrincipalInterceptor lifts caller identity from request metadata into the
// context principal and tags every request with an id for log correlation.
func PrincipalInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if p, ok := principalFromMetadata(md); ok {
				ctx = common.WithPrincipal(ctx, p)
			}
		}

		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"error", err)
		}
		return resp, err
	}
}

func principalFromMetadata(md metadata.MD) (common.Principal, bool) {
	get := func(key string) string {
		if vals := md.Get(key); len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	userID, err := uuid.Parse(get(mdUserID))
	if err != nil {
		return common.Principal{}, false
	}
	schoolID, err := uuid.Parse(get(mdSchoolID))
	if err != nil {
		return common.Principal{}, false
	}
	role := common.Role(get(mdRole))
	switch role {
	case common.RoleAdmin, common.RoleTeacher, common.RoleStudent:
	default:
		return common.Principal{}, false
	}

	return common.Principal{UserID: userID, Role: role, SchoolID: schoolID}, true
}
