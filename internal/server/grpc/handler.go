package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/groupauth/internal/common"
	pb "github.com/dmitrijs2005/groupauth/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CheckGroup answers with a complete verdict, or with codes.Internal and no
// payload when the store fails.
func (s *GRPCServer) CheckGroup(ctx context.Context, req *pb.GroupRequest) (*pb.GroupResponse, error) {
	res, err := s.groups.CheckGroup(ctx, req.GetGroupName(), req.GetPasswordPhrase())
	if err != nil {
		s.logger.Error(ctx, "check group failed", "group", req.GetGroupName(), "error", err)
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}

	s.logger.Debug(ctx, "group checked", "group", req.GetGroupName(), "exists", res.Exists, "valid", res.Valid)
	return &pb.GroupResponse{
		Exists:           res.Exists,
		ValidPassword:    res.Valid,
		GroupDescription: res.Description,
		Message:          res.Message,
	}, nil
}

// GenerateGroupPassword always completes with status OK. Failures travel in
// the Error field.
func (s *GRPCServer) GenerateGroupPassword(ctx context.Context, req *pb.GenerateRequest) (*pb.GenerateResponse, error) {
	phrase, err := s.groups.GeneratePhrase(ctx, req.GetGroupName())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &pb.GenerateResponse{Success: false, Error: common.MsgGroupNotFound}, nil
		}
		s.logger.Error(ctx, "generate phrase failed", "group", req.GetGroupName(), "error", err)
		return &pb.GenerateResponse{Success: false, Error: common.ErrorInternal.Error()}, nil
	}

	s.logger.Info(ctx, "group phrase rotated", "group", req.GetGroupName())
	return &pb.GenerateResponse{Success: true, Password: phrase}, nil
}
