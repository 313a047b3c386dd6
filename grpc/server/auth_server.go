package server

import (
	"context"

	"chat-relay/errors"
	pb "chat-relay/proto/account"
	"chat-relay/services"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	authService services.IAuthService
}

// NewAuthServer creates a new gRPC server for authentication.
func NewAuthServer(authService services.IAuthService) *AuthServer {
	return &AuthServer{authService: authService}
}

// Register handles user registration by validating input, hashing password and issuing a token.
func (s *AuthServer) Register(_ context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	token, userID, err := s.authService.Register(in.GetEmail(), in.GetDisplayName(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	return &pb.AuthResponse{
		Token:  string(token),
		UserId: userID,
	}, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthServer) Login(_ context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	token, userID, err := s.authService.Login(in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	return &pb.AuthResponse{
		Token:  string(token),
		UserId: userID,
	}, nil
}
