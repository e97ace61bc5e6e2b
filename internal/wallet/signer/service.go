package signer

import (
	"context"
)

type service struct{}

// NewService creates a new SignerService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() (Service, error) {
	return &service{}, nil
}

// SignTransaction signs a replay-protected transaction (EIP-155)
func (s *service) SignTransaction(ctx context.Context, req *SignRequest) (*SignResponse, error) {
	return s.signLegacyTransaction(ctx, req)
}
