package auth

import (
	"context"

	"safiridocs/internal/entities"
	"safiridocs/internal/service/token"
	"safiridocs/pkg/logger"
)

type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

type UserProvider interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
