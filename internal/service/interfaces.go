package service

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordService is the remote authority's record API. Every call is scoped
// to the user the request was authenticated as.
type RecordService interface {
	// Sync stores req unless the stored version is at least as new, and
	// returns the version stored afterwards.
	Sync(ctx context.Context, userID string, req models.SyncRequest) (models.RemoteRecord, error)
	Get(ctx context.Context, userID, key string) (models.RemoteRecord, error)
	GetAll(ctx context.Context, userID string) ([]models.RemoteRecord, error)
	Delete(ctx context.Context, userID, key string) error
}

type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// logging or validating.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService // returns a decorated RecordService applying additional behavior
}
