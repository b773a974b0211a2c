package service

import (
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

// Services groups the remote authority's services for the HTTP handler.
type Services struct {
	AuthService    AuthService
	RecordService  RecordService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	records := NewRecordValidationService().Wrap(NewRecordService(storages.RecordRepository, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		RecordService:  records,
		AppInfoService: appInfo,
	}, nil
}
