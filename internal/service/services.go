package service

import (
	"github.com/MKhiriev/resourcekit/internal/adapter"
	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/mailer"
	"github.com/MKhiriev/resourcekit/internal/store"
	"github.com/MKhiriev/resourcekit/models"
)

type Services struct {
	AuthService        AuthService
	PlaceholderService PlaceholderService
	UploadService      UploadService
	AppInfoService     AppInfoService

	// Collections served by the resource routers.
	Products store.Collection[models.Product]
	Orders   store.Collection[models.Order]
}

// NewServices wires every service over the given storages and outbound
// clients. The auth service is wrapped with request validation.
func NewServices(storages *store.Storages, placeholder adapter.PlaceholderAdapter, mail mailer.Mailer, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, errNoStorages
	}

	auth := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, mail, cfg.App, logger),
	)

	return &Services{
		AuthService:        auth,
		PlaceholderService: NewPlaceholderService(placeholder, storages.PostsCache, logger),
		UploadService:      NewUploadService(storages.UploadStorage, cfg.App.PublicURL, logger),
		AppInfoService:     NewAppInfoService(cfg.App, build, logger),

		Products: store.NewCollection[models.Product](storages, "products"),
		Orders:   store.NewCollection[models.Order](storages, "orders"),
	}, nil
}
