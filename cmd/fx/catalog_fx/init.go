package catalog_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo,
	provideCatalogService,
	provideCatalogController)

// provideCatalogRepo loads the catalog once. With POSTGRES_URL set, the
// table is migrated and seeded on first boot; without it, the embedded
// curated dataset is served directly.
func provideCatalogRepo() (repositories.CatalogRepository, error) {
	if dsn := os.Getenv("POSTGRES_URL"); dsn != "" {
		return repositories.NewCatalogRepository(infra.InitPostgresql())
	}

	log.Println("POSTGRES_URL not set, serving the embedded catalog")
	return repositories.NewStaticCatalogRepository(db_models.DefaultCatalog()), nil
}

func provideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
