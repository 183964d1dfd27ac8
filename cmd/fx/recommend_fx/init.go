package recommend_fx

import (
	"go.uber.org/fx"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideRecommendService)

func provideRecommendService(catalogRepo repositories.CatalogRepository) services.RecommendServiceInterface {
	return services.NewRecommendService(catalogRepo)
}
