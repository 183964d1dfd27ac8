package travel_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideAnalyzerService,
	provideQuestionService,
	provideIntegrationService,
	provideTravelService,
	provideTravelController)

func provideAnalyzerService() services.AnalyzerServiceInterface {
	return services.NewAnalyzerService()
}

func provideQuestionService() services.QuestionServiceInterface {
	return services.NewQuestionService()
}

func provideIntegrationService() services.IntegrationServiceInterface {
	return services.NewIntegrationService()
}

func provideTravelService(
	analyzer services.AnalyzerServiceInterface,
	questions services.QuestionServiceInterface,
	integrator services.IntegrationServiceInterface,
	recommend services.RecommendServiceInterface,
	sessions repositories.SessionStore,
) services.TravelServiceInterface {
	return services.NewTravelService(analyzer, questions, integrator, recommend, sessions)
}

func provideTravelController(travelService services.TravelServiceInterface) *controllers.TravelController {
	return controllers.NewTravelController(travelService)
}
