package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const sessionTTL = 30 * time.Minute

// TravelService drives the wizard: analyze, collect answers, integrate,
// recommend. The only state is the TravelInput stored per session; every
// pipeline step underneath it is a pure call.
type TravelServiceInterface interface {
	Analyze(ctx context.Context, req request_models.AnalyzeRequest) (response_models.AnalyzeResponse, error)
	SubmitAnswers(ctx context.Context, req request_models.AnswersRequest) (response_models.AnalyzeResponse, error)
	Recommend(ctx context.Context, req request_models.RecommendRequest) ([]response_models.Recommendation, error)
}

type TravelService struct {
	analyzer   AnalyzerServiceInterface
	questions  QuestionServiceInterface
	integrator IntegrationServiceInterface
	recommend  RecommendServiceInterface
	sessions   repositories.SessionStore
}

func NewTravelService(
	analyzer AnalyzerServiceInterface,
	questions QuestionServiceInterface,
	integrator IntegrationServiceInterface,
	recommend RecommendServiceInterface,
	sessions repositories.SessionStore,
) TravelServiceInterface {
	return &TravelService{
		analyzer:   analyzer,
		questions:  questions,
		integrator: integrator,
		recommend:  recommend,
		sessions:   sessions,
	}
}

func (t *TravelService) Analyze(ctx context.Context, req request_models.AnalyzeRequest) (response_models.AnalyzeResponse, error) {
	sessionID := uuid.New().String()
	input := t.analyzer.Normalize(req.Input)

	if err := t.sessions.Save(ctx, sessionID, input, sessionTTL); err != nil {
		log.Printf("Error saving session %s: %v", sessionID, err)
		return response_models.AnalyzeResponse{}, utils.ErrStoreError
	}

	return t.buildAnalysis(sessionID, input), nil
}

func (t *TravelService) SubmitAnswers(ctx context.Context, req request_models.AnswersRequest) (response_models.AnalyzeResponse, error) {
	stored, ok, err := t.sessions.Get(ctx, req.SessionID)
	if err != nil {
		log.Printf("Error loading session %s: %v", req.SessionID, err)
		return response_models.AnalyzeResponse{}, utils.ErrStoreError
	}
	if !ok {
		return response_models.AnalyzeResponse{}, utils.ErrSessionNotFound
	}

	integrated := t.integrator.Integrate(stored, req.Answers)
	input := t.analyzer.Normalize(integrated)

	if err := t.sessions.Save(ctx, req.SessionID, input, sessionTTL); err != nil {
		log.Printf("Error saving session %s: %v", req.SessionID, err)
		return response_models.AnalyzeResponse{}, utils.ErrStoreError
	}

	return t.buildAnalysis(req.SessionID, input), nil
}

func (t *TravelService) Recommend(ctx context.Context, req request_models.RecommendRequest) ([]response_models.Recommendation, error) {
	var input request_models.TravelInput

	switch {
	case req.SessionID != "":
		stored, ok, err := t.sessions.Get(ctx, req.SessionID)
		if err != nil {
			log.Printf("Error loading session %s: %v", req.SessionID, err)
			return nil, utils.ErrStoreError
		}
		if !ok {
			return nil, utils.ErrSessionNotFound
		}
		input = stored
	case req.Input != nil:
		input = t.analyzer.Normalize(*req.Input)
	default:
		return nil, utils.ErrInvalidInput
	}

	return t.recommend.Score(req.Profile, input)
}

func (t *TravelService) buildAnalysis(sessionID string, input request_models.TravelInput) response_models.AnalyzeResponse {
	resp := response_models.AnalyzeResponse{
		SessionID:    sessionID,
		Input:        input,
		Validation:   t.analyzer.Validate(input),
		Analysis:     t.analyzer.DetectIncomplete(input),
		Completeness: t.analyzer.CompletenessScore(input),
	}
	if resp.Analysis.NeedsFollowUp {
		resp.Questions = t.questions.Generate(input)
	}
	return resp
}
