package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"freelanceai/models"
	"freelanceai/services/listing"

	"go.uber.org/zap"
)

// systemPrompt frames every model call. The platform speaks French to its
// users; the assistant does too.
const systemPrompt = `Tu es un assistant spécialisé dans l'aide aux utilisateurs sur une plateforme de freelances.

Contexte de la plateforme:
- La plateforme met en relation des clients avec des freelances spécialisés
- Les freelances peuvent proposer des services dans de nombreux domaines, notamment l'IA, la blockchain, et le développement web

Ton rôle:
- Aider les utilisateurs à trouver des freelances appropriés
- Répondre aux questions fréquentes sur la plateforme
- Expliquer les différents services disponibles
- Guider le processus de sélection d'un freelance

Sois utile, clair et bienveillant dans tes réponses.`

const (
	historyLimit   = 10
	maxSuggestions = 3
)

// Service is the conversational assistant. Plain questions go to the
// language model; messages that look like a freelancer search instead run a
// guided search over the catalog, accumulating filters across turns.
type Service interface {
	Chat(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error)
	Reset(ctx context.Context, userID string) error
}

type DefaultService struct {
	gen      Generator
	ctxStore *RedisContextStore
	listings listing.Service
	logger   *zap.Logger
}

func NewService(gen Generator, ctxStore *RedisContextStore, listings listing.Service, logger *zap.Logger) *DefaultService {
	return &DefaultService{gen: gen, ctxStore: ctxStore, listings: listings, logger: logger}
}

func (s *DefaultService) Chat(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error) {
	aCtx, err := s.ctxStore.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	if s.isSearchIntent(req.Message) {
		return s.handleSearch(ctx, req, aCtx)
	}
	return s.handleChat(ctx, req, aCtx)
}

func (s *DefaultService) Reset(ctx context.Context, userID string) error {
	return s.ctxStore.Clear(ctx, userID)
}

func (s *DefaultService) isSearchIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range []string{"cherche", "trouve", "recherche", "besoin d'un", "find", "looking for", "search"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// handleSearch runs a guided search. Filters extracted from the message are
// applied on top of whatever the previous turns accumulated, so "je cherche
// un freelance Python" followed by "pour moins de 100€" narrows rather than
// restarts.
func (s *DefaultService) handleSearch(ctx context.Context, req models.AssistantRequest, aCtx *models.AssistantContext) (*models.AssistantResponse, error) {
	catalog, err := s.listings.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var ctrl *listing.Controller
	if aCtx.Query != nil {
		ctrl = listing.ResumeController(catalog, *aCtx.Query)
	} else {
		ctrl = listing.NewController(catalog)
	}

	skills, err := s.listings.AllSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	s.applyMessageFilters(ctrl, req.Message, skills)

	results := ctrl.Results()
	suggestions := results
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	params := ctrl.Params()
	aCtx.Query = &params
	if err := s.ctxStore.Set(ctx, req.UserID, aCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	s.logger.Debug("guided search",
		zap.String("userId", req.UserID),
		zap.Int("matches", len(results)))

	return &models.AssistantResponse{
		Answer:      searchAnswer(results),
		Suggestions: suggestions,
	}, nil
}

var pricePattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*€`)

func (s *DefaultService) applyMessageFilters(ctrl *listing.Controller, message string, skills []string) {
	lower := strings.ToLower(message)

	for _, skill := range skills {
		if strings.Contains(lower, strings.ToLower(skill)) && !hasSkill(ctrl.Params().RequiredSkills, skill) {
			ctrl.ToggleSkill(skill)
		}
	}

	for _, category := range listing.Categories {
		if strings.Contains(lower, strings.ToLower(category)) {
			ctrl.SetCategory(category)
		}
	}

	if m := pricePattern.FindStringSubmatch(message); m != nil {
		if max, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			ctrl.SetPriceRange(models.PriceRangeFloor, max)
		}
	}

	if strings.Contains(lower, "noté") || strings.Contains(lower, "rated") {
		ctrl.SetSortOption(models.SortRating)
	}
}

func hasSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}

func searchAnswer(results []models.Freelancer) string {
	if len(results) == 0 {
		return "Je n'ai trouvé aucun freelance correspondant à ces critères. Essayez d'élargir votre recherche."
	}

	names := make([]string, 0, maxSuggestions)
	for i, f := range results {
		if i == maxSuggestions {
			break
		}
		names = append(names, fmt.Sprintf("%s (%s, %.0f€/h)", f.Name, f.Title, f.Price))
	}
	return fmt.Sprintf("J'ai trouvé %d freelance(s) correspondant à votre recherche. Voici mes suggestions : %s.",
		len(results), strings.Join(names, " ; "))
}

// handleChat sends the conversation to the language model.
func (s *DefaultService) handleChat(ctx context.Context, req models.AssistantRequest, aCtx *models.AssistantContext) (*models.AssistantResponse, error) {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	if req.Context != "" {
		sb.WriteString("\nInformations sur l'utilisateur: ")
		sb.WriteString(req.Context)
	}
	sb.WriteString("\n\n")
	for _, turn := range aCtx.History {
		sb.WriteString(turn.Role)
		sb.WriteString(": ")
		sb.WriteString(turn.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("user: ")
	sb.WriteString(req.Message)

	answer, err := s.gen.GenerateContent(ctx, sb.String())
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}
	if answer == "" {
		answer = "Désolé, je n'ai pas pu traiter votre demande."
	}

	aCtx.History = append(aCtx.History,
		models.AssistantTurn{Role: "user", Content: req.Message},
		models.AssistantTurn{Role: "assistant", Content: answer})
	if len(aCtx.History) > historyLimit {
		aCtx.History = aCtx.History[len(aCtx.History)-historyLimit:]
	}
	if err := s.ctxStore.Set(ctx, req.UserID, aCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	return &models.AssistantResponse{Answer: answer}, nil
}
