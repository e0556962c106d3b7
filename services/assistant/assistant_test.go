package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	freelancerRepo "freelanceai/database/repository/freelancer"
	"freelanceai/models"
	"freelanceai/services/listing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cannedGenerator struct {
	answer  string
	err     error
	prompts []string
}

func (g *cannedGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.answer, nil
}

func newAssistant(t *testing.T) (*DefaultService, *cannedGenerator) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	gen := &cannedGenerator{answer: "Bien sûr, je peux vous aider."}
	store := NewRedisContextStore(client, time.Hour)
	listings := listing.NewService(freelancerRepo.NewMemoryRepo(nil), nil, zap.NewNop())
	return NewService(gen, store, listings, zap.NewNop()), gen
}

func TestChatDelegatesToModel(t *testing.T) {
	svc, gen := newAssistant(t)

	res, err := svc.Chat(context.Background(), models.AssistantRequest{
		UserID:  "u1",
		Message: "Comment fonctionnent les paiements ?",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bien sûr, je peux vous aider.", res.Answer)
	assert.Empty(t, res.Suggestions)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "plateforme de freelances")
	assert.Contains(t, gen.prompts[0], "Comment fonctionnent les paiements ?")
}

func TestChatCarriesHistory(t *testing.T) {
	svc, gen := newAssistant(t)
	ctx := context.Background()

	_, err := svc.Chat(ctx, models.AssistantRequest{UserID: "u1", Message: "Bonjour"})
	require.NoError(t, err)

	_, err = svc.Chat(ctx, models.AssistantRequest{UserID: "u1", Message: "Et les tarifs ?"})
	require.NoError(t, err)

	require.Len(t, gen.prompts, 2)
	// Second prompt replays the first exchange.
	assert.Contains(t, gen.prompts[1], "user: Bonjour")
	assert.Contains(t, gen.prompts[1], "assistant: Bien sûr, je peux vous aider.")
}

func TestChatHistoryIsPerUser(t *testing.T) {
	svc, gen := newAssistant(t)
	ctx := context.Background()

	_, err := svc.Chat(ctx, models.AssistantRequest{UserID: "u1", Message: "Bonjour"})
	require.NoError(t, err)
	_, err = svc.Chat(ctx, models.AssistantRequest{UserID: "u2", Message: "Salut"})
	require.NoError(t, err)

	assert.NotContains(t, gen.prompts[1], "Bonjour")
}

func TestChatIncludesCallerContext(t *testing.T) {
	svc, gen := newAssistant(t)

	_, err := svc.Chat(context.Background(), models.AssistantRequest{
		UserID:  "u1",
		Message: "Que me conseillez-vous ?",
		Context: "client PME, budget limité",
	})
	require.NoError(t, err)
	assert.Contains(t, gen.prompts[0], "client PME, budget limité")
}

func TestChatModelError(t *testing.T) {
	svc, gen := newAssistant(t)
	gen.err = errors.New("quota exceeded")

	_, err := svc.Chat(context.Background(), models.AssistantRequest{UserID: "u1", Message: "Bonjour"})
	assert.ErrorContains(t, err, "generate answer")
}

func TestGuidedSearchBySkill(t *testing.T) {
	svc, gen := newAssistant(t)

	res, err := svc.Chat(context.Background(), models.AssistantRequest{
		UserID:  "u1",
		Message: "Je cherche un freelance Python",
	})
	require.NoError(t, err)

	// The search path never calls the model.
	assert.Empty(t, gen.prompts)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Thomas Laurent", res.Suggestions[0].Name)
	assert.Contains(t, res.Answer, "Thomas Laurent")
}

func TestGuidedSearchNarrowsAcrossTurns(t *testing.T) {
	svc, _ := newAssistant(t)
	ctx := context.Background()

	first, err := svc.Chat(ctx, models.AssistantRequest{
		UserID:  "u1",
		Message: "Je cherche un freelance DeFi",
	})
	require.NoError(t, err)
	require.Len(t, first.Suggestions, 2)

	// The budget from the second turn stacks on the first turn's skill.
	second, err := svc.Chat(ctx, models.AssistantRequest{
		UserID:  "u1",
		Message: "je cherche pour moins de 100€",
	})
	require.NoError(t, err)

	require.Len(t, second.Suggestions, 1)
	assert.Equal(t, "Alexandre Martin", second.Suggestions[0].Name)
}

func TestGuidedSearchNoMatch(t *testing.T) {
	svc, _ := newAssistant(t)

	res, err := svc.Chat(context.Background(), models.AssistantRequest{
		UserID:  "u1",
		Message: "je cherche pour moins de 10€",
	})
	require.NoError(t, err)

	assert.Empty(t, res.Suggestions)
	assert.True(t, strings.Contains(res.Answer, "aucun freelance"), res.Answer)
}

func TestResetClearsContext(t *testing.T) {
	svc, gen := newAssistant(t)
	ctx := context.Background()

	_, err := svc.Chat(ctx, models.AssistantRequest{UserID: "u1", Message: "Bonjour"})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx, "u1"))

	_, err = svc.Chat(ctx, models.AssistantRequest{UserID: "u1", Message: "On reprend"})
	require.NoError(t, err)
	assert.NotContains(t, gen.prompts[1], "Bonjour")
}
