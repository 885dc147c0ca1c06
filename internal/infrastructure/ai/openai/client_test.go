package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dishcovery/v1/internal/ports/outbound"
	"github.com/dishcovery/v1/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Authorization string
	Body          map[string]interface{}
}

// fakeProvider stands in for the completion endpoint and captures the
// last request it received.
func fakeProvider(t *testing.T, reply string, status int) (*httptest.Server, *recordedRequest) {
	t.Helper()
	recorded := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		recorded.Authorization = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recorded.Body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
		})
	}))
	t.Cleanup(server.Close)
	return server, recorded
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gpt-4",
	}, logger.NewNop())
}

func TestComplete_SendsBearerAndSingleUserTurn(t *testing.T) {
	server, recorded := fakeProvider(t, "  hello there  ", http.StatusOK)
	client := newTestClient(server.URL)

	reply, err := client.Complete(context.Background(), "say hello", 100)

	require.NoError(t, err)
	assert.Equal(t, "hello there", reply, "reply should be trimmed")
	assert.Equal(t, "Bearer test-key", recorded.Authorization)
	assert.Equal(t, "gpt-4", recorded.Body["model"])

	messages := recorded.Body["messages"].([]interface{})
	require.Len(t, messages, 1)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "say hello", first["content"])
	assert.Equal(t, float64(100), recorded.Body["max_tokens"])
}

func TestGenerateRecipeForDish_UsesDiabeticPromptTemplate(t *testing.T) {
	server, recorded := fakeProvider(t, "a recipe", http.StatusOK)
	client := newTestClient(server.URL)

	_, err := client.GenerateRecipeForDish(context.Background(), "Pad Thai", outbound.ProfileHints{})

	require.NoError(t, err)
	messages := recorded.Body["messages"].([]interface{})
	content := messages[0].(map[string]interface{})["content"].(string)
	assert.Equal(t, "Provide a healthy recipe for Pad Thai for diabetics.", content)
}

func TestGenerateRecipeFromIngredients_JoinsListAndAppendsHints(t *testing.T) {
	server, recorded := fakeProvider(t, "a recipe", http.StatusOK)
	client := newTestClient(server.URL)

	_, err := client.GenerateRecipeFromIngredients(context.Background(),
		[]string{"eggs", "spinach"},
		outbound.ProfileHints{ChronicConditions: []string{"htn"}, HealthGoal: "lose_weight"})

	require.NoError(t, err)
	messages := recorded.Body["messages"].([]interface{})
	content := messages[0].(map[string]interface{})["content"].(string)
	assert.Contains(t, content, "Provide a healthy recipe with these ingredients: eggs, spinach, for diabetics")
	assert.Contains(t, content, "chronic conditions into account: htn")
	assert.Contains(t, content, "lose weight")
}

func TestEstimateCalories_ParsesFirstNumericToken(t *testing.T) {
	cases := []struct {
		reply string
		want  float64
	}{
		{"This recipe has about 450 calories per serving.", 450},
		{"Roughly 320.5 kcal.", 320.5},
		{"I cannot estimate that.", 0},
	}

	for _, tc := range cases {
		server, recorded := fakeProvider(t, tc.reply, http.StatusOK)
		client := newTestClient(server.URL)

		got, err := client.EstimateCalories(context.Background(), "recipe text")

		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "reply %q", tc.reply)
		assert.Equal(t, float64(50), recorded.Body["max_tokens"])
	}
}

func TestExtractDishName_ReturnsTrimmedReply(t *testing.T) {
	server, recorded := fakeProvider(t, " Chicken Adobo ", http.StatusOK)
	client := newTestClient(server.URL)

	name, err := client.ExtractDishName(context.Background(), "recipe text")

	require.NoError(t, err)
	assert.Equal(t, "Chicken Adobo", name)
	messages := recorded.Body["messages"].([]interface{})
	content := messages[0].(map[string]interface{})["content"].(string)
	assert.Contains(t, content, "Extract the dish name from the following recipe:")
}

func TestDetectIngredients_SendsImagePart(t *testing.T) {
	server, recorded := fakeProvider(t, "eggs, cheese", http.StatusOK)
	client := newTestClient(server.URL)

	detected, err := client.DetectIngredients(context.Background(), "https://img.example/food.jpg", "")

	require.NoError(t, err)
	assert.Equal(t, "eggs, cheese", detected)

	messages := recorded.Body["messages"].([]interface{})
	parts := messages[0].(map[string]interface{})["content"].([]interface{})
	require.Len(t, parts, 2)
	image := parts[1].(map[string]interface{})
	assert.Equal(t, "image_url", image["type"])
	assert.Equal(t, "https://img.example/food.jpg", image["image_url"].(map[string]interface{})["url"])
}

func TestDetectIngredients_Base64BecomesDataURL(t *testing.T) {
	server, recorded := fakeProvider(t, "eggs", http.StatusOK)
	client := newTestClient(server.URL)

	_, err := client.DetectIngredients(context.Background(), "", "AAAA")

	require.NoError(t, err)
	messages := recorded.Body["messages"].([]interface{})
	parts := messages[0].(map[string]interface{})["content"].([]interface{})
	image := parts[1].(map[string]interface{})
	assert.Equal(t, "data:image/jpeg;base64,AAAA", image["image_url"].(map[string]interface{})["url"])
}

func TestCall_NonOKStatusReturnsError(t *testing.T) {
	server, _ := fakeProvider(t, "irrelevant", http.StatusBadGateway)
	client := newTestClient(server.URL)

	_, err := client.Complete(context.Background(), "prompt", 10)

	assert.Error(t, err)
}
