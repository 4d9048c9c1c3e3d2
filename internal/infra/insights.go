package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// InsightsClient chama a API Gemini (generateContent) para produzir o texto
// de consultoria do dashboard. A chamada é somente leitura em relação ao
// estado e nunca é pré-requisito de nenhuma operação de mutação — qualquer
// falha aqui vira o texto de fallback na camada de serviço.
type InsightsClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewInsightsClient(baseURL, apiKey, model string) *InsightsClient {
	return &InsightsClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configurado indica se o cliente tem uma API key — sem ela nem tentamos a
// chamada externa.
func (c *InsightsClient) Configurado() bool {
	return c != nil && c.apiKey != ""
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Gerar envia o prompt e devolve o texto da primeira resposta candidata.
func (c *InsightsClient) Gerar(ctx context.Context, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("insights: marshal payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("insights: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("insights: api unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insights: api returned %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("insights: decode response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("insights: resposta vazia")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
