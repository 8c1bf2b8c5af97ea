package domain

import "strings"

const (
	openRouterBaseURL  = "https://openrouter.ai/api/v1"
	huggingFaceBaseURL = "https://router.huggingface.co/v1"
	openRouterKeyEnv   = "OPENROUTER_API_KEY"
	huggingFaceKeyEnv  = "HF_TOKEN"
)

const systemPromptTemplate = `Use {{marker}} prefix to run commands. Example: '{{marker}} uname -a'
You are the council: a careful, inventive assistant for code, shell work and technical questions.
Only emit {{marker}} lines for commands you want executed on the operator's machine; their output is sent back to you.
Keep answers precise and short.`

// DefaultSystemPrompt teaches the models the directive marker protocol.
func DefaultSystemPrompt(marker string) string {
	if strings.TrimSpace(marker) == "" {
		marker = DefaultDirectiveMarker
	}
	return strings.ReplaceAll(systemPromptTemplate, "{{marker}}", marker)
}

const EvaluationPrompt = "Evaluate this answer for factual accuracy, coherence, and originality (0-10 each). Respond briefly."

// DefaultRoster mirrors the OpenRouter debate panel with a HuggingFace
// endpoint as last-resort fallback for quick queries.
func DefaultRoster() Roster {
	openRouter := func(name, model string) Endpoint {
		return Endpoint{
			Name:      name,
			Kind:      EndpointKindOpenAI,
			Model:     model,
			BaseURL:   openRouterBaseURL,
			APIKeyEnv: openRouterKeyEnv,
		}
	}

	roster := Roster{
		Endpoints: []Endpoint{
			openRouter("deepseek", "deepseek/deepseek-chat-v3.1:free"),
			openRouter("mistral", "mistralai/Mistral-Large-2411"),
			openRouter("qwen", "qwen/qwen3-coder:free"),
			openRouter("glm", "meta-llama/llama-4-maverick:free"),
			openRouter("openai", "gpt-4o-mini"),
			openRouter("kimi", "moonshotai/kimi-k2:free"),
			{
				Name:      "hf-qwen",
				Kind:      EndpointKindOpenAI,
				Model:     "Qwen/Qwen3-Coder-480B-A35B-Instruct",
				BaseURL:   huggingFaceBaseURL,
				APIKeyEnv: huggingFaceKeyEnv,
				Optional:  true,
			},
		},
		Personas: []Persona{
			{Name: "deepseek", Role: "Critical logician: deep reasoning, rigorous argument."},
			{Name: "mistral", Role: "Concise factual summarizer and pattern extractor."},
			{Name: "qwen", Role: "Creative coder and linguistic problem-solver."},
			{Name: "glm", Role: "Philosophical and ethical reasoning."},
			{Name: "openai", Role: "Moderator: final synthesis and consistency checker."},
		},
		Moderator: "openai",
		Evaluator: "openai",
		Fallback:  []string{"kimi", "hf-qwen"},
	}
	roster.Normalize()

	return roster
}
