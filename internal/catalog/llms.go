// Package catalog holds the static list of target model identifiers with
// display metadata. It is a fixed lookup table - no persistence, no mutation -
// so it lives in memory instead of the entity store.
package catalog

// LLM describes one target model a prompt can be written for.
type LLM struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	Logo         string `json:"logo"`
	LogoFallback string `json:"logo_fallback,omitempty"`
}

var llms = []LLM{
	{ID: "claude-3.5-sonnet", Name: "Claude 3.5 Sonnet", Provider: "Anthropic", Logo: "/images/llms/claude.png", LogoFallback: "https://mintlify.s3.us-west-1.amazonaws.com/anthropic/logo/light.svg"},
	{ID: "claude-3-opus", Name: "Claude 3 Opus", Provider: "Anthropic", Logo: "/images/llms/claude.png", LogoFallback: "https://mintlify.s3.us-west-1.amazonaws.com/anthropic/logo/light.svg"},
	{ID: "claude-3-sonnet", Name: "Claude 3 Sonnet", Provider: "Anthropic", Logo: "/images/llms/claude.png", LogoFallback: "https://mintlify.s3.us-west-1.amazonaws.com/anthropic/logo/light.svg"},
	{ID: "gpt-4", Name: "GPT-4", Provider: "OpenAI", Logo: "/images/llms/openai.png", LogoFallback: "https://cdn.simpleicons.org/openai/412991"},
	{ID: "gpt-4-turbo", Name: "GPT-4 Turbo", Provider: "OpenAI", Logo: "/images/llms/openai.png", LogoFallback: "https://cdn.simpleicons.org/openai/412991"},
	{ID: "gpt-4o", Name: "GPT-4o", Provider: "OpenAI", Logo: "/images/llms/openai.png", LogoFallback: "https://cdn.simpleicons.org/openai/412991"},
	{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Provider: "OpenAI", Logo: "/images/llms/openai.png", LogoFallback: "https://cdn.simpleicons.org/openai/412991"},
	{ID: "o1", Name: "o1", Provider: "OpenAI", Logo: "/images/llms/openai.png", LogoFallback: "https://cdn.simpleicons.org/openai/412991"},
	{ID: "o1-mini", Name: "o1-mini", Provider: "OpenAI", Logo: "/images/llms/openai.png", LogoFallback: "https://cdn.simpleicons.org/openai/412991"},
	{ID: "gemini-pro", Name: "Gemini Pro", Provider: "Google", Logo: "/images/llms/gemini.png", LogoFallback: "https://www.gstatic.com/lamda/images/gemini_sparkle_v002_d4735304ff6292a690345.svg"},
	{ID: "gemini-ultra", Name: "Gemini Ultra", Provider: "Google", Logo: "/images/llms/gemini.png", LogoFallback: "https://www.gstatic.com/lamda/images/gemini_sparkle_v002_d4735304ff6292a690345.svg"},
	{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro", Provider: "Google", Logo: "/images/llms/gemini.png", LogoFallback: "https://www.gstatic.com/lamda/images/gemini_sparkle_v002_d4735304ff6292a690345.svg"},
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", Provider: "Google", Logo: "/images/llms/gemini.png", LogoFallback: "https://www.gstatic.com/lamda/images/gemini_sparkle_v002_d4735304ff6292a690345.svg"},
	{ID: "deepseek-v3", Name: "DeepSeek V3", Provider: "DeepSeek", Logo: "/images/llms/deepseek.png", LogoFallback: "https://github.com/deepseek-ai.png"},
	{ID: "deepseek-v2.5", Name: "DeepSeek V2.5", Provider: "DeepSeek", Logo: "/images/llms/deepseek.png", LogoFallback: "https://github.com/deepseek-ai.png"},
	{ID: "deepseek-coder", Name: "DeepSeek Coder", Provider: "DeepSeek", Logo: "/images/llms/deepseek.png", LogoFallback: "https://github.com/deepseek-ai.png"},
	{ID: "llama-3.1-405b", Name: "Llama 3.1 405B", Provider: "Meta", Logo: "/images/llms/meta.png", LogoFallback: "https://cdn.simpleicons.org/meta/0668E1"},
	{ID: "llama-3.1-70b", Name: "Llama 3.1 70B", Provider: "Meta", Logo: "/images/llms/meta.png", LogoFallback: "https://cdn.simpleicons.org/meta/0668E1"},
	{ID: "llama-3", Name: "Llama 3", Provider: "Meta", Logo: "/images/llms/meta.png", LogoFallback: "https://cdn.simpleicons.org/meta/0668E1"},
	{ID: "mistral-large", Name: "Mistral Large", Provider: "Mistral AI", Logo: "/images/llms/mistral.png", LogoFallback: "https://docs.mistral.ai/img/logo.svg"},
	{ID: "mistral-medium", Name: "Mistral Medium", Provider: "Mistral AI", Logo: "/images/llms/mistral.png", LogoFallback: "https://docs.mistral.ai/img/logo.svg"},
	{ID: "mixtral-8x7b", Name: "Mixtral 8x7B", Provider: "Mistral AI", Logo: "/images/llms/mistral.png", LogoFallback: "https://docs.mistral.ai/img/logo.svg"},
	{ID: "qwen-2.5", Name: "Qwen 2.5", Provider: "Alibaba", Logo: "/images/llms/qwen.png", LogoFallback: "https://avatars.githubusercontent.com/u/110708752"},
	{ID: "command-r-plus", Name: "Command R+", Provider: "Cohere", Logo: "/images/llms/cohere.png", LogoFallback: "https://asset.brandfetch.io/idSUrLOSerucU7_fh_/id0p5RFJOf.svg"},
}

var byID = func() map[string]LLM {
	m := make(map[string]LLM, len(llms))
	for _, l := range llms {
		m[l.ID] = l
	}
	return m
}()

// All returns the full catalog in display order. Callers get a copy so the
// table stays immutable.
func All() []LLM {
	out := make([]LLM, len(llms))
	copy(out, llms)
	return out
}

// ByID looks up a single model by identifier.
func ByID(id string) (LLM, bool) {
	l, ok := byID[id]
	return l, ok
}

// ByIDs resolves a set of identifiers, silently dropping unknown ones.
// Rating attribution is a free string, so unknowns are expected here.
func ByIDs(ids []string) []LLM {
	out := make([]LLM, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			out = append(out, l)
		}
	}
	return out
}
