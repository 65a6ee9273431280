package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"text/template"

	"github.com/amishk599/prepmap/internal/model"
)

// mockProvider is a stub LLMProvider for testing.
type mockProvider struct {
	response string
	err      error
	prompt   string
}

func (m *mockProvider) Complete(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.response, m.err
}

func TestClassify_ParsesProfile(t *testing.T) {
	provider := &mockProvider{response: `{
		"company_type": "big tech",
		"difficulty_level": "Hard",
		"interview_focus": ["Scale", " ", "Ownership"],
		"typical_rounds": ["Recruiter Call", "Coding", "Coding", "System Design", "Behavioral", "Hiring Manager"]
	}`}
	c := NewLLMCompanyClassifier(provider, ClassifyCompanyTemplate, nil)

	p, err := c.Classify(context.Background(), "Stripe", "Backend Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Archetype != model.ArchetypeBigTech {
		t.Errorf("Archetype = %q, want Big Tech", p.Archetype)
	}
	if p.Difficulty != model.DifficultyHard {
		t.Errorf("Difficulty = %q, want Hard", p.Difficulty)
	}
	if p.RoundCount != 6 {
		t.Errorf("RoundCount = %d, want 6", p.RoundCount)
	}
	if len(p.Focus) != 2 || p.Focus[1] != "Ownership" {
		t.Errorf("Focus = %v, want [Scale Ownership]", p.Focus)
	}
	if !strings.Contains(provider.prompt, "Stripe") || !strings.Contains(provider.prompt, "Backend Engineer") {
		t.Errorf("prompt missing company or role: %s", provider.prompt)
	}
}

func TestClassify_StripsCodeFence(t *testing.T) {
	provider := &mockProvider{response: "Here you go:\n```json\n{\"company_type\":\"Startup\",\"difficulty_level\":\"Medium\",\"interview_focus\":[\"Shipping\"]}\n```"}
	c := NewLLMCompanyClassifier(provider, ClassifyCompanyTemplate, nil)

	p, err := c.Classify(context.Background(), "Acme", "SWE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Archetype != model.ArchetypeStartup || p.RoundCount != 0 {
		t.Errorf("got %+v", p)
	}
}

func TestClassify_MissingFields(t *testing.T) {
	c := NewLLMCompanyClassifier(&mockProvider{response: `{"company_type":"Startup"}`}, ClassifyCompanyTemplate, nil)

	_, err := c.Classify(context.Background(), "Acme", "SWE")
	var parseErr *model.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if len(parseErr.Missing) != 2 || parseErr.Missing[0] != "difficulty_level" || parseErr.Missing[1] != "interview_focus" {
		t.Errorf("Missing = %v, want [difficulty_level interview_focus]", parseErr.Missing)
	}
}

func TestClassify_FocusRequired(t *testing.T) {
	for _, raw := range []string{
		`{"company_type":"Startup","difficulty_level":"Easy"}`,
		`{"company_type":"Startup","difficulty_level":"Easy","interview_focus":[" "]}`,
	} {
		c := NewLLMCompanyClassifier(&mockProvider{response: raw}, ClassifyCompanyTemplate, nil)
		_, err := c.Classify(context.Background(), "Acme", "SWE")
		var parseErr *model.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("raw %s: expected ParseError, got %v", raw, err)
		}
		if len(parseErr.Missing) != 1 || parseErr.Missing[0] != "interview_focus" {
			t.Errorf("raw %s: Missing = %v, want [interview_focus]", raw, parseErr.Missing)
		}
	}
}

func TestClassify_FocusAndRoundsFromReply(t *testing.T) {
	provider := &mockProvider{response: `{"company_type":"Startup","difficulty_level":"Easy",` +
		`"interview_focus":["Go","Scaling"],"typical_rounds":["Screen","Pairing"]}`}
	c := NewLLMCompanyClassifier(provider, ClassifyCompanyTemplate, nil)

	p, err := c.Classify(context.Background(), "Acme", "SWE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Focus) != 2 || p.Focus[0] != "Go" || p.Focus[1] != "Scaling" {
		t.Errorf("Focus = %v, want [Go Scaling]", p.Focus)
	}
	if p.RoundCount != 2 {
		t.Errorf("RoundCount = %d, want 2", p.RoundCount)
	}
	if !strings.Contains(provider.prompt, `"interview_focus"`) || !strings.Contains(provider.prompt, `"typical_rounds"`) {
		t.Errorf("prompt should ask for interview_focus and typical_rounds: %s", provider.prompt)
	}
}

func TestClassify_Garbage(t *testing.T) {
	for _, raw := range []string{"", "I am not sure.", `{"company_type": }`} {
		c := NewLLMCompanyClassifier(&mockProvider{response: raw}, ClassifyCompanyTemplate, nil)
		_, err := c.Classify(context.Background(), "Acme", "SWE")
		var parseErr *model.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("raw %q: expected ParseError, got %v", raw, err)
		}
	}
}

func TestClassify_UnknownEnum(t *testing.T) {
	c := NewLLMCompanyClassifier(&mockProvider{response: `{"company_type":"Conglomerate","difficulty_level":"Hard","interview_focus":["Scale"]}`}, ClassifyCompanyTemplate, nil)

	_, err := c.Classify(context.Background(), "Acme", "SWE")
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClassify_ProviderErrorPassesThrough(t *testing.T) {
	want := &model.ExternalCallError{Op: "gemini generate content", Err: errors.New("connection refused")}
	c := NewLLMCompanyClassifier(&mockProvider{err: want}, ClassifyCompanyTemplate, nil)

	_, err := c.Classify(context.Background(), "Acme", "SWE")
	var extErr *model.ExternalCallError
	if !errors.As(err, &extErr) {
		t.Errorf("expected ExternalCallError, got %v", err)
	}
}

func TestClassify_TemplateError(t *testing.T) {
	tmpl := template.Must(template.New("bad").Parse("{{.Missing.Field}}"))
	c := NewLLMCompanyClassifier(&mockProvider{}, tmpl, nil)

	if _, err := c.Classify(context.Background(), "Acme", "SWE"); err == nil {
		t.Error("expected template error")
	}
}
