package llm

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"header":"test"}`,
			want:  `{"header":"test"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"header\":\"test\"}\n```",
			want:  `{"header":"test"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"header\":\"test\"}\n```",
			want:  `{"header":"test"}`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  {\"header\":\"test\"}  ",
			want:  `{"header":"test"}`,
		},
		{
			name:  "extracts JSON from surrounding prose",
			input: "Here is your digest:\n{\"header\":\"test\"}\nHope that helps!",
			want:  `{"header":"test"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsUnsupportedParamError(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want bool
	}{
		{"unsupported max_tokens", "400: Unsupported parameter: 'max_tokens' is not supported with this model", true},
		{"unsupported max_completion_tokens", "max_completion_tokens is unsupported", true},
		{"unrelated error", "rate limit exceeded", false},
		{"mentions max_tokens but supported", "max_tokens must be positive", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isUnsupportedParamError(errTest(tt.msg))
			if got != tt.want {
				t.Errorf("isUnsupportedParamError(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
