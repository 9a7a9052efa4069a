package service

import (
	"testing"
)

func TestValidatePlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "single placeholder",
			content: "A video about {{topic}}",
			wantErr: false,
		},
		{
			name:    "multiple placeholders",
			content: "{{hook}} and then {{payoff}}",
			wantErr: false,
		},
		{
			name:    "placeholder with inner whitespace",
			content: "Intro for {{ topic }}",
			wantErr: false,
		},
		{
			name:    "placeholder is the whole content",
			content: "{{topic}}",
			wantErr: false,
		},
		{
			name:    "no placeholder at all",
			content: "A video about something",
			wantErr: true,
		},
		{
			name:    "single braces do not count",
			content: "A video about {topic}",
			wantErr: true,
		},
		{
			name:    "empty placeholder",
			content: "A video about {{}}",
			wantErr: true,
		},
		{
			name:    "whitespace-only placeholder",
			content: "A video about {{   }}",
			wantErr: true,
		},
		{
			name:    "empty placeholder alongside a valid one",
			content: "{{topic}} and {{}}",
			wantErr: true,
		},
		{
			name:    "unterminated open is not a placeholder",
			content: "{placeholder} or {{incomplete",
			wantErr: true,
		},
		{
			name:    "valid placeholder followed by unterminated open",
			content: "{{topic}} with {{dangling",
			wantErr: false,
		},
		{
			name:    "open inside interior pairs greedily",
			content: "{{a{{b}}",
			wantErr: false,
		},
		{
			name:    "empty content",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlaceholders(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlaceholders(%q) error = %v, wantErr %v", tt.content, err, tt.wantErr)
			}
		})
	}
}
