package news

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "  Just plain article text.  ",
			want:  "Just plain article text.",
		},
		{
			name:  "tags removed",
			input: "<p>First paragraph.</p><p>Second paragraph.</p>",
			want:  "First paragraph. Second paragraph.",
		},
		{
			name:  "script body dropped",
			input: "<p>Visible text.</p><script>var tracker = 1;</script>",
			want:  "Visible text.",
		},
		{
			name:  "style body dropped",
			input: "<style>.hidden { display: none; }</style><div>Article body.</div>",
			want:  "Article body.",
		},
		{
			name:  "nested markup flattened",
			input: "<div><span>One</span> <b>two</b> three</div>",
			want:  "One two three",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
