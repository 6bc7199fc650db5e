package schedule

import "testing"

func TestTextColor(t *testing.T) {
	tests := []struct {
		name       string
		background string
		want       string
	}{
		{name: "black bg gets white text", background: "#000000", want: "#ffffff"},
		{name: "white bg gets dark text", background: "#ffffff", want: "#1f2937"},
		{name: "indigo bg gets white text", background: "#4F46E5", want: "#ffffff"},
		{name: "yellow bg gets dark text", background: "#FFD700", want: "#1f2937"},
		{name: "malformed defaults to white", background: "blue", want: "#ffffff"},
		{name: "empty defaults to white", background: "", want: "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TextColor(tt.background)
			if got != tt.want {
				t.Errorf("TextColor(%q) = %q, want %q", tt.background, got, tt.want)
			}
		})
	}
}
