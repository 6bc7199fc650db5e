package theme

import "testing"

func TestLoad(t *testing.T) {
	for _, name := range Available() {
		th, err := Load(name)
		if err != nil {
			t.Errorf("Load(%q) error: %v", name, err)
			continue
		}
		if th.Name != name {
			t.Errorf("Load(%q).Name = %q", name, th.Name)
		}
	}
}

func TestLoadEmptyDefaultsToDark(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if th.Name != "dark" {
		t.Errorf("Load(\"\").Name = %q, want dark", th.Name)
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("mauve"); err == nil {
		t.Error("Load(unknown) error = nil")
	}
}

func TestTextOn(t *testing.T) {
	tests := []struct {
		name       string
		background string
		want       string
	}{
		{name: "black", background: "#000000", want: "#ffffff"},
		{name: "white", background: "#ffffff", want: "#1f2937"},
		{name: "indigo", background: "#4F46E5", want: "#ffffff"},
		{name: "yellow", background: "#FFD700", want: "#1f2937"},
		{name: "garbage", background: "not-a-color", want: "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(TextOn(tt.background)); got != tt.want {
				t.Errorf("TextOn(%q) = %q, want %q", tt.background, got, tt.want)
			}
		})
	}
}
