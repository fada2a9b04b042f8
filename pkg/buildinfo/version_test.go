package buildinfo

import "testing"

func TestRenderer(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	tests := []struct {
		version, commit, want string
	}{
		{"dev", "none", "dev"},
		{"dev", "abc123", "dev+abc123"},
		{"v0.3.0", "abc123", "v0.3.0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			Version, Commit = tt.version, tt.commit
			if got := Renderer(); got != tt.want {
				t.Errorf("Renderer() = %q, want %q", got, tt.want)
			}
		})
	}
}
