package cache

// Keyer builds cache keys.
type Keyer interface {
	RenderKey(opts RenderKeyOpts) string
}

// RenderKeyOpts lists everything a rendered figure depends on.
type RenderKeyOpts struct {
	// InputHash is the Hash of the input file contents.
	InputHash string `json:"input"`
	// Settings is the canonical encoding of the render settings.
	Settings []byte `json:"settings"`
	Format   string `json:"format"`
	Phase    string `json:"phase,omitempty"`
	Sheet    string `json:"sheet,omitempty"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	// Fonts maps each text role with a custom font file to the Hash of
	// that file's contents.
	Fonts map[string]string `json:"fonts,omitempty"`
	// Version invalidates entries written by other builds.
	Version string `json:"version,omitempty"`
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey returns the key of a rendered figure.
func (DefaultKeyer) RenderKey(opts RenderKeyOpts) string {
	return hashKey("render", opts)
}
