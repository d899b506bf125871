// Package config loads application configuration from baseDir/config.json,
// layered over built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AuthorProfile describes the operator whose voice the proposals are
// written in. Fed verbatim into the generation prompt.
type AuthorProfile struct {
	Name       string `json:"name"`
	Headline   string `json:"headline"`
	Experience string `json:"experience"`
}

// ServiceOffering is one entry in the offered-services catalog: a service
// name (the value stored in service_needed) and its one-sentence pitch.
type ServiceOffering struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Config holds application configuration.
type Config struct {
	// Author is the profile embedded in every generation prompt.
	Author AuthorProfile `json:"author"`

	// Services is the ordered catalog of offered services. The names double
	// as the valid values for a request's service_needed field.
	Services []ServiceOffering `json:"services,omitempty"`

	// GeminiAPIKey is the bearer credential for the text-generation endpoint.
	// The GEMINI_API_KEY and GOOGLE_API_KEY environment variables take
	// precedence over this value.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// Model is the Gemini model used for generation and refinement.
	Model string `json:"model,omitempty"`

	// ProposalMaxChars is the character ceiling stated in both prompt
	// templates. It is communicated to the model, not enforced on output.
	ProposalMaxChars int `json:"proposal_max_chars"`

	// WebBind is the interface the web UI binds to.
	WebBind string `json:"web_bind,omitempty"`

	// WebPort is the web UI port.
	WebPort int `json:"web_port,omitempty"`

	// DBMaxOpenConns limits open database connections. 0 means sql.DB default.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits idle database connections. 0 means sql.DB default.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration: the coaching profile and
// catalog the tool ships with.
func DefaultConfig() *Config {
	return &Config{
		Author: AuthorProfile{
			Name:     "Islam Khairy",
			Headline: "Passionate Solopreneur | Mechanical BIM/VDC Engineer | Contech & Entrepreneurship Enthusiast | Career Development Coach & Startup Mentor",
			Experience: "With 4+ years of experience mentoring over 1,500 trainees, I specialize in Career Coaching, " +
				"Interview Preparation, Resume Writing, and Training. I have a proven track record of helping " +
				"professionals refine their career paths, optimize their resumes to get past ATS, and confidently " +
				"ace interviews. My unique background in Engineering Design also allows me to offer specialized " +
				"mentorship to technical professionals.",
		},
		Services: []ServiceOffering{
			{Name: "Career Development Coaching", Description: "I help clients gain clarity on their career goals and create a strategic roadmap for advancement."},
			{Name: "Interview Preparation", Description: "I conduct realistic mock interviews and provide actionable feedback to help clients walk into any interview with confidence and leave with an offer."},
			{Name: "Resume Review", Description: "I analyze and provide detailed feedback to transform a resume into a powerful marketing document that gets noticed."},
			{Name: "Resume Writing", Description: "I craft compelling, ATS-optimized resumes from scratch that highlight a client's key achievements and skills."},
			{Name: "Training", Description: "I offer customized training sessions on career-related topics."},
		},
		Model:            "gemini-2.0-flash",
		ProposalMaxChars: 1500,
		WebBind:          "127.0.0.1",
		WebPort:          8080,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.outreach.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; the services catalog is
// replaced wholesale when the overlay provides one (a partial catalog merge
// would silently change which service names are valid).
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Author = overlay.Author
	if result.Author.Name == "" {
		result.Author = base.Author
	}

	result.Services = overlay.Services
	if len(result.Services) == 0 {
		result.Services = base.Services
	}

	result.GeminiAPIKey = overlay.GeminiAPIKey
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = base.GeminiAPIKey
	}

	result.Model = overlay.Model
	if result.Model == "" {
		result.Model = base.Model
	}

	result.ProposalMaxChars = overlay.ProposalMaxChars
	if result.ProposalMaxChars == 0 {
		result.ProposalMaxChars = base.ProposalMaxChars
	}

	result.WebBind = overlay.WebBind
	if result.WebBind == "" {
		result.WebBind = base.WebBind
	}

	result.WebPort = overlay.WebPort
	if result.WebPort == 0 {
		result.WebPort = base.WebPort
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// APIKey resolves the generation credential: environment first, then config.
// Returns "" when no credential is configured anywhere.
func (c *Config) APIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return c.GeminiAPIKey
}

// ServiceNames returns the catalog's service names in order.
func (c *Config) ServiceNames() []string {
	names := make([]string, len(c.Services))
	for i, s := range c.Services {
		names[i] = s.Name
	}
	return names
}

// HasService reports whether name is in the catalog.
func (c *Config) HasService(name string) bool {
	for _, s := range c.Services {
		if s.Name == name {
			return true
		}
	}
	return false
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
