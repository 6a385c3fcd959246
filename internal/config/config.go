package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"180s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
		BodyLimit    int64         `yaml:"body_limit" default:"1048576"` // bytes
	} `yaml:"server"`

	Auth struct {
		// ServiceAPIKey is the shared secret callers send as apiKey
		ServiceAPIKey string `yaml:"service_api_key"`
	} `yaml:"auth"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"claude"`
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		Model       string        `yaml:"model" default:"claude-3-5-sonnet-20241022"`
		MaxTokens   int           `yaml:"max_tokens" default:"4096"`
		Temperature float64       `yaml:"temperature" default:"0.7"`
		Timeout     time.Duration `yaml:"timeout" default:"150s"` // must stay below server.write_timeout
	} `yaml:"llm"`

	Pricing struct {
		InputPerMillion  float64 `yaml:"input_per_million" default:"3"`
		OutputPerMillion float64 `yaml:"output_per_million" default:"15"`
	} `yaml:"pricing"`

	Tailor struct {
		PromptStyle  string `yaml:"prompt_style" default:"detailed"`
		StrictSchema bool   `yaml:"strict_schema" default:"false"`
	} `yaml:"tailor"`

	CORS struct {
		AllowOrigin  string   `yaml:"allow_origin" default:"*"`
		AllowMethods []string `yaml:"allow_methods"`
		AllowHeaders []string `yaml:"allow_headers"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`

		Adapters []LogAdapter `yaml:"adapters"`
	} `yaml:"logging"`
}

// LogAdapter configures one logging output
type LogAdapter struct {
	Name    string                 `yaml:"name"`
	Type    string                 `yaml:"type"`
	Enabled bool                   `yaml:"enabled"`
	Options map[string]interface{} `yaml:"options"`
}

// PromptStyles lists the prompt templates the tailor service knows about
var PromptStyles = []string{"detailed", "concise"}

var (
	bracedVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareVarPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)

	// a secret that is nothing but an unexpanded variable reference
	placeholderPattern = regexp.MustCompile(`^\$\{?[A-Za-z_][A-Za-z0-9_]*\}?$`)
)

// expandEnvVars expands ${VAR} and $VAR references. Unset ${VAR} references
// expand to the empty string; unset bare $VAR references are left untouched.
func expandEnvVars(s string) string {
	s = bracedVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if val := os.Getenv(match[1:]); val != "" {
			return val
		}
		return match
	})
}

// Default returns a configuration populated with built-in defaults only
func Default() *Config {
	config := &Config{}

	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 180 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.BodyLimit = 1024 * 1024

	config.LLM.Provider = "claude"
	config.LLM.Model = "claude-3-5-sonnet-20241022"
	config.LLM.MaxTokens = 4096
	config.LLM.Temperature = 0.7
	config.LLM.Timeout = 150 * time.Second

	config.Pricing.InputPerMillion = 3
	config.Pricing.OutputPerMillion = 15

	config.Tailor.PromptStyle = "detailed"

	config.CORS.AllowOrigin = "*"
	config.CORS.AllowMethods = []string{"POST", "OPTIONS"}
	config.CORS.AllowHeaders = []string{"Content-Type", "Authorization"}

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	return config
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := Default()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		}
	}

	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if serviceKey := os.Getenv("SERVICE_API_KEY"); serviceKey != "" {
		c.Auth.ServiceAPIKey = serviceKey
	}

	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	// LLM_API_KEY wins when both are set
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		c.LLM.BaseURL = baseURL
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if style := os.Getenv("TAILOR_PROMPT_STYLE"); style != "" {
		c.Tailor.PromptStyle = style
	}

	if strict := os.Getenv("TAILOR_STRICT_SCHEMA"); strict != "" {
		c.Tailor.StrictSchema = strict == "true" || strict == "1"
	}

	if methods := os.Getenv("CORS_ALLOW_METHODS"); methods != "" {
		c.CORS.AllowMethods = splitList(methods)
	}

	if headers := os.Getenv("CORS_ALLOW_HEADERS"); headers != "" {
		c.CORS.AllowHeaders = splitList(headers)
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}

// Validate reports configuration that would leave the service unusable
func (c *Config) Validate() error {
	if c.Auth.ServiceAPIKey == "" || placeholderPattern.MatchString(c.Auth.ServiceAPIKey) {
		return fmt.Errorf("service API key not configured - set SERVICE_API_KEY")
	}

	if c.LLM.APIKey == "" || placeholderPattern.MatchString(c.LLM.APIKey) {
		return fmt.Errorf("LLM API key not configured - set ANTHROPIC_API_KEY or LLM_API_KEY")
	}

	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive, got %s", c.LLM.Timeout)
	}
	if c.Server.WriteTimeout > 0 && c.LLM.Timeout >= c.Server.WriteTimeout {
		return fmt.Errorf("llm.timeout (%s) must be shorter than server.write_timeout (%s)",
			c.LLM.Timeout, c.Server.WriteTimeout)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}

	known := false
	for _, style := range PromptStyles {
		if c.Tailor.PromptStyle == style {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown tailor.prompt_style %q (expected one of %s)",
			c.Tailor.PromptStyle, strings.Join(PromptStyles, ", "))
	}

	return nil
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
