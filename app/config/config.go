package config

import "time"

type Config struct {
	Server    HTTPServerConfig `json:"server"`
	LLM       LLMConfig        `json:"llm"`
	RateLimit RateLimitConfig  `json:"rate_limit"`
}

type HTTPServerConfig struct {
	Host         string        `json:"host" default:"0.0.0.0"`
	Port         int           `json:"port" default:"8080"`
	ReadTimeout  time.Duration `json:"read_timeout" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" default:"120s"`
}

type LLMConfig struct {
	APIKey      string        `json:"api_key" required:"true"`
	BaseURL     string        `json:"base_url"`
	Model       string        `json:"model" default:"gpt-4o-mini"`
	Temperature float64       `json:"temperature" default:"0.7"`
	Timeout     time.Duration `json:"timeout" default:"60s"`
}

type RateLimitConfig struct {
	Window      time.Duration `json:"window" default:"15m"`
	MaxRequests int           `json:"max_requests" default:"100"`
}
