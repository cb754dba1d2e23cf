package config

import (
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB         DBConfig
	Server     ServerConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Embedding  EmbeddingConfig
	Assessment AssessmentConfig
	CacheTTLs  CacheTTLConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

// EmbeddingConfig selects the semantic similarity estimator.
// Source "lexical" is the default and needs no external service;
// "ollama" and "openai" swap in an embedding-backed estimator.
type EmbeddingConfig struct {
	Source string
	Ollama struct {
		ServerURL string
		Model     string
	}
	OpenAI struct {
		APIKey string
		Model  string
	}
}

type CacheTTLConfig struct {
	AssessmentResult string `yaml:"assessment_result"`
	Embedding        string `yaml:"embedding"`
}

// DimensionWeights are the fixed aggregation weights for the five
// assessment dimensions. They must sum to 1.0.
type DimensionWeights struct {
	ContentAccuracy    float64
	SemanticSimilarity float64
	WritingQuality     float64
	CriticalThinking   float64
	TechnicalPrecision float64
}

// GradeBand maps a minimum percentage to a letter grade and band label.
type GradeBand struct {
	MinPercentage float64
	Grade         string
	Band          string
	Assessment    string
}

// AssessmentConfig is the tunable scoring policy: dimension weights and
// grade band cutoffs. Policy, not algorithm.
type AssessmentConfig struct {
	Weights    DimensionWeights
	GradeBands []GradeBand
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine: the defaults plus environment
		// variables cover everything the engine itself needs.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		CacheTTLs: CacheTTLConfig{
			AssessmentResult: viper.GetString("cache_ttls.assessment_result"),
			Embedding:        viper.GetString("cache_ttls.embedding"),
		},
		Assessment: AssessmentConfig{
			Weights: DimensionWeights{
				ContentAccuracy:    viper.GetFloat64("assessment.weights.content_accuracy"),
				SemanticSimilarity: viper.GetFloat64("assessment.weights.semantic_similarity"),
				WritingQuality:     viper.GetFloat64("assessment.weights.writing_quality"),
				CriticalThinking:   viper.GetFloat64("assessment.weights.critical_thinking"),
				TechnicalPrecision: viper.GetFloat64("assessment.weights.technical_precision"),
			},
			GradeBands: DefaultGradeBands(),
		},
	}

	config.Embedding.Source = viper.GetString("embedding.source")
	config.Embedding.Ollama.ServerURL = viper.GetString("embedding.ollama.server_url")
	config.Embedding.Ollama.Model = viper.GetString("embedding.ollama.model")
	config.Embedding.OpenAI.APIKey = viper.GetString("embedding.openai.api_key")
	config.Embedding.OpenAI.Model = viper.GetString("embedding.openai.model")

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.Embedding.OpenAI.APIKey = openAIKey
	}

	if err := config.Assessment.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("embedding.source", "lexical")
	viper.SetDefault("embedding.ollama.model", "nomic-embed-text")
	viper.SetDefault("embedding.openai.model", "text-embedding-ada-002")
	viper.SetDefault("cache_ttls.assessment_result", "24h")
	viper.SetDefault("cache_ttls.embedding", "168h")
	viper.SetDefault("assessment.weights.content_accuracy", 0.30)
	viper.SetDefault("assessment.weights.semantic_similarity", 0.25)
	viper.SetDefault("assessment.weights.writing_quality", 0.15)
	viper.SetDefault("assessment.weights.critical_thinking", 0.15)
	viper.SetDefault("assessment.weights.technical_precision", 0.15)
}

// DefaultGradeBands returns the standard grade band cutoffs. Deployments
// can replace them wholesale through AssessmentConfig.
func DefaultGradeBands() []GradeBand {
	return []GradeBand{
		{MinPercentage: 90, Grade: "A", Band: "Excellent", Assessment: "Outstanding answer"},
		{MinPercentage: 75, Grade: "B", Band: "Good", Assessment: "Solid answer with minor gaps"},
		{MinPercentage: 60, Grade: "C", Band: "Satisfactory", Assessment: "Adequate answer"},
		{MinPercentage: 40, Grade: "D", Band: "Needs Improvement", Assessment: "Weak answer"},
		{MinPercentage: 0, Grade: "F", Band: "Poor", Assessment: "Insufficient answer"},
	}
}

// Validate checks the scoring policy invariants: weights sum to 1.0 and
// grade bands cover 0% with descending cutoffs.
func (a *AssessmentConfig) Validate() error {
	sum := a.Weights.ContentAccuracy +
		a.Weights.SemanticSimilarity +
		a.Weights.WritingQuality +
		a.Weights.CriticalThinking +
		a.Weights.TechnicalPrecision
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("assessment dimension weights must sum to 1.0, got %v", sum)
	}

	if len(a.GradeBands) == 0 {
		return fmt.Errorf("at least one grade band is required")
	}
	if !sort.SliceIsSorted(a.GradeBands, func(i, j int) bool {
		return a.GradeBands[i].MinPercentage > a.GradeBands[j].MinPercentage
	}) {
		return fmt.Errorf("grade bands must be ordered by descending cutoff")
	}
	if a.GradeBands[len(a.GradeBands)-1].MinPercentage != 0 {
		return fmt.Errorf("lowest grade band must start at 0%%")
	}
	return nil
}

// BandFor returns the grade band matching the given percentage.
func (a *AssessmentConfig) BandFor(percentage float64) GradeBand {
	for _, band := range a.GradeBands {
		if percentage >= band.MinPercentage {
			return band
		}
	}
	return a.GradeBands[len(a.GradeBands)-1]
}

// ParseTTLStringOrDefault parses a duration string, falling back to the
// provided default when the value is empty or malformed.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	parsed, err := time.ParseDuration(ttl)
	if err != nil {
		return def
	}
	return parsed
}

func (c *Config) GetDSN() string {
	// Oracle DSN format: user/password@host:port/service
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
