package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/apollolabs/apollo/internal/config"
	"github.com/apollolabs/apollo/internal/generator"
	"github.com/apollolabs/apollo/internal/llm"
	"github.com/apollolabs/apollo/internal/record"
)

// Server exposes the generators over HTTP. Each request builds its own
// generator with its own random stream, so concurrent requests keep
// independent draws.
type Server struct {
	cfg *config.Config
}

func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Server{cfg: cfg}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/generate", s.Generate)

	return r
}

type GenerateRequest struct {
	Type        string   `json:"type"`
	NumEntries  int      `json:"num_entries"`
	Probability *float64 `json:"probability"`
	Choices     string   `json:"choices"`
	Provider    string   `json:"provider"`
	Method      string   `json:"method"`
	Prompt      string   `json:"prompt"`
	NumSamples  int      `json:"num_samples"`
	ModelType   string   `json:"model_type"`
	Seed        uint64   `json:"seed"`
}

func (s *Server) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	n := req.NumEntries
	if n <= 0 {
		n = s.cfg.Defaults.NumEntries
	}

	src := generator.DefaultSource()
	if req.Seed != 0 {
		src = generator.SeededSource(req.Seed)
	}

	var records []*record.Record
	switch req.Type {
	case "binary":
		if req.Probability == nil || *req.Probability < 0 || *req.Probability > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "probability must be between 0 and 1"})
			return
		}
		records = generator.NewBinaryGenerator(*req.Probability, src).GenerateData(n)

	case "weighted":
		g, err := generator.NewWeightedGenerator(req.Choices, src)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		records = g.GenerateData(n)

	case "faker":
		g, err := generator.NewFakerGenerator(req.Provider, req.Method, req.Seed)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		records = g.GenerateData(n)

	case "genai":
		llmCfg := s.cfg.LLM
		if req.ModelType != "" {
			llmCfg.Provider = req.ModelType
		}
		prompt, err := s.cfg.ResolvePrompt(req.Prompt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		client, err := llm.NewClient(c.Request.Context(), llmCfg)
		if err != nil {
			var cfgErr *llm.ConfigurationError
			if errors.As(err, &cfgErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		g, err := generator.NewGenAIGenerator(client, prompt, "")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		samples := req.NumSamples
		if samples <= 0 {
			samples = n
		}
		records, err = g.GenerateData(c.Request.Context(), samples, nil)
		if err != nil {
			log.Printf("genai generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate data"})
			return
		}

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown generator type: " + req.Type})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"batch_id": uuid.NewString(),
		"count":    len(records),
		"records":  records,
	})
}
