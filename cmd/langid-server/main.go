package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/xid"
	"go.uber.org/zap"
	_ "gocloud.dev/blob/fileblob"

	"github.com/future-architect/langid"
)

var (
	classifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "langid_classify_total",
		Help: "Number of classified words by resulting language tag.",
	}, []string{"language"})
	classifyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "langid_classify_duration_seconds",
		Help: "Classification latency.",
	})
)

type server struct {
	model  *langid.Model
	cache  *lru.Cache[string, langid.Result]
	logger *zap.Logger
}

// classifyWord serves from the cache when possible. Classification is pure,
// so cached results never go stale.
func (s *server) classifyWord(word string) (langid.Result, error) {
	if result, ok := s.cache.Get(word); ok {
		return result, nil
	}
	timer := prometheus.NewTimer(classifyDuration)
	result, err := s.model.Classify(word)
	timer.ObserveDuration()
	if err != nil {
		return langid.Result{}, err
	}
	s.cache.Add(word, result)
	classifyTotal.WithLabelValues(result.Tag).Inc()
	return result, nil
}

type classifyRequest struct {
	Words []string `json:"words" binding:"required"`
}

type classifyResponse struct {
	Results []langid.Result `json:"results"`
}

func (s *server) postClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	results := make([]langid.Result, 0, len(req.Words))
	for _, word := range req.Words {
		result, err := s.classifyWord(word)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "word": word})
			return
		}
		results = append(results, result)
	}
	c.JSON(http.StatusOK, classifyResponse{Results: results})
}

func (s *server) getClassify(c *gin.Context) {
	result, err := s.classifyWord(c.Param("word"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"features": s.model.Features()})
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := xid.New().String()
		c.Set("request_id", requestID)
		c.Next()
		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}

func newRouter(s *server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))
	router.POST("/classify", s.postClassify)
	router.GET("/classify/:word", s.getClassify)
	router.GET("/healthz", s.healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config, err := loadConfig()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	model, err := langid.New(context.Background(), config.MinorityList, config.EnglishList, langid.Option{
		MinorityTag: config.MinorityTag,
		EnglishTag:  config.EnglishTag,
		BucketURL:   config.BucketURL,
	})
	if err != nil {
		logger.Fatal("can't build language model", zap.Error(err))
	}

	cache, err := lru.New[string, langid.Result](config.CacheSize)
	if err != nil {
		logger.Fatal("can't create cache", zap.Error(err))
	}

	s := &server{model: model, cache: cache, logger: logger}
	logger.Info("listening",
		zap.String("address", config.Address),
		zap.Int("features", model.Features()),
		zap.String("minority_tag", config.MinorityTag),
	)
	if err := newRouter(s).Run(config.Address); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
