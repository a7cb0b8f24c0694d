package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/chanyoung/sajinmal/caption"
	"github.com/chanyoung/sajinmal/classifier"
)

var errUnauthorized = errors.New("unauthorized")

// Analyzer is the classifier surface the handlers need; tests substitute a
// fake.
type Analyzer interface {
	Classify(ctx context.Context, src any, opts classifier.Options) ([]classifier.Classification, error)
	Warmup(ctx context.Context, opts classifier.LoadOptions) error
	Status() classifier.Status
}

type Service struct {
	cls   Analyzer
	token string
}

func New(cls Analyzer, token string) *Service {
	return &Service{cls: cls, token: token}
}

func (s *Service) Register(r *gin.Engine) {
	r.Use(RequestID())
	r.POST("/analyze", s.AnalyzeHandler)
	r.POST("/classify", s.ClassifyHandler)
	r.POST("/warmup", s.WarmupHandler)
	r.GET("/status", s.StatusHandler)
	r.GET("/health", s.HealthHandler)
}

func (s *Service) authenticate(c *gin.Context) error {
	if s.token == "" {
		return nil
	}
	auth := c.GetHeader("Authorization")
	providedToken := ""
	if len(auth) > 7 && auth[:7] == "Bearer " {
		providedToken = auth[7:]
	}
	if subtle.ConstantTimeCompare([]byte(providedToken), []byte(s.token)) != 1 {
		return errUnauthorized
	}
	return nil
}

// errorBody shapes a failure as {"error": msg, "code": code}, surfacing the
// tagged code when one is present.
func errorBody(msg string, err error) gin.H {
	var tagged *classifier.Error
	if errors.As(err, &tagged) {
		return gin.H{"error": tagged.Message, "code": tagged.Code}
	}
	return gin.H{"error": msg}
}

func (s *Service) formImage(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "파일이 업로드되지 않았습니다"})
		return nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(400, gin.H{"error": "업로드된 파일을 열 수 없습니다"})
		return nil, false
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		c.JSON(400, gin.H{"error": "업로드된 파일을 읽을 수 없습니다"})
		return nil, false
	}
	return buf, true
}

func (s *Service) AnalyzeHandler(c *gin.Context) {
	if err := s.authenticate(c); err != nil {
		c.JSON(401, gin.H{"error": "인증에 실패했습니다"})
		return
	}
	data, ok := s.formImage(c)
	if !ok {
		return
	}

	records, err := s.cls.Classify(c.Request.Context(), data, classifier.Options{})
	if err != nil {
		err = classifier.NewError(classifier.CodeAnalyze, "이미지 분석에 실패했습니다", err)
		slog.Error("Analysis failed",
			slog.String("request_id", c.GetString(requestIDKey)),
			slog.String("error", err.Error()))
		c.JSON(500, errorBody("이미지 분석에 실패했습니다", err))
		return
	}

	c.JSON(200, caption.Generate(records))
}

func (s *Service) ClassifyHandler(c *gin.Context) {
	if err := s.authenticate(c); err != nil {
		c.JSON(401, gin.H{"error": "인증에 실패했습니다"})
		return
	}
	data, ok := s.formImage(c)
	if !ok {
		return
	}

	records, err := s.cls.Classify(c.Request.Context(), data, classifier.Options{})
	if err != nil {
		slog.Error("Classification failed",
			slog.String("request_id", c.GetString(requestIDKey)),
			slog.String("error", err.Error()))
		c.JSON(500, errorBody("이미지 분류에 실패했습니다", err))
		return
	}

	c.JSON(200, gin.H{"classifications": records})
}

func (s *Service) WarmupHandler(c *gin.Context) {
	if err := s.authenticate(c); err != nil {
		c.JSON(401, gin.H{"error": "인증에 실패했습니다"})
		return
	}
	if err := s.cls.Warmup(c.Request.Context(), classifier.LoadOptions{}); err != nil {
		slog.Error("Warmup failed", slog.String("error", err.Error()))
		c.JSON(500, errorBody("모델을 불러오지 못했습니다", err))
		return
	}
	c.JSON(200, s.cls.Status())
}

func (s *Service) StatusHandler(c *gin.Context) {
	c.JSON(200, s.cls.Status())
}

func (s *Service) HealthHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy"})
}
