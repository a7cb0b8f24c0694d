package caption

import (
	"context"
	"errors"
	"testing"

	"github.com/chanyoung/sajinmal/classifier"
	"github.com/chanyoung/sajinmal/config"
)

func TestAnalyzeTagsFailures(t *testing.T) {
	c := classifier.New(config.Config{})
	defer c.Close()

	_, err := Analyze(context.Background(), c, []byte("not an image"), classifier.Options{})
	if err == nil {
		t.Fatal("expected error for undecodable input")
	}
	var tagged *classifier.Error
	if !errors.As(err, &tagged) {
		t.Fatalf("expected tagged error, got %v", err)
	}
	if tagged.Code != classifier.CodeAnalyze {
		t.Fatalf("code = %q, want %q", tagged.Code, classifier.CodeAnalyze)
	}
}
