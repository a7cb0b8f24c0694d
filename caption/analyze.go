package caption

import (
	"context"

	"github.com/chanyoung/sajinmal/classifier"
)

// Analyze classifies src with c and composes a caption from the top
// predictions. src accepts the forms DecodeImage supports.
func Analyze(ctx context.Context, c *classifier.Classifier, src any, opts classifier.Options) (Result, error) {
	records, err := c.Classify(ctx, src, opts)
	if err != nil {
		return Result{}, classifier.NewError(classifier.CodeAnalyze, "이미지 분석에 실패했습니다", err)
	}
	return Generate(records), nil
}
