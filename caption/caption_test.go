package caption

import (
	"testing"

	"github.com/chanyoung/sajinmal/classifier"
)

func rec(label string, p float32) classifier.Classification {
	return classifier.Classification{Label: label, Probability: p}
}

func TestGenerateEmptyInput(t *testing.T) {
	got := Generate(nil)
	if got.Caption != CannotAnalyze {
		t.Fatalf("caption = %q, want %q", got.Caption, CannotAnalyze)
	}
	if got.Confidence != 0 {
		t.Fatalf("confidence = %v, want 0", got.Confidence)
	}
	if got.Classifications != nil {
		t.Fatalf("classifications = %v, want nil", got.Classifications)
	}
}

func TestGenerateSingleHighConfidenceAnimal(t *testing.T) {
	got := Generate([]classifier.Classification{rec("golden_retriever", 0.92)})
	if got.Caption != "귀여운 골든 리트리버의 사진입니다" {
		t.Fatalf("caption = %q", got.Caption)
	}
	if got.Confidence != 0.92 {
		t.Fatalf("confidence = %v, want 0.92", got.Confidence)
	}
}

func TestGenerateSingleTemplates(t *testing.T) {
	tests := []struct {
		label string
		prob  float32
		want  string
	}{
		{"pizza", 0.85, "맛있어 보이는 피자 사진입니다"},
		{"laptop", 0.9, "노트북을 찍은 제품 사진입니다"},
		{"sports_car", 0.95, "선명하게 찍힌 스포츠카 사진입니다"},
		{"space_shuttle", 0.9, "선명하게 찍힌 space shuttle 사진입니다"},
		{"tabby", 0.6, "얼룩 고양이로 보이는 사진입니다"},
		{"laptop", 0.7, "노트북으로 보이는 사진입니다"},
		{"hamster", 0.3, "햄스터일 수도 있는 사진입니다"},
	}
	for _, tt := range tests {
		got := Generate([]classifier.Classification{rec(tt.label, tt.prob)})
		if got.Caption != tt.want {
			t.Errorf("Generate(%s %.2f) = %q, want %q", tt.label, tt.prob, got.Caption, tt.want)
		}
	}
}

func TestGenerateSameCategory(t *testing.T) {
	got := Generate([]classifier.Classification{
		rec("golden_retriever", 0.7),
		rec("beagle", 0.6),
	})
	want := "귀여운 골든 리트리버와 비글이 함께 있는 사진입니다"
	if got.Caption != want {
		t.Fatalf("caption = %q, want %q", got.Caption, want)
	}

	got = Generate([]classifier.Classification{
		rec("pizza", 0.7),
		rec("cheeseburger", 0.55),
	})
	want = "피자와 치즈버거 등 맛있는 음식이 담긴 사진입니다"
	if got.Caption != want {
		t.Fatalf("caption = %q, want %q", got.Caption, want)
	}
}

func TestGenerateSameCategoryLowConfidence(t *testing.T) {
	got := Generate([]classifier.Classification{
		rec("golden_retriever", 0.45),
		rec("beagle", 0.4),
	})
	want := "골든 리트리버와 비글이 있는 것으로 보이는 사진입니다"
	if got.Caption != want {
		t.Fatalf("caption = %q, want %q", got.Caption, want)
	}
}

func TestGenerateMixedCategoriesDominantByMean(t *testing.T) {
	// electronics mean 0.52 beats animals mean 0.505 despite animals
	// holding two of the three records
	got := Generate([]classifier.Classification{
		rec("laptop", 0.52),
		rec("tabby", 0.51),
		rec("golden_retriever", 0.50),
	})
	want := "노트북을 중심으로 다양한 요소가 담긴 사진입니다"
	if got.Caption != want {
		t.Fatalf("caption = %q, want %q", got.Caption, want)
	}
}

func TestGenerateMixedCategories(t *testing.T) {
	got := Generate([]classifier.Classification{
		rec("pizza", 0.55),
		rec("golden_retriever", 0.3),
		rec("tabby", 0.25),
	})
	want := "피자를 중심으로 한 음식 사진입니다"
	if got.Caption != want {
		t.Fatalf("caption = %q, want %q", got.Caption, want)
	}

	got = Generate([]classifier.Classification{
		rec("tabby", 0.9),
		rec("laptop", 0.6),
	})
	want = "얼룩 고양이를 중심으로 한 동물 사진입니다"
	if got.Caption != want {
		t.Fatalf("caption = %q, want %q", got.Caption, want)
	}
}

func TestGenerateMixedLowConfidence(t *testing.T) {
	got := Generate([]classifier.Classification{
		rec("pizza", 0.4),
		rec("golden_retriever", 0.3),
	})
	want := "피자가 있는 듯한 사진입니다"
	if got.Caption != want {
		t.Fatalf("caption = %q, want %q", got.Caption, want)
	}
}

func TestGenerateKeepsInputAndTopConfidence(t *testing.T) {
	records := []classifier.Classification{
		rec("pizza", 0.5),
		rec("golden_retriever", 0.2),
		rec("tabby", 0.15),
		rec("laptop", 0.1),
	}
	got := Generate(records)
	if len(got.Classifications) != 4 {
		t.Fatalf("classifications count = %d, want 4", len(got.Classifications))
	}
	if got.Confidence != 0.5 {
		t.Fatalf("confidence = %v, want 0.5", got.Confidence)
	}
}
