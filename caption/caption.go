// Package caption composes Korean captions from image classification
// results. Everything here is a pure decision table over fixed category,
// translation and template data; no I/O happens in this package.
package caption

import (
	"github.com/chanyoung/sajinmal/classifier"
)

// CannotAnalyze is returned when there are no classifications to caption.
const CannotAnalyze = "분석할 수 없는 이미지입니다"

// Confidence buckets used by the templates.
const (
	highConfidence = 0.8
	midConfidence  = 0.5
)

// Result is a generated caption together with the classifications it was
// derived from and the top probability.
type Result struct {
	Caption         string                      `json:"caption"`
	Classifications []classifier.Classification `json:"classifications"`
	Confidence      float32                     `json:"confidence"`
}

// Generate builds a caption from classifications sorted by descending
// probability. Only the top three records influence the sentence; the full
// input list is carried through on the result.
func Generate(records []classifier.Classification) Result {
	if len(records) == 0 {
		return Result{Caption: CannotAnalyze, Confidence: 0}
	}

	top := records
	if len(top) > 3 {
		top = top[:3]
	}

	byCat := make(map[string][]classifier.Classification)
	for _, r := range top {
		cat := CategoryOf(r.Label)
		byCat[cat] = append(byCat[cat], r)
	}
	dominant := dominantCategory(byCat)

	var sentence string
	switch {
	case len(top) == 1:
		sentence = singleSentence(CategoryOf(top[0].Label), top[0])
	case len(byCat) == 1:
		sentence = sameCategorySentence(dominant, top)
	default:
		sentence = mixedSentence(dominant, byCat, top)
	}

	return Result{
		Caption:         sentence,
		Classifications: records,
		Confidence:      top[0].Probability,
	}
}

// dominantCategory picks the category whose member records have the highest
// mean probability. Ties resolve to the earlier category in the fixed match
// order, with unknown last.
func dominantCategory(byCat map[string][]classifier.Classification) string {
	best := CategoryUnknown
	bestMean := float32(-1)
	for _, cat := range append(append([]string{}, categoryOrder...), CategoryUnknown) {
		members := byCat[cat]
		if len(members) == 0 {
			continue
		}
		var sum float32
		for _, m := range members {
			sum += m.Probability
		}
		mean := sum / float32(len(members))
		if mean > bestMean {
			best = cat
			bestMean = mean
		}
	}
	return best
}

func singleSentence(cat string, rec classifier.Classification) string {
	name := Translate(rec.Label)
	switch {
	case rec.Probability > highConfidence:
		switch cat {
		case CategoryAnimals:
			return "귀여운 " + name + "의 사진입니다"
		case CategoryFood:
			return "맛있어 보이는 " + name + " 사진입니다"
		case CategoryElectronics:
			return name + objectJosa(name) + " 찍은 제품 사진입니다"
		default:
			return "선명하게 찍힌 " + name + " 사진입니다"
		}
	case rec.Probability > midConfidence:
		return name + roJosa(name) + " 보이는 사진입니다"
	default:
		return name + "일 수도 있는 사진입니다"
	}
}

func sameCategorySentence(cat string, top []classifier.Classification) string {
	a := Translate(top[0].Label)
	b := Translate(top[1].Label)
	if top[0].Probability <= midConfidence {
		return a + linkJosa(a) + " " + b + subjectJosa(b) + " 있는 것으로 보이는 사진입니다"
	}
	switch cat {
	case CategoryAnimals:
		return "귀여운 " + a + linkJosa(a) + " " + b + subjectJosa(b) + " 함께 있는 사진입니다"
	case CategoryFood:
		return a + linkJosa(a) + " " + b + " 등 맛있는 음식이 담긴 사진입니다"
	case CategoryElectronics:
		return a + linkJosa(a) + " " + b + " 등 여러 전자제품이 놓인 사진입니다"
	default:
		return a + linkJosa(a) + " " + b + subjectJosa(b) + " 함께 담긴 사진입니다"
	}
}

// mixedSentence leads with the highest-probability record of the dominant
// category; records arrive sorted, so that is its first member.
func mixedSentence(dominant string, byCat map[string][]classifier.Classification, top []classifier.Classification) string {
	lead := byCat[dominant][0]
	name := Translate(lead.Label)
	if top[0].Probability <= midConfidence {
		return name + subjectJosa(name) + " 있는 듯한 사진입니다"
	}
	switch dominant {
	case CategoryAnimals:
		return name + objectJosa(name) + " 중심으로 한 동물 사진입니다"
	case CategoryFood:
		return name + objectJosa(name) + " 중심으로 한 음식 사진입니다"
	default:
		return name + objectJosa(name) + " 중심으로 다양한 요소가 담긴 사진입니다"
	}
}
