package classifier

import (
	"math"
	"sort"
)

// Softmax converts raw logits into probabilities that sum to one.
func Softmax(logits []float32) []float32 {
	if len(logits) == 0 {
		return nil
	}
	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}
	probs := make([]float32, len(logits))
	var sum float64
	for i, v := range logits {
		e := math.Exp(float64(v - maxLogit))
		probs[i] = float32(e)
		sum += e
	}
	for i := range probs {
		probs[i] = float32(float64(probs[i]) / sum)
	}
	return probs
}

// TopK returns the k highest-probability classifications sorted descending,
// with each probability mapped to its label by index. k is clamped to the
// class count.
func TopK(probs []float32, labels []string, k int) []Classification {
	n := len(probs)
	if len(labels) < n {
		n = len(labels)
	}
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return probs[idx[a]] > probs[idx[b]]
	})

	out := make([]Classification, 0, k)
	for _, i := range idx[:k] {
		out = append(out, Classification{
			Label:       labels[i],
			Probability: probs[i],
		})
	}
	return out
}
