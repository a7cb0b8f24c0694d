package caption

import "unicode/utf8"

const (
	hangulBase = 0xAC00
	hangulLast = 0xD7A3
	// jongseong index of ㄹ, which takes 로 instead of 으로
	jongRieul = 8
)

// finalJong returns the jongseong index of the last rune of s, or -1 when
// the word does not end in a composed Hangul syllable.
func finalJong(s string) int {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || r < hangulBase || r > hangulLast {
		return -1
	}
	return int(r-hangulBase) % 28
}

// hasBatchim reports whether the last syllable of s carries a final
// consonant. Words not ending in Hangul read as if they had none.
func hasBatchim(s string) bool {
	return finalJong(s) > 0
}

func subjectJosa(w string) string {
	if hasBatchim(w) {
		return "이"
	}
	return "가"
}

func objectJosa(w string) string {
	if hasBatchim(w) {
		return "을"
	}
	return "를"
}

func linkJosa(w string) string {
	if hasBatchim(w) {
		return "과"
	}
	return "와"
}

func roJosa(w string) string {
	if j := finalJong(w); j > 0 && j != jongRieul {
		return "으로"
	}
	return "로"
}
