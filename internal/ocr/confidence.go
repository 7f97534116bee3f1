package ocr

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reQuestionNo = regexp.MustCompile(`(?m)^\s*(?:q(?:uestion)?\s*)?\d{1,2}\s*[).:]`)
	reSentence   = regexp.MustCompile(`[.!?]\s+[A-Z]`)
)

func hasQuestionNumbering(s string) bool { return reQuestionNo.MatchString(s) }
func hasSentenceFlow(s string) bool      { return reSentence.MatchString(s) }

// alphaRatio is the share of letters among non-space runes; garbled OCR output
// skews heavily toward symbols and stray digits.
func alphaRatio(s string) float64 {
	var letters, total int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}

// heuristicConfidence estimates extraction quality from decoded text
// characteristics when the engine reports no word confidences.
func heuristicConfidence(txt string) float64 {
	txtL := strings.ToLower(txt)
	score := 0.2 // base
	if hasQuestionNumbering(txtL) {
		score += 0.2
	}
	if hasSentenceFlow(txt) {
		score += 0.15
	}
	if alphaRatio(txt) > 0.6 {
		score += 0.15
	}
	if len(txt) > 200 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
