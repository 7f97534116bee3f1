package ocr

import (
	"context"
	"time"
)

// TextExtractor is the OCR collaborator: script image bytes -> text.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageBytes []byte) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	FullText      string
	PerRegionText []string
	Method        string // "image-ocr"
	Confidence    float64
	Duration      time.Duration
	Warnings      []string
}
