package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"
)

// TesseractExtractor implements TextExtractor with a local Tesseract engine.
type TesseractExtractor struct {
	languages   []string
	tessdataDir string
	log         *slog.Logger

	clientFactory func() *gosseract.Client
}

func NewTesseractExtractor(languages []string, tessdataDir string, log *slog.Logger) *TesseractExtractor {
	if log == nil {
		log = slog.Default()
	}
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &TesseractExtractor{
		languages:     languages,
		tessdataDir:   tessdataDir,
		log:           log,
		clientFactory: gosseract.NewClient,
	}
}

func (t *TesseractExtractor) ExtractText(ctx context.Context, imageBytes []byte) (TextExtractionResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}

	c := t.clientFactory()
	defer c.Close()

	if t.tessdataDir != "" {
		if err := c.SetTessdataPrefix(t.tessdataDir); err != nil {
			return TextExtractionResult{}, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := c.SetLanguage(t.languages...); err != nil {
		return TextExtractionResult{}, fmt.Errorf("set languages: %w", err)
	}
	if err := c.SetImageFromBytes(imageBytes); err != nil {
		return TextExtractionResult{}, fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("recognize text: %w", err)
	}
	full := strings.TrimSpace(text)

	res := TextExtractionResult{
		FullText: full,
		Method:   "image-ocr",
		Duration: time.Since(start),
	}

	// Block-level regions, with mean word confidence when the engine reports it.
	boxes, boxErr := c.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if boxErr == nil && len(boxes) > 0 {
		var confSum float64
		var confCount int
		for _, b := range boxes {
			region := strings.TrimSpace(b.Word)
			if region != "" {
				res.PerRegionText = append(res.PerRegionText, region)
			}
			if b.Confidence > 0 {
				confSum += b.Confidence
				confCount++
			}
		}
		if confCount > 0 {
			res.Confidence = confSum / float64(confCount) / 100.0
		}
	}
	if res.Confidence == 0 {
		res.Confidence = heuristicConfidence(full)
		res.Warnings = append(res.Warnings, "engine reported no confidences; heuristic estimate used")
	}

	t.log.Debug("ocr.extracted",
		"bytes", len(imageBytes),
		"text_len", len(full),
		"regions", len(res.PerRegionText),
		"confidence", res.Confidence,
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
