package identify

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ZXingDecoder implements CodeDecoder on top of the gozxing port of ZXing.
type ZXingDecoder struct{}

func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{}
}

func (d *ZXingDecoder) bitmap(imageBytes []byte) (*gozxing.BinaryBitmap, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("binarize image: %w", err)
	}
	return bmp, nil
}

func (d *ZXingDecoder) DecodeQR(imageBytes []byte) (string, error) {
	bmp, err := d.bitmap(imageBytes)
	if err != nil {
		return "", err
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		// zxing reports NotFoundException for images without a code
		return "", nil
	}
	return result.GetText(), nil
}

func (d *ZXingDecoder) DecodeBarcode(imageBytes []byte, symbologies []Symbology) (string, error) {
	bmp, err := d.bitmap(imageBytes)
	if err != nil {
		return "", err
	}
	for _, sym := range symbologies {
		reader := readerFor(sym)
		if reader == nil {
			continue
		}
		if result, err := reader.Decode(bmp, nil); err == nil {
			return result.GetText(), nil
		}
	}
	return "", nil
}

func readerFor(sym Symbology) gozxing.Reader {
	switch sym {
	case SymCode128:
		return oned.NewCode128Reader()
	case SymEAN13:
		return oned.NewEAN13Reader()
	case SymEAN8:
		return oned.NewEAN8Reader()
	case SymCode39:
		return oned.NewCode39Reader()
	case SymCodabar:
		return oned.NewCodaBarReader()
	default:
		return nil
	}
}
