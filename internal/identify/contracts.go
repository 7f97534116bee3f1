package identify

// Symbology names a barcode format the decoder should attempt.
type Symbology string

const (
	SymCode128 Symbology = "code128"
	SymEAN13   Symbology = "ean13"
	SymEAN8    Symbology = "ean8"
	SymCode39  Symbology = "code39"
	SymCodabar Symbology = "codabar"
)

// DefaultSymbologies is the fixed fallback order for barcode decoding.
var DefaultSymbologies = []Symbology{SymCode128, SymEAN13, SymEAN8, SymCode39, SymCodabar}

// CodeDecoder decodes machine-readable codes from script images. A decode
// miss is ("", nil); implementations should reserve errors for unreadable
// input, and callers treat even those as "no code found".
type CodeDecoder interface {
	DecodeQR(imageBytes []byte) (string, error)
	DecodeBarcode(imageBytes []byte, symbologies []Symbology) (string, error)
}
