package constants

// IdentificationMethod records how a script was matched to a student.
type IdentificationMethod string

const (
	IdentQR      IdentificationMethod = "qr"
	IdentBarcode IdentificationMethod = "barcode"
	IdentManual  IdentificationMethod = "manual"
)

var IdentificationMethods = []string{
	string(IdentQR),
	string(IdentBarcode),
	string(IdentManual),
}

// SegmentationMethod records how an answer fragment was produced.
type SegmentationMethod string

const (
	SegmentationBasic SegmentationMethod = "basic"
	SegmentationML    SegmentationMethod = "ml"
)

var SegmentationMethods = []string{
	string(SegmentationBasic),
	string(SegmentationML),
}

// ModelAnswerSource records where a question's model answer came from.
type ModelAnswerSource string

const (
	ModelAnswerUploaded    ModelAnswerSource = "uploaded"
	ModelAnswerAIGenerated ModelAnswerSource = "ai_generated"
)

var ModelAnswerSources = []string{
	string(ModelAnswerUploaded),
	string(ModelAnswerAIGenerated),
}
