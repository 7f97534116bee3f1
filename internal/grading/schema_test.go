package grading

import "testing"

func TestValidateGradePayload(t *testing.T) {
	schema := BuildGradeJSONSchema(10)

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid minimal", `{"score": 7, "explanation": "covers the key points"}`, false},
		{"valid with flags", `{"score": 0, "explanation": "blank answer", "flags": ["suspected_irregularity"]}`, false},
		{"score above max", `{"score": 11, "explanation": "x"}`, true},
		{"negative score", `{"score": -1, "explanation": "x"}`, true},
		{"missing explanation", `{"score": 5}`, true},
		{"empty explanation", `{"score": 5, "explanation": ""}`, true},
		{"unknown property", `{"score": 5, "explanation": "x", "verdict": "pass"}`, true},
		{"score as string", `{"score": "5", "explanation": "x"}`, true},
		{"not json", `score: 5`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSchemaMaxTracksQuestionMarks(t *testing.T) {
	schema := BuildGradeJSONSchema(2.5)
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"score": 2.5, "explanation": "full marks"}`)); err != nil {
		t.Fatalf("score at max should validate: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"score": 3, "explanation": "x"}`)); err == nil {
		t.Fatal("score above max should fail")
	}
}
