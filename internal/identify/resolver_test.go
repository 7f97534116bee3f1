package identify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

type fakeDecoder struct {
	qr         string
	qrErr      error
	barcode    string
	barcodeErr error
}

func (d *fakeDecoder) DecodeQR(_ []byte) (string, error) { return d.qr, d.qrErr }
func (d *fakeDecoder) DecodeBarcode(_ []byte, _ []Symbology) (string, error) {
	return d.barcode, d.barcodeErr
}

type fakeRoster struct {
	codes map[string]uuid.UUID
	err   error
}

func (r *fakeRoster) FindStudent(_ context.Context, _, _ uuid.UUID, code string) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	if id, ok := r.codes[code]; ok {
		return id, nil
	}
	return uuid.Nil, common.ErrNotFound
}

func (r *fakeRoster) GetStudent(_ context.Context, id uuid.UUID) (*entity.Student, error) {
	return &entity.Student{ID: id}, nil
}

func sptr(s string) *string { return &s }

func TestResolvePriorityOrder(t *testing.T) {
	qrStudent := uuid.New()
	barStudent := uuid.New()
	hintStudent := uuid.New()
	roster := &fakeRoster{codes: map[string]uuid.UUID{
		"QR-1":   qrStudent,
		"BAR-1":  barStudent,
		"HINT-1": hintStudent,
	}}

	tests := []struct {
		name       string
		decoder    *fakeDecoder
		hint       *string
		wantID     uuid.UUID
		wantMethod constants.IdentificationMethod
	}{
		{
			name:       "qr wins over barcode and hint",
			decoder:    &fakeDecoder{qr: "QR-1", barcode: "BAR-1"},
			hint:       sptr("HINT-1"),
			wantID:     qrStudent,
			wantMethod: constants.IdentQR,
		},
		{
			name:       "barcode wins over hint",
			decoder:    &fakeDecoder{barcode: "BAR-1"},
			hint:       sptr("HINT-1"),
			wantID:     barStudent,
			wantMethod: constants.IdentBarcode,
		},
		{
			name:       "hint as last resort",
			decoder:    &fakeDecoder{},
			hint:       sptr("HINT-1"),
			wantID:     hintStudent,
			wantMethod: constants.IdentManual,
		},
		{
			name:       "unmatched qr falls through to barcode",
			decoder:    &fakeDecoder{qr: "UNKNOWN", barcode: "BAR-1"},
			wantID:     barStudent,
			wantMethod: constants.IdentBarcode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(roster, tt.decoder, nil)
			got, err := r.Resolve(context.Background(), Scope{}, []byte("img"), tt.hint)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got.StudentID != tt.wantID {
				t.Errorf("StudentID = %v, want %v", got.StudentID, tt.wantID)
			}
			if got.Method != tt.wantMethod {
				t.Errorf("Method = %v, want %v", got.Method, tt.wantMethod)
			}
		})
	}
}

func TestResolveUnresolved(t *testing.T) {
	r := NewResolver(&fakeRoster{}, &fakeDecoder{}, nil)
	_, err := r.Resolve(context.Background(), Scope{}, []byte("img"), nil)
	if !errors.Is(err, common.ErrIdentificationUnresolved) {
		t.Fatalf("err = %v, want ErrIdentificationUnresolved", err)
	}

	// unmatched hint is still unresolved, not a hard failure
	_, err = r.Resolve(context.Background(), Scope{}, []byte("img"), sptr("NOBODY"))
	if !errors.Is(err, common.ErrIdentificationUnresolved) {
		t.Fatalf("err = %v, want ErrIdentificationUnresolved", err)
	}
}

func TestResolveDecodeErrorsDegrade(t *testing.T) {
	student := uuid.New()
	roster := &fakeRoster{codes: map[string]uuid.UUID{"HINT-1": student}}
	decoder := &fakeDecoder{
		qrErr:      errors.New("corrupt image"),
		barcodeErr: errors.New("corrupt image"),
	}

	r := NewResolver(roster, decoder, nil)
	got, err := r.Resolve(context.Background(), Scope{}, []byte("img"), sptr("HINT-1"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Method != constants.IdentManual {
		t.Errorf("Method = %v, want manual", got.Method)
	}
	if got.StudentID != student {
		t.Errorf("StudentID = %v, want %v", got.StudentID, student)
	}
}

func TestResolveIdempotent(t *testing.T) {
	student := uuid.New()
	roster := &fakeRoster{codes: map[string]uuid.UUID{"QR-1": student}}
	r := NewResolver(roster, &fakeDecoder{qr: "QR-1"}, nil)

	first, err := r.Resolve(context.Background(), Scope{}, []byte("img"), nil)
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := r.Resolve(context.Background(), Scope{}, []byte("img"), nil)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if first != second {
		t.Fatalf("resolutions differ: %+v vs %+v", first, second)
	}
}

func TestResolveRosterErrorPropagates(t *testing.T) {
	dbErr := errors.New("connection reset")
	r := NewResolver(&fakeRoster{err: dbErr}, &fakeDecoder{qr: "QR-1"}, nil)
	_, err := r.Resolve(context.Background(), Scope{}, []byte("img"), nil)
	if !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want roster error", err)
	}
}
