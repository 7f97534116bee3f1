package identify

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
)

// Scope pins a resolution to one school and examination; codes from another
// tenant's roster never match.
type Scope struct {
	SchoolID      uuid.UUID
	ExaminationID uuid.UUID
}

// Resolution is the resolver's decision. Persisting it is the caller's job.
type Resolution struct {
	StudentID uuid.UUID
	Method    constants.IdentificationMethod
}

// Resolver matches a script image to a roster student, machine-readable codes
// first, manual hint last. Decode failures degrade through the fallback chain
// rather than aborting.
type Resolver struct {
	roster  repository.RosterRepository
	decoder CodeDecoder
	log     *slog.Logger
}

func NewResolver(roster repository.RosterRepository, decoder CodeDecoder, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{roster: roster, decoder: decoder, log: log}
}

// Resolve tries, in priority order: QR payload, barcode across the fixed
// symbology order, then the explicit hint. Returns
// common.ErrIdentificationUnresolved when nothing matches; the script must
// then be held and not proceed to grading.
func (r *Resolver) Resolve(ctx context.Context, scope Scope, imageBytes []byte, hint *string) (Resolution, error) {
	if code, err := r.decoder.DecodeQR(imageBytes); err != nil {
		r.log.Debug("resolver.qr.decode_error", "examination_id", scope.ExaminationID, "err", err)
	} else if code != "" {
		if id, err := r.lookup(ctx, scope, code); err == nil {
			r.log.Info("resolver.matched", "method", constants.IdentQR, "student_id", id)
			return Resolution{StudentID: id, Method: constants.IdentQR}, nil
		} else if !errors.Is(err, common.ErrNotFound) {
			return Resolution{}, err
		} else {
			r.log.Debug("resolver.qr.no_roster_match", "examination_id", scope.ExaminationID)
		}
	}

	if code, err := r.decoder.DecodeBarcode(imageBytes, DefaultSymbologies); err != nil {
		r.log.Debug("resolver.barcode.decode_error", "examination_id", scope.ExaminationID, "err", err)
	} else if code != "" {
		if id, err := r.lookup(ctx, scope, code); err == nil {
			r.log.Info("resolver.matched", "method", constants.IdentBarcode, "student_id", id)
			return Resolution{StudentID: id, Method: constants.IdentBarcode}, nil
		} else if !errors.Is(err, common.ErrNotFound) {
			return Resolution{}, err
		} else {
			r.log.Debug("resolver.barcode.no_roster_match", "examination_id", scope.ExaminationID)
		}
	}

	if hint != nil && strings.TrimSpace(*hint) != "" {
		id, err := r.lookup(ctx, scope, *hint)
		if err == nil {
			r.log.Info("resolver.matched", "method", constants.IdentManual, "student_id", id)
			return Resolution{StudentID: id, Method: constants.IdentManual}, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return Resolution{}, err
		}
		r.log.Warn("resolver.hint.no_roster_match", "examination_id", scope.ExaminationID)
	}

	return Resolution{}, common.ErrIdentificationUnresolved
}

func (r *Resolver) lookup(ctx context.Context, scope Scope, code string) (uuid.UUID, error) {
	return r.roster.FindStudent(ctx, scope.SchoolID, scope.ExaminationID, code)
}
