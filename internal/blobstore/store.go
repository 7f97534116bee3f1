package blobstore

import (
	"context"
	"crypto/sha256"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

// Store is the blob collaborator: opaque bytes addressed by path.
type Store interface {
	Get(ctx context.Context, p string) ([]byte, error)
	Put(ctx context.Context, p string, data []byte) (string, error)
	Delete(ctx context.Context, p string) error
}

// ScriptPath builds the storage path for an uploaded script:
// {teacherId}/{studentId}/{examinationId}/{timestamp}_{filename}.
// Scripts uploaded before identification use "unassigned" for the student slot.
func ScriptPath(teacherID uuid.UUID, studentID *uuid.UUID, examinationID uuid.UUID, uploadedAt time.Time, filename string) string {
	studentSlot := "unassigned"
	if studentID != nil && *studentID != uuid.Nil {
		studentSlot = studentID.String()
	}
	return path.Join(
		teacherID.String(),
		studentSlot,
		examinationID.String(),
		fmt.Sprintf("%d_%s", uploadedAt.UTC().UnixMilli(), path.Base(filename)),
	)
}

// ContentHash returns the sha256 digest used for upload deduplication.
func ContentHash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}
