package entity

import (
	"time"

	"github.com/google/uuid"
)

// Examination groups questions and scripts under one school and teacher.
type Examination struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	TeacherID uuid.UUID `json:"teacher_id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// Student is one roster entry within a school. Codes printed on scripts
// (QR payloads, barcodes) resolve against this.
type Student struct {
	ID          uuid.UUID `json:"id"`
	SchoolID    uuid.UUID `json:"school_id"`
	Name        string    `json:"name"`
	StudentCode string    `json:"student_code"`
}
