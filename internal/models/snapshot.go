package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// versions are used in URLs and file names
var versionRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._+-]*$`)

// Snapshot is a published, immutable rendering of the catalog
type Snapshot struct {
	ID             string    `json:"id" db:"id" validate:"required,uuid"`
	Version        string    `json:"version" db:"version" validate:"required,max=64"`
	Checksum       string    `json:"checksum" db:"checksum" validate:"required,len=64,hexadecimal"`
	Document       []byte    `json:"-" db:"document"`
	PathCount      int       `json:"path_count" db:"path_count" validate:"gte=0"`
	OperationCount int       `json:"operation_count" db:"operation_count" validate:"gte=0"`
	Notes          string    `json:"notes,omitempty" db:"notes" validate:"max=1000"`
	PublishedBy    string    `json:"published_by,omitempty" db:"published_by" validate:"max=255"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// NewSnapshot creates a snapshot with a generated ID and timestamp
func NewSnapshot(version, checksum string, document []byte) *Snapshot {
	return &Snapshot{
		ID:        uuid.New().String(),
		Version:   strings.TrimSpace(version),
		Checksum:  checksum,
		Document:  document,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate validates the snapshot data
func (s *Snapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if !IsValidVersion(s.Version) {
		return fmt.Errorf("invalid version %q", s.Version)
	}
	if len(s.Document) == 0 {
		return fmt.Errorf("snapshot document is required")
	}
	return nil
}

// CurrentVersion names the live, unpublished document. No snapshot may use it.
const CurrentVersion = "current"

// IsValidVersion reports whether v can be used as a snapshot version
func IsValidVersion(v string) bool {
	return len(v) <= 64 && versionRegex.MatchString(v)
}

// LintRun is the lint report recorded when a snapshot was published
type LintRun struct {
	ID         string    `json:"id" db:"id" validate:"required,uuid"`
	SnapshotID string    `json:"snapshot_id" db:"snapshot_id" validate:"required,uuid"`
	Errors     int       `json:"errors" db:"errors" validate:"gte=0"`
	Warnings   int       `json:"warnings" db:"warnings" validate:"gte=0"`
	Report     []byte    `json:"-" db:"report"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// NewLintRun creates a lint run for a snapshot
func NewLintRun(snapshotID string, errors, warnings int, report []byte) *LintRun {
	return &LintRun{
		ID:         uuid.New().String(),
		SnapshotID: snapshotID,
		Errors:     errors,
		Warnings:   warnings,
		Report:     report,
		CreatedAt:  time.Now().UTC(),
	}
}

// Validate validates the lint run data
func (l *LintRun) Validate() error {
	if err := validate.Struct(l); err != nil {
		return err
	}
	if len(l.Report) == 0 {
		return fmt.Errorf("lint report is required")
	}
	return nil
}
