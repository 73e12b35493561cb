// file: internals/features/academics/advisors/model/advisor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AdvisorModel: akun advisor. Password di-hash bcrypt saat admin membuat akun;
// penerbitan token login ada di identity service terpisah.
type AdvisorModel struct {
	AdvisorID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:advisor_id" json:"advisor_id"`
	AdvisorEmail string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_advisors_email;column:advisor_email" json:"advisor_email"`

	AdvisorFirstName string `gorm:"type:varchar(80);not null;column:advisor_first_name" json:"advisor_first_name"`
	AdvisorLastName  string `gorm:"type:varchar(80);not null;column:advisor_last_name" json:"advisor_last_name"`

	AdvisorPasswordHash string `gorm:"type:varchar(100);not null;column:advisor_password_hash" json:"-"`
	AdvisorIsActive     bool   `gorm:"not null;default:true;column:advisor_is_active" json:"advisor_is_active"`

	AdvisorCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:advisor_created_at" json:"advisor_created_at"`
	AdvisorUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:advisor_updated_at" json:"advisor_updated_at"`
	AdvisorDeletedAt gorm.DeletedAt `gorm:"column:advisor_deleted_at;index" json:"advisor_deleted_at,omitempty"`
}

func (AdvisorModel) TableName() string { return "advisors" }

// AdvisoryAssignmentModel: cakupan advisor per (year level, section).
// Strands kosong berarti semua strand di section itu.
type AdvisoryAssignmentModel struct {
	AdvisoryAssignmentID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:advisory_assignment_id" json:"advisory_assignment_id"`
	AdvisoryAssignmentAdvisorID uuid.UUID `gorm:"type:uuid;not null;column:advisory_assignment_advisor_id;uniqueIndex:uq_advisory_assignments_scope" json:"advisory_assignment_advisor_id"`

	AdvisoryAssignmentYearLevel int16          `gorm:"not null;column:advisory_assignment_year_level;uniqueIndex:uq_advisory_assignments_scope" json:"advisory_assignment_year_level"`
	AdvisoryAssignmentSection   string         `gorm:"type:varchar(60);not null;column:advisory_assignment_section;uniqueIndex:uq_advisory_assignments_scope" json:"advisory_assignment_section"`
	AdvisoryAssignmentStrands   pq.StringArray `gorm:"type:text[];column:advisory_assignment_strands" json:"advisory_assignment_strands,omitempty"`

	AdvisoryAssignmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:advisory_assignment_created_at" json:"advisory_assignment_created_at"`
	AdvisoryAssignmentDeletedAt gorm.DeletedAt `gorm:"column:advisory_assignment_deleted_at;index" json:"advisory_assignment_deleted_at,omitempty"`
}

func (AdvisoryAssignmentModel) TableName() string { return "advisory_assignments" }
