package domain

import "github.com/google/uuid"

// ImportRecord is one externally supplied youth profile row. The webhook
// accepts csv/excel/json declarations but the validated shape is uniform.
type ImportRecord struct {
	FullName      string  `json:"full_name" validate:"required,max=150"`
	Birthdate     string  `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	CivilStatus   string  `json:"civil_status" validate:"required,oneof=single married widowed separated live-in"`
	ContactNumber *string `json:"contact_number,omitempty" validate:"omitempty,max=13"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Barangay      string  `json:"barangay" validate:"required,max=100"`
	Purok         *string `json:"purok,omitempty" validate:"omitempty,max=100"`

	FatherName    *string  `json:"father_name,omitempty" validate:"omitempty,max=150"`
	MotherName    *string  `json:"mother_name,omitempty" validate:"omitempty,max=150"`
	HouseholdSize *int     `json:"household_size,omitempty" validate:"omitempty,min=1"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty" validate:"omitempty,min=0"`

	EducationAttainment     string `json:"education_attainment" validate:"omitempty,oneof=elementary high-school senior-high vocational college postgraduate out-of-school"`
	WorkStatus              string `json:"work_status" validate:"omitempty,oneof=employed unemployed self-employed student"`
	RegisteredSKVoter       bool   `json:"registered_sk_voter"`
	RegisteredNationalVoter bool   `json:"registered_national_voter"`
	AttendedAssembly        bool   `json:"attended_assembly"`
}

// ImportRequest validation covers the envelope only. Individual records
// carry their own tags and are checked one by one during the batch run,
// where a failure increments the error counter instead of rejecting the
// request.
type ImportRequest struct {
	Format  string         `json:"format" validate:"required,oneof=csv excel json"`
	Records []ImportRecord `json:"records" validate:"required,min=1"`
}

// ImportProgress is the ephemeral cache-backed tally of one in-flight batch,
// keyed by the importing user. processed <= total holds at every point.
type ImportProgress struct {
	UserID     uuid.UUID `json:"user_id"`
	Total      int64     `json:"total"`
	Processed  int64     `json:"processed"`
	Duplicates int64     `json:"duplicates"`
	Errors     int64     `json:"errors"`
}
