package models

// StaffRole partitions the team on the public pages.
type StaffRole string

const (
	RoleLeadership   StaffRole = "leadership"
	RoleProgramStaff StaffRole = "program_staff"
)

// Valid reports whether the role is one of the two known values.
func (r StaffRole) Valid() bool {
	return r == RoleLeadership || r == RoleProgramStaff
}

// StaffMember represents a team member profile.
type StaffMember struct {
	ID          RecordID  `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Title       string    `db:"title" json:"title"`
	Bio         string    `db:"bio" json:"bio"`
	Role        StaffRole `db:"role" json:"role"`
	Email       string    `db:"email" json:"email"`
	LinkedInURL string    `db:"linkedin_url" json:"linkedin_url"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	// Department is only meaningful for program staff; leadership
	// profiles carry none.
	Department *string `db:"department" json:"department,omitempty"`
}

// Normalize enforces the role/department invariant: a department is kept
// only for program staff and always dropped for leadership.
func (m *StaffMember) Normalize() {
	if m.Role != RoleProgramStaff {
		m.Department = nil
	}
}

// StaffForm carries the admin add/edit form fields.
type StaffForm struct {
	Name        string `form:"name" validate:"required"`
	Title       string `form:"title" validate:"required"`
	Bio         string `form:"bio"`
	Role        string `form:"role" validate:"required,oneof=leadership program_staff"`
	Email       string `form:"email" validate:"omitempty,email"`
	LinkedInURL string `form:"linkedin_url" validate:"omitempty,url"`
	Department  string `form:"department"`
}

// PartitionStaff splits the full list into leadership and program staff
// subsets, preserving order.
func PartitionStaff(all []StaffMember) (leadership, programStaff []StaffMember) {
	for _, m := range all {
		switch m.Role {
		case RoleLeadership:
			leadership = append(leadership, m)
		case RoleProgramStaff:
			programStaff = append(programStaff, m)
		}
	}
	return leadership, programStaff
}
