package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturedAnnouncementsCap(t *testing.T) {
	all := []Announcement{
		{ID: "1", Featured: true},
		{ID: "2"},
		{ID: "3", Featured: true},
		{ID: "4", Featured: true},
	}
	featured := FeaturedAnnouncements(all)
	assert.Len(t, featured, FeaturedLimit)
	assert.Equal(t, RecordID("1"), featured[0].ID)
	assert.Equal(t, RecordID("3"), featured[1].ID)
}

func TestPartitionStaff(t *testing.T) {
	all := []StaffMember{
		{ID: "1", Role: RoleLeadership},
		{ID: "2", Role: RoleProgramStaff},
		{ID: "3", Role: RoleLeadership},
	}
	leadership, programStaff := PartitionStaff(all)
	assert.Len(t, leadership, 2)
	assert.Len(t, programStaff, 1)
	assert.Equal(t, RecordID("2"), programStaff[0].ID)
}

func TestStaffMemberNormalize(t *testing.T) {
	department := "Skills Training"
	m := StaffMember{Role: RoleLeadership, Department: &department}
	m.Normalize()
	assert.Nil(t, m.Department)

	m = StaffMember{Role: RoleProgramStaff, Department: &department}
	m.Normalize()
	assert.NotNil(t, m.Department)
}

func TestProgramImageBasename(t *testing.T) {
	p := Program{Name: "Mentorship Program"}
	assert.Equal(t, "Mentorship_Program", p.ImageBasename())
}

func TestImageCategoryValid(t *testing.T) {
	assert.True(t, CategoryHero.Valid())
	assert.True(t, CategoryUploads.Valid())
	assert.False(t, ImageCategory("banner").Valid())
}
