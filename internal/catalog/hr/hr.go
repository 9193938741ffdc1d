// Package hr documents the human resources endpoints: users, organisation
// structure, employees, leave and attendance.
package hr

import (
	"business-catalog-api/internal/catalog"
)

// Name is the domain name and URL prefix
const Name = "hr"

// Domain returns the hr catalog
func Domain() *catalog.Domain {
	return &catalog.Domain{
		Name:        Name,
		Description: "Human resources",
		Resources: []*catalog.Resource{
			user(),
			department(),
			subDepartment(),
			designation(),
			workplace(),
			shift(),
			shiftGroup(),
			leaveCategory(),
			leavePolicy(),
			configuration(),
			configurationEntry(),
			employee(),
			employeeAddress(),
			employeeDocument(),
			employeeEducation(),
			applyLeave(),
			manualEntry(),
			deviceList(),
			punchLog(),
			generalHoliday(),
			specialHoliday(),
		},
	}
}

// Paths returns the merged hr paths (pathHr)
func Paths(opts catalog.Options) (catalog.Paths, error) {
	return Domain().Paths(opts)
}

// Schemas returns the hr component schemas
func Schemas() (map[string]*catalog.Property, error) {
	return Domain().Schemas()
}
