package hr

import (
	"business-catalog-api/internal/catalog"
)

func employee() *catalog.Resource {
	s := catalog.Entity(Name, "employee",
		catalog.F("name", catalog.String("John Doe")),
		catalog.F("email", catalog.Email("john@example.com")),
		catalog.F("user_uuid", catalog.UUID()),
		catalog.F("workplace_uuid", catalog.UUID()),
		catalog.F("department_uuid", catalog.UUID()),
		catalog.F("sub_department_uuid", catalog.UUID()),
		catalog.F("designation_uuid", catalog.UUID()),
		catalog.F("shift_group_uuid", catalog.UUID()),
		catalog.F("leave_policy_uuid", catalog.UUID()),
		catalog.F("line_manager_uuid", catalog.UUID()),
		catalog.F("hr_manager_uuid", catalog.UUID()),
		catalog.F("employment_type", catalog.Enum("full-time", "part-time", "contractual")),
		catalog.F("start_date", catalog.DateTime()),
		catalog.F("end_date", catalog.DateTime()),
		catalog.F("first_leave_approver", catalog.UUID()),
		catalog.F("second_leave_approver", catalog.UUID()),
		catalog.F("joining_amount", catalog.Number(30000)),
		catalog.F("status", catalog.Boolean(true)),
	).Require("name", "email", "workplace_uuid", "department_uuid", "designation_uuid", "employment_type", "start_date")
	return catalog.NewResource(s, catalog.CRUD).With(
		catalog.SubRoute{
			Path:     "/hr/employee/manual-entry-details/by/{employee_uuid}",
			Method:   "get",
			Summary:  "Get the manual entries of an employee",
			Scope:    manualEntrySchema(),
			Response: catalog.ArrayOf(catalog.Ref(manualEntrySchema().Key())),
		},
		catalog.SubRoute{
			Path:    "/hr/employee-attendance-report/by/{employee_uuid}/{year}/{month}",
			Method:  "get",
			Summary: "Get the monthly attendance report of an employee",
			Scope:   punchLogSchema(),
			Response: catalog.ArrayOf(catalog.Object(nil, map[string]*catalog.Property{
				"punch_date":     catalog.Date(),
				"entry_time":     catalog.DateTime(),
				"exit_time":      catalog.DateTime(),
				"hours_worked":   catalog.Number(8.5),
				"shift_name":     catalog.String("Day"),
				"late_hours":     catalog.Number(0),
				"early_exit":     catalog.Number(0),
				"status":         catalog.Enum("present", "absent", "late", "leave", "holiday", "off_day"),
				"employee_uuid":  catalog.UUID(),
				"employee_name":  catalog.String("John Doe"),
				"leave_category": catalog.String("Sick Leave"),
			})),
		},
	)
}

func employeeAddress() *catalog.Resource {
	s := catalog.Entity(Name, "employee_address",
		catalog.F("employee_uuid", catalog.UUID()),
		catalog.F("index", catalog.Integer(1)),
		catalog.F("address_type", catalog.Enum("present", "permanent")),
		catalog.F("email", catalog.Email("john@example.com")),
		catalog.F("address", catalog.String("House 1, Road 2")),
		catalog.F("thana", catalog.String("Gulshan")),
		catalog.F("district", catalog.String("Dhaka")),
		catalog.F("tel", catalog.String("01700000000")),
		catalog.F("mobile", catalog.String("01700000000")),
	).Require("employee_uuid", "address_type", "address")
	return catalog.NewResource(s, catalog.CRUD).ListBy("employee_uuid")
}

func employeeDocument() *catalog.Resource {
	s := catalog.Entity(Name, "employee_document",
		catalog.F("employee_uuid", catalog.UUID()),
		catalog.F("document_type", catalog.Enum("nid", "passport", "certificate", "other")),
		catalog.F("description", catalog.String("national id card")),
		catalog.F("file", catalog.Binary()),
	).Require("employee_uuid", "document_type")
	return catalog.NewResource(s, catalog.CRUD).Upload().ListBy("employee_uuid")
}

func employeeEducation() *catalog.Resource {
	s := catalog.Entity(Name, "employee_education",
		catalog.F("employee_uuid", catalog.UUID()),
		catalog.F("index", catalog.Integer(1)),
		catalog.F("degree_name", catalog.String("BSc in CSE")),
		catalog.F("institute", catalog.String("University of Dhaka")),
		catalog.F("board", catalog.String("Dhaka")),
		catalog.F("year_of_passing", catalog.Integer(2018)),
		catalog.F("grade", catalog.String("3.75")),
	).Require("employee_uuid", "degree_name", "institute")
	return catalog.NewResource(s, catalog.CRUD).ListBy("employee_uuid")
}
