package hr

import (
	"business-catalog-api/internal/catalog"
)

func department() *catalog.Resource {
	s := catalog.Entity(Name, "department",
		catalog.F("department", catalog.String("Accounts")),
	).Require("department")
	return catalog.NewResource(s, catalog.CRUD)
}

func subDepartment() *catalog.Resource {
	s := catalog.Entity(Name, "sub_department",
		catalog.F("name", catalog.String("Payroll")),
		catalog.F("hierarchy", catalog.Integer(1)),
		catalog.F("status", catalog.Boolean(true)),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func designation() *catalog.Resource {
	s := catalog.Entity(Name, "designation",
		catalog.F("designation", catalog.String("Software Engineer")),
	).Require("designation")
	return catalog.NewResource(s, catalog.CRUD)
}

func workplace() *catalog.Resource {
	s := catalog.Entity(Name, "workplace",
		catalog.F("name", catalog.String("Dhaka Office")),
		catalog.F("hierarchy", catalog.Integer(1)),
		catalog.F("status", catalog.Boolean(true)),
		catalog.F("latitude", catalog.Number(23.8103)),
		catalog.F("longitude", catalog.Number(90.4125)),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func shift() *catalog.Resource {
	s := catalog.Entity(Name, "shift",
		catalog.F("name", catalog.String("Day")),
		catalog.F("start_time", catalog.DateTime()),
		catalog.F("end_time", catalog.DateTime()),
		catalog.F("late_time", catalog.DateTime()),
		catalog.F("early_exit_before", catalog.DateTime()),
		catalog.F("first_half_end", catalog.DateTime()),
		catalog.F("break_time_start", catalog.DateTime()),
		catalog.F("break_time_end", catalog.DateTime()),
		catalog.F("default_shift", catalog.Boolean(false)),
		catalog.F("color", catalog.String("#FF0000")),
		catalog.F("status", catalog.Boolean(true)),
	).Require("name", "start_time", "end_time")
	return catalog.NewResource(s, catalog.CRUD)
}

func shiftGroup() *catalog.Resource {
	s := catalog.Entity(Name, "shift_group",
		catalog.F("name", catalog.String("General")),
		catalog.F("default_shift", catalog.Boolean(true)),
		catalog.F("status", catalog.Boolean(true)),
		catalog.F("off_days", catalog.StringArray("friday", "saturday")),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func deviceListSchema() *catalog.Schema {
	return catalog.Entity(Name, "device_list",
		catalog.F("name", catalog.String("Main Gate")),
		catalog.F("identifier", catalog.String("ZK-01")),
		catalog.F("location", catalog.String("Ground floor")),
		catalog.F("model", catalog.String("ZKTeco F18")),
		catalog.F("phone_number", catalog.String("01700000000")),
		catalog.F("description", catalog.String("entrance reader")),
	).Require("name", "identifier")
}

func deviceList() *catalog.Resource {
	return catalog.NewResource(deviceListSchema(), catalog.CRUD).Labeled("Device")
}

func generalHoliday() *catalog.Resource {
	s := catalog.Entity(Name, "general_holiday",
		catalog.F("name", catalog.String("Victory Day")),
		catalog.F("date", catalog.DateTime()),
	).Require("name", "date")
	return catalog.NewResource(s, catalog.CRUD)
}

func specialHoliday() *catalog.Resource {
	s := catalog.Entity(Name, "special_holiday",
		catalog.F("name", catalog.String("Eid Vacation")),
		catalog.F("workplace_uuid", catalog.UUID()),
		catalog.F("employee_type", catalog.Enum("full-time", "part-time", "contractual")),
		catalog.F("from_date", catalog.DateTime()),
		catalog.F("to_date", catalog.DateTime()),
	).Require("name", "from_date", "to_date")
	return catalog.NewResource(s, catalog.CRUD)
}
