package hr

import (
	"business-catalog-api/internal/catalog"
)

func leaveCategory() *catalog.Resource {
	s := catalog.Entity(Name, "leave_category",
		catalog.F("name", catalog.String("Sick Leave")),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func leavePolicy() *catalog.Resource {
	s := catalog.Entity(Name, "leave_policy",
		catalog.F("name", catalog.String("Default Policy")),
		catalog.F("is_default", catalog.Boolean(true)),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func configurationSchema() *catalog.Schema {
	return catalog.Entity(Name, "configuration",
		catalog.F("leave_policy_uuid", catalog.UUID()),
	).Require("leave_policy_uuid")
}

func configurationEntrySchema() *catalog.Schema {
	return catalog.Entity(Name, "configuration_entry",
		catalog.F("configuration_uuid", catalog.UUID()),
		catalog.F("leave_category_uuid", catalog.UUID()),
		catalog.F("number_of_leaves_to_provide_file", catalog.Integer(3)),
		catalog.F("maximum_number_of_allowed_leaves", catalog.Integer(14)),
		catalog.F("leave_carry_type", catalog.Enum("none", "fixed_amount", "percentage")),
		catalog.F("consecutive_days", catalog.Integer(3)),
		catalog.F("maximum_number_of_leaves_to_carry", catalog.Integer(5)),
		catalog.F("count_off_days_as_leaves", catalog.Boolean(false)),
		catalog.F("enable_previous_day_selection", catalog.Boolean(false)),
		catalog.F("maximum_number_of_leave_per_month", catalog.Integer(2)),
		catalog.F("previous_date_selected_limit", catalog.Integer(0)),
		catalog.F("applicability", catalog.Enum("both", "male", "female")),
		catalog.F("eligible_after_joining", catalog.Integer(90)),
		catalog.F("enable_pro_rata", catalog.Boolean(false)),
		catalog.F("max_avail_time", catalog.Integer(1)),
		catalog.F("enable_earned_leave", catalog.Boolean(false)),
	).Require("configuration_uuid", "leave_category_uuid")
}

// configuration binds a leave policy to its per-category entries
func configuration() *catalog.Resource {
	s := configurationSchema()
	entry := configurationEntrySchema()
	return catalog.NewResource(s, catalog.CRUD).With(catalog.SubRoute{
		Path:     "/hr/configuration/details/by/{configuration_uuid}",
		Method:   "get",
		Summary:  "Get configuration details with its entries",
		Scope:    entry,
		Response: catalog.Nested(s, "configuration_entry", entry),
	})
}

func configurationEntry() *catalog.Resource {
	return catalog.NewResource(configurationEntrySchema(), catalog.CRUD).ListBy("configuration_uuid")
}

func applyLeave() *catalog.Resource {
	s := catalog.Entity(Name, "apply_leave",
		catalog.F("leave_category_uuid", catalog.UUID()),
		catalog.F("employee_uuid", catalog.UUID()),
		catalog.F("year", catalog.Integer(2024)),
		catalog.F("type", catalog.Enum("full", "half")),
		catalog.F("from_date", catalog.DateTime()),
		catalog.F("to_date", catalog.DateTime()),
		catalog.F("reason", catalog.String("fever")),
		catalog.F("file", catalog.Binary()),
		catalog.F("approval", catalog.Enum("pending", "approved", "rejected")),
	).Require("leave_category_uuid", "employee_uuid", "from_date", "to_date")
	r := catalog.NewResource(s, catalog.CRUD).Upload()
	return r.With(catalog.SubRoute{
		Path:     "/hr/v2/apply-leave/by/pagination",
		Method:   "get",
		Summary:  "Get leave applications page by page",
		Query:    catalog.PaginationQuery("orderBy"),
		Response: catalog.Paginated(catalog.Ref(s.Key())),
	})
}
