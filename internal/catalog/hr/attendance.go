package hr

import (
	"business-catalog-api/internal/catalog"
)

func manualEntrySchema() *catalog.Schema {
	return catalog.Entity(Name, "manual_entry",
		catalog.F("employee_uuid", catalog.UUID()),
		catalog.F("device_uuid", catalog.UUID()),
		catalog.F("type", catalog.Enum("manual_entry", "missing_punch", "field_visit")),
		catalog.F("entry_time", catalog.DateTime()),
		catalog.F("exit_time", catalog.DateTime()),
		catalog.F("reason", catalog.String("forgot to punch")),
		catalog.F("area", catalog.String("client site")),
		catalog.F("approval", catalog.Enum("pending", "approved", "rejected")),
	).Require("employee_uuid", "type", "entry_time")
}

func manualEntry() *catalog.Resource {
	s := manualEntrySchema()
	return catalog.NewResource(s, catalog.CRUD).ListBy("employee_uuid").With(catalog.SubRoute{
		Path:     "/hr/v2/manual-entry/by/pagination",
		Method:   "get",
		Summary:  "Get manual entries page by page",
		Query:    catalog.PaginationQuery("orderby"),
		Response: catalog.Paginated(catalog.Ref(s.Key())),
	})
}

func punchLogSchema() *catalog.Schema {
	return catalog.Entity(Name, "punch_log",
		catalog.F("employee_uuid", catalog.UUID()),
		catalog.F("device_list_uuid", catalog.UUID()),
		catalog.F("punch_type", catalog.Enum("face", "fingerprint", "rfid", "password")),
		catalog.F("punch_time", catalog.DateTime()),
	).Require("employee_uuid", "device_list_uuid", "punch_type", "punch_time")
}

func punchLog() *catalog.Resource {
	return catalog.NewResource(punchLogSchema(), catalog.CRUD).ListBy("employee_uuid")
}
