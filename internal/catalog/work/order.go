package work

import (
	"business-catalog-api/internal/catalog"
)

// info is the intake ticket a customer's orders hang off
func info() *catalog.Resource {
	s := catalog.Entity(Name, "info",
		catalog.F("user_uuid", catalog.UUID()),
		catalog.F("received_date", catalog.DateTime()),
		catalog.F("is_product_received", catalog.Boolean(true)),
		catalog.F("zone_uuid", catalog.UUID()),
		catalog.F("location", catalog.String("Mirpur 10")),
		catalog.F("submitted_by", catalog.Enum("customer", "employee")),
		catalog.F("branch_uuid", catalog.UUID()),
		catalog.F("is_contact_with_customer", catalog.Boolean(true)),
	).Require("user_uuid")
	return catalog.NewResource(s, catalog.CRUD)
}

func orderSchema() *catalog.Schema {
	return catalog.Entity(Name, "order",
		catalog.F("info_uuid", catalog.UUID()),
		catalog.F("model_uuid", catalog.UUID()),
		catalog.F("size_uuid", catalog.UUID()),
		catalog.F("serial_no", catalog.String("SN-0001")),
		catalog.F("problems_uuid", catalog.UUIDArray()),
		catalog.F("problem_statement", catalog.String("does not power on")),
		catalog.F("accessories", catalog.UUIDArray()),
		catalog.F("is_product_received", catalog.Boolean(true)),
		catalog.F("is_diagnosis_need", catalog.Boolean(true)),
		catalog.F("quantity", catalog.Integer(1)),
		catalog.F("warehouse_uuid", catalog.UUID()),
		catalog.F("rack_uuid", catalog.UUID()),
		catalog.F("floor_uuid", catalog.UUID()),
		catalog.F("box_uuid", catalog.UUID()),
		catalog.F("is_transferred_for_qc", catalog.Boolean(false)),
		catalog.F("is_ready_for_delivery", catalog.Boolean(false)),
		catalog.F("is_proceed_to_repair", catalog.Boolean(false)),
		catalog.F("is_delivery_complete", catalog.Boolean(false)),
	).Require("info_uuid", "model_uuid", "problem_statement")
}

func order() *catalog.Resource {
	return catalog.NewResource(orderSchema(), catalog.CRUD).ListBy("info_uuid")
}

func diagnosis() *catalog.Resource {
	s := catalog.Entity(Name, "diagnosis",
		catalog.F("order_uuid", catalog.UUID()),
		catalog.F("engineer_uuid", catalog.UUID()),
		catalog.F("problems_uuid", catalog.UUIDArray()),
		catalog.F("problem_statement", catalog.String("faulty power ic")),
		catalog.F("status", catalog.Enum("pending", "rejected", "accepted", "not_repairable")),
		catalog.F("status_update_date", catalog.DateTime()),
		catalog.F("proposed_cost", catalog.Number(2500)),
		catalog.F("is_proceed_to_repair", catalog.Boolean(false)),
		catalog.F("customer_problem_statement", catalog.String("does not power on")),
		catalog.F("customer_remarks", catalog.String("please call before repair")),
	).Require("order_uuid")
	return catalog.NewResource(s, catalog.CRUD).ListBy("order_uuid")
}

func process() *catalog.Resource {
	s := catalog.Entity(Name, "process",
		catalog.F("section_uuid", catalog.UUID()),
		catalog.F("order_uuid", catalog.UUID()),
		catalog.F("diagnosis_uuid", catalog.UUID()),
		catalog.F("engineer_uuid", catalog.UUID()),
		catalog.F("index", catalog.Integer(1)),
		catalog.F("problems_uuid", catalog.UUIDArray()),
		catalog.F("problem_statement", catalog.String("replace power ic")),
		catalog.F("status", catalog.Boolean(false)),
		catalog.F("status_update_date", catalog.DateTime()),
		catalog.F("is_transferred_for_qc", catalog.Boolean(false)),
		catalog.F("is_ready_for_delivery", catalog.Boolean(false)),
		catalog.F("warehouse_uuid", catalog.UUID()),
		catalog.F("rack_uuid", catalog.UUID()),
		catalog.F("floor_uuid", catalog.UUID()),
		catalog.F("box_uuid", catalog.UUID()),
		catalog.F("process_ids", catalog.StringArray("1", "2")),
	).Require("section_uuid", "order_uuid", "index")
	return catalog.NewResource(s, catalog.CRUD).ListBy("order_uuid")
}
