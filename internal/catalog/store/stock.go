package store

import (
	"business-catalog-api/internal/catalog"
)

// stock rows are created by purchases and adjusted by transfers, never deleted
func stock() *catalog.Resource {
	s := catalog.Entity(Name, "stock",
		catalog.F("product_uuid", catalog.UUID()),
		catalog.F("warehouse_uuid", catalog.UUID()),
		catalog.F("quantity", catalog.Integer(25)),
	).Require("product_uuid", "warehouse_uuid", "quantity")
	return catalog.NewResource(s, catalog.NoDelete).ListBy("product_uuid")
}

func internalTransfer() *catalog.Resource {
	s := catalog.Entity(Name, "internal_transfer",
		catalog.F("stock_uuid", catalog.UUID()),
		catalog.F("from_branch_uuid", catalog.UUID()),
		catalog.F("to_branch_uuid", catalog.UUID()),
		catalog.F("from_warehouse_uuid", catalog.UUID()),
		catalog.F("to_warehouse_uuid", catalog.UUID()),
		catalog.F("rack_uuid", catalog.UUID()),
		catalog.F("floor_uuid", catalog.UUID()),
		catalog.F("box_uuid", catalog.UUID()),
		catalog.F("quantity", catalog.Integer(5)),
	).Require("stock_uuid", "from_branch_uuid", "to_branch_uuid", "from_warehouse_uuid", "to_warehouse_uuid", "quantity")
	return catalog.NewResource(s, catalog.CRUD)
}
