package store

import (
	"business-catalog-api/internal/catalog"
)

func purchaseSchema() *catalog.Schema {
	return catalog.Entity(Name, "purchase",
		catalog.F("vendor_uuid", catalog.UUID()),
		catalog.F("branch_uuid", catalog.UUID()),
		catalog.F("date", catalog.DateTime()),
		catalog.F("payment_mode", catalog.Enum("cash", "bank", "mfs", "company", "ait", "due")),
		catalog.F("is_local", catalog.Boolean(true)),
		catalog.F("lc_number", catalog.String("LC-1234")),
	).Require("vendor_uuid", "branch_uuid", "date", "payment_mode")
}

func purchaseEntrySchema() *catalog.Schema {
	return catalog.Entity(Name, "purchase_entry",
		catalog.F("purchase_uuid", catalog.UUID()),
		catalog.F("product_uuid", catalog.UUID()),
		catalog.F("serial_no", catalog.String("SN-0001")),
		catalog.F("quantity", catalog.Integer(10)),
		catalog.F("price_per_unit", catalog.Number(1500.5)),
		catalog.F("discount", catalog.Number(0)),
		catalog.F("warehouse_uuid", catalog.UUID()),
		catalog.F("rack_uuid", catalog.UUID()),
		catalog.F("floor_uuid", catalog.UUID()),
		catalog.F("box_uuid", catalog.UUID()),
	).Require("purchase_uuid", "product_uuid", "quantity", "price_per_unit", "warehouse_uuid")
}

func purchase() *catalog.Resource {
	s := purchaseSchema()
	entry := purchaseEntrySchema()
	r := catalog.NewResource(s, catalog.CRUD)
	return r.With(catalog.SubRoute{
		Path:     "/store/purchase/details/by/{purchase_uuid}",
		Method:   "get",
		Summary:  "Get purchase details with its entries",
		Scope:    entry,
		Response: catalog.Nested(s, "purchase_entry", entry),
	})
}

func purchaseEntry() *catalog.Resource {
	return catalog.NewResource(purchaseEntrySchema(), catalog.CRUD).ListBy("purchase_uuid")
}

func purchaseReturn() *catalog.Resource {
	s := catalog.Entity(Name, "purchase_return",
		catalog.F("purchase_entry_uuid", catalog.UUID()),
		catalog.F("warehouse_uuid", catalog.UUID()),
		catalog.F("quantity", catalog.Integer(1)),
		catalog.F("price_per_unit", catalog.Number(1500.5)),
		catalog.F("reason", catalog.String("damaged on arrival")),
	).Require("purchase_entry_uuid", "warehouse_uuid", "quantity")
	return catalog.NewResource(s, catalog.CRUD)
}
