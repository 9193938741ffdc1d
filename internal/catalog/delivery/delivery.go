// Package delivery documents vehicles, couriers, cartons, challans and
// packing lists.
package delivery

import (
	"business-catalog-api/internal/catalog"
)

// Name is the domain name and URL prefix
const Name = "delivery"

// Domain returns the delivery catalog. Like store, its POST blocks were
// published with the nested responses wrapper.
func Domain() *catalog.Domain {
	return &catalog.Domain{
		Name:         Name,
		Description:  "Delivery and dispatch",
		LegacyCreate: true,
		Resources: []*catalog.Resource{
			vehicle(),
			courier(),
			carton(),
			challan(),
			challanEntry(),
			packingList(),
			packingListEntry(),
		},
	}
}

// Paths returns the merged delivery paths (pathDelivery)
func Paths(opts catalog.Options) (catalog.Paths, error) {
	return Domain().Paths(opts)
}

// Schemas returns the delivery component schemas
func Schemas() (map[string]*catalog.Property, error) {
	return Domain().Schemas()
}

func vehicle() *catalog.Resource {
	s := catalog.Entity(Name, "vehicle",
		catalog.F("name", catalog.String("Pickup 1")),
		catalog.F("no", catalog.String("DHAKA-METRO-NA-11-1234")),
		catalog.F("driver_name", catalog.String("Karim")),
		catalog.F("active", catalog.Boolean(true)),
	).Require("name", "no")
	return catalog.NewResource(s, catalog.CRUD)
}

func courier() *catalog.Resource {
	s := catalog.Entity(Name, "courier",
		catalog.F("name", catalog.String("Sundarban Courier")),
		catalog.F("branch", catalog.String("Motijheel")),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func carton() *catalog.Resource {
	s := catalog.Entity(Name, "carton",
		catalog.F("name", catalog.String("Medium")),
		catalog.F("size", catalog.String("40x30x20 cm")),
		catalog.F("used_for", catalog.Enum("full_order", "replace", "accessory")),
		catalog.F("active", catalog.Boolean(true)),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func challanSchema() *catalog.Schema {
	return catalog.Entity(Name, "challan",
		catalog.F("customer_uuid", catalog.UUID()),
		catalog.F("challan_type", catalog.Enum("customer_pickup", "employee_delivery", "courier_delivery", "vehicle_delivery")),
		catalog.F("employee_uuid", catalog.UUID()),
		catalog.F("vehicle_uuid", catalog.UUID()),
		catalog.F("courier_uuid", catalog.UUID()),
		catalog.F("is_delivery_complete", catalog.Boolean(false)),
		catalog.F("payment_method", catalog.Enum("cash", "due")),
		catalog.F("delivery_date", catalog.DateTime()),
	).Require("customer_uuid", "challan_type")
}

func challanEntrySchema() *catalog.Schema {
	return catalog.Entity(Name, "challan_entry",
		catalog.F("challan_uuid", catalog.UUID()),
		catalog.F("packing_list_uuid", catalog.UUID()),
	).Require("challan_uuid", "packing_list_uuid")
}

func challan() *catalog.Resource {
	s := challanSchema()
	entry := challanEntrySchema()
	return catalog.NewResource(s, catalog.CRUD).With(catalog.SubRoute{
		Path:     "/delivery/challan/details/by/{challan_uuid}",
		Method:   "get",
		Summary:  "Get challan details with its entries",
		Scope:    entry,
		Response: catalog.Nested(s, "challan_entry", entry),
	})
}

func challanEntry() *catalog.Resource {
	return catalog.NewResource(challanEntrySchema(), catalog.CRUD).ListBy("challan_uuid")
}

func packingList() *catalog.Resource {
	s := catalog.Entity(Name, "packing_list",
		catalog.F("order_info_uuid", catalog.UUID()),
		catalog.F("carton_uuid", catalog.UUID()),
		catalog.F("is_warehouse_received", catalog.Boolean(false)),
	).Require("order_info_uuid", "carton_uuid")
	return catalog.NewResource(s, catalog.CRUD)
}

func packingListEntry() *catalog.Resource {
	s := catalog.Entity(Name, "packing_list_entry",
		catalog.F("packing_list_uuid", catalog.UUID()),
		catalog.F("order_uuid", catalog.UUID()),
		catalog.F("quantity", catalog.Integer(1)),
	).Require("packing_list_uuid", "order_uuid", "quantity")
	return catalog.NewResource(s, catalog.CRUD).ListBy("packing_list_uuid")
}
