package store

import (
	"business-catalog-api/internal/catalog"
)

// Stock is located by branch > warehouse > room > rack > floor > box.

func branch() *catalog.Resource {
	s := catalog.Entity(Name, "branch",
		catalog.F("name", catalog.String("Head Office")),
		catalog.F("address", catalog.String("Dhaka, Bangladesh")),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func warehouse() *catalog.Resource {
	s := catalog.Entity(Name, "warehouse",
		catalog.F("branch_uuid", catalog.UUID()),
		catalog.F("name", catalog.String("Warehouse 1")),
		catalog.F("assigned", catalog.Enum("purchase", "delivery", "repair")),
	).Require("branch_uuid", "name", "assigned")
	return catalog.NewResource(s, catalog.CRUD).ListBy("branch_uuid")
}

func room() *catalog.Resource {
	s := catalog.Entity(Name, "room",
		catalog.F("warehouse_uuid", catalog.UUID()),
		catalog.F("name", catalog.String("Room A")),
	).Require("warehouse_uuid", "name")
	return catalog.NewResource(s, catalog.CRUD)
}

func rack() *catalog.Resource {
	s := catalog.Entity(Name, "rack",
		catalog.F("room_uuid", catalog.UUID()),
		catalog.F("name", catalog.String("Rack 1")),
	).Require("room_uuid", "name")
	return catalog.NewResource(s, catalog.CRUD).ListBy("room_uuid")
}

func floor() *catalog.Resource {
	s := catalog.Entity(Name, "floor",
		catalog.F("rack_uuid", catalog.UUID()),
		catalog.F("name", catalog.String("Floor 1")),
	).Require("rack_uuid", "name")
	return catalog.NewResource(s, catalog.CRUD).ListBy("rack_uuid")
}

func box() *catalog.Resource {
	s := catalog.Entity(Name, "box",
		catalog.F("floor_uuid", catalog.UUID()),
		catalog.F("name", catalog.String("Box 1")),
	).Require("floor_uuid", "name")
	return catalog.NewResource(s, catalog.CRUD).ListBy("floor_uuid")
}
