package work

import (
	"business-catalog-api/internal/catalog"
)

func problem() *catalog.Resource {
	s := catalog.Entity(Name, "problem",
		catalog.F("name", catalog.String("No Power")),
		catalog.F("category", catalog.Enum("customer", "employee")),
	).Require("name", "category")
	return catalog.NewResource(s, catalog.CRUD)
}

func accessory() *catalog.Resource {
	s := catalog.Entity(Name, "accessory",
		catalog.F("name", catalog.String("Charger")),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func section() *catalog.Resource {
	s := catalog.Entity(Name, "section",
		catalog.F("name", catalog.String("Chip Level")),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func zone() *catalog.Resource {
	s := catalog.Entity(Name, "zone",
		catalog.F("name", catalog.String("Dhaka North")),
		catalog.F("division", catalog.Enum("dhaka", "chattogram", "rajshahi", "khulna", "barishal", "sylhet", "rangpur", "mymensingh")),
		catalog.F("latitude", catalog.Number(23.8103)),
		catalog.F("longitude", catalog.Number(90.4125)),
	).Require("name", "division")
	return catalog.NewResource(s, catalog.CRUD)
}
