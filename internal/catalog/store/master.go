package store

import (
	"business-catalog-api/internal/catalog"
)

func group() *catalog.Resource {
	s := catalog.Entity(Name, "group",
		catalog.F("name", catalog.String("Laptop")),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func category() *catalog.Resource {
	s := catalog.Entity(Name, "category",
		catalog.F("group_uuid", catalog.UUID()),
		catalog.F("name", catalog.String("Gaming Laptop")),
	).Require("group_uuid", "name")
	return catalog.NewResource(s, catalog.CRUD).ListBy("group_uuid")
}

func brand() *catalog.Resource {
	s := catalog.Entity(Name, "brand",
		catalog.F("name", catalog.String("Lenovo")),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func size() *catalog.Resource {
	s := catalog.Entity(Name, "size",
		catalog.F("name", catalog.String("15.6 inch")),
	).Require("name")
	return catalog.NewResource(s, catalog.CRUD)
}

func vendor() *catalog.Resource {
	s := catalog.Entity(Name, "vendor",
		catalog.F("name", catalog.String("Star Tech")),
		catalog.F("company_name", catalog.String("Star Tech Ltd.")),
		catalog.F("phone", catalog.String("01700000000")),
		catalog.F("email", catalog.Email("vendor@example.com")),
		catalog.F("address", catalog.String("Dhaka, Bangladesh")),
		catalog.F("description", catalog.String("computer parts supplier")),
		catalog.F("is_active", catalog.Boolean(true)),
	).Require("name", "phone")
	return catalog.NewResource(s, catalog.CRUD)
}

func model() *catalog.Resource {
	s := catalog.Entity(Name, "model",
		catalog.F("brand_uuid", catalog.UUID()),
		catalog.F("name", catalog.String("IdeaPad 3")),
	).Require("brand_uuid", "name")
	return catalog.NewResource(s, catalog.CRUD).ListBy("brand_uuid")
}

func product() *catalog.Resource {
	s := catalog.Entity(Name, "product",
		catalog.F("category_uuid", catalog.UUID()),
		catalog.F("brand_uuid", catalog.UUID()),
		catalog.F("model_uuid", catalog.UUID()),
		catalog.F("size_uuid", catalog.UUID()),
		catalog.F("name", catalog.String("IdeaPad 3 15IAU7")),
		catalog.F("warranty_days", catalog.Integer(365)),
		catalog.F("service_warranty_days", catalog.Integer(730)),
		catalog.F("type", catalog.Enum("inventory", "service")),
		catalog.F("is_maintaining_stock", catalog.Boolean(true)),
	).Require("category_uuid", "brand_uuid", "model_uuid", "size_uuid", "name", "type")
	return catalog.NewResource(s, catalog.CRUD)
}
