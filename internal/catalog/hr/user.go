package hr

import (
	"business-catalog-api/internal/catalog"
)

func userSchema() *catalog.Schema {
	return catalog.Entity(Name, "user",
		catalog.F("name", catalog.String("John Doe")),
		catalog.F("email", catalog.Email("john@example.com")),
		catalog.F("pass", catalog.Password()),
		catalog.F("designation_uuid", catalog.UUID()),
		catalog.F("department_uuid", catalog.UUID()),
		catalog.F("ext", catalog.String("+880")),
		catalog.F("phone", catalog.String("01700000000")),
		catalog.F("office", catalog.String("Head Office")),
		catalog.F("status", catalog.Boolean(true)),
		catalog.F("can_access", catalog.String(`{"dashboard":["read"]}`)),
		catalog.F("user_type", catalog.Enum("employee", "customer", "vendor")),
	).Require("name", "email", "pass", "designation_uuid", "department_uuid")
}

// user never returns its password hash once written
func user() *catalog.Resource {
	s := userSchema()
	public := s.Without("pass")
	r := catalog.NewResource(s, catalog.CRUD)
	r.UpdateResponse = public
	return r.With(catalog.SubRoute{
		Path:        "/hr/user/login",
		Method:      "post",
		Summary:     "Sign in a user",
		Description: "Exchange email and password for an access token",
		Body: catalog.Object([]string{"email", "pass"}, map[string]*catalog.Property{
			"email": catalog.Email("john@example.com"),
			"pass":  catalog.Password(),
		}),
		Response: catalog.Object([]string{"token", "user"}, map[string]*catalog.Property{
			"token": catalog.String("eyJhbGciOiJIUzI1NiJ9.e30.signature"),
			"user":  public.Object(),
		}),
	})
}
