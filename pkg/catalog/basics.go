package catalog

import "github.com/aretw0/devfolio/pkg/schema"

// Basics describes the personal information block.
func Basics() *schema.ObjectType {
	return titled("Basics", schema.Object(
		schema.Required("name", schema.String().Min(1, "Name is required")).Describe("Full name of the person"),
		schema.Optional("label", schema.String()).Describe("Professional label or title"),
		schema.Optional("image", schema.URL()).Describe("Profile image URL"),
		schema.Optional("email", schema.Email()),
		schema.Optional("phone", schema.String()),
		schema.Optional("url", schema.URL()).Describe("Personal website or portfolio URL"),
		schema.Optional("summary", schema.String()).Describe("Professional summary"),
		schema.Optional("location", schema.Object(
			schema.Optional("address", schema.String()),
			schema.Optional("postalCode", schema.String()),
			schema.Optional("city", schema.String()),
			schema.Optional("countryCode", schema.String().Len(2)).Describe("ISO 3166-1 alpha-2 country code"),
			schema.Optional("region", schema.String()),
		)),
		schema.Optional("profiles", schema.Slice(schema.Object(
			schema.Required("network", schema.String()).Describe("Platform name, e.g. GitHub or LinkedIn"),
			schema.Optional("username", schema.String()),
			schema.Required("url", schema.URL()),
			schema.Optional("id", schema.String()).Describe("Platform-specific identifier"),
		))).Describe("Social media profiles"),
	))
}
