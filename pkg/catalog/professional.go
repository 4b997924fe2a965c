package catalog

import (
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/schema"
)

// Work describes a position held at an organization.
func Work() *schema.ObjectType {
	return titled("Work", schema.Object(
		schema.Required("name", schema.String()).Describe("Company or organization name"),
		schema.Required("position", schema.String()),
		schema.Optional("url", schema.URL()),
		schema.Required("startDate", schema.Date()),
		schema.Optional("endDate", schema.Date()).Describe("Omitted for current positions"),
		schema.Optional("summary", schema.String()),
		schema.Optional("highlights", schema.Slice(schema.String())),
		schema.Optional("type", schema.EnumOf(domain.EmploymentTypes)),
		schema.Optional("remote", schema.Bool()),
		schema.Optional("technologies", schema.Slice(schema.String())),
		schema.Optional("teamSize", schema.Number().Min(1)),
		schema.Optional("location", schema.String()),
	))
}

// Project describes personal, professional or open-source work.
func Project() *schema.ObjectType {
	return titled("Project", schema.Object(
		schema.Required("name", schema.String()),
		schema.Optional("description", schema.String()),
		schema.Optional("highlights", schema.Slice(schema.String())),
		schema.Optional("keywords", schema.Slice(schema.String())),
		schema.Optional("startDate", schema.Date()),
		schema.Optional("endDate", schema.Date()),
		schema.Optional("url", schema.URL()),
		schema.Optional("repository", schema.URL()),
		schema.Optional("demo", schema.URL()).Describe("Live demo URL"),
		schema.Optional("type", schema.EnumOf(domain.ProjectTypes)),
		schema.Optional("status", schema.EnumOf(domain.ProjectStatuses)),
		schema.Optional("technologies", schema.Slice(schema.String())),
		schema.Optional("role", schema.String()),
		schema.Optional("teamSize", schema.Number().Min(1)),
		schema.Optional("organization", schema.String()),
	))
}

func Achievement() *schema.ObjectType {
	return titled("Achievement", schema.Object(
		schema.Required("title", schema.String()),
		schema.Optional("date", schema.Date()),
		schema.Optional("issuer", schema.String()),
		schema.Optional("summary", schema.String()),
		schema.Optional("category", schema.EnumOf(domain.AchievementCategories)),
		schema.Optional("url", schema.URL()).Describe("Verification URL"),
	))
}

func Volunteer() *schema.ObjectType {
	return titled("Volunteer", schema.Object(
		schema.Required("organization", schema.String()),
		schema.Optional("position", schema.String()),
		schema.Optional("url", schema.URL()),
		schema.Optional("startDate", schema.Date()),
		schema.Optional("endDate", schema.Date()),
		schema.Optional("summary", schema.String()),
		schema.Optional("highlights", schema.Slice(schema.String())),
		schema.Optional("cause", schema.String()),
	))
}
