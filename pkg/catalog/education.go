package catalog

import (
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/schema"
)

// Education describes formal education.
func Education() *schema.ObjectType {
	return titled("Education", schema.Object(
		schema.Required("institution", schema.String()),
		schema.Optional("url", schema.URL()),
		schema.Optional("area", schema.String()).Describe("Area of study"),
		schema.Optional("studyType", schema.String()).Describe("Degree level"),
		schema.Optional("startDate", schema.Date()),
		schema.Optional("endDate", schema.Date()),
		schema.Optional("score", schema.String()).Describe("GPA or score"),
		schema.Optional("courses", schema.Slice(schema.String())),
		schema.Optional("honors", schema.Slice(schema.String())),
		schema.Optional("activities", schema.Slice(schema.String())),
		schema.Optional("location", schema.String()),
	))
}

// CourseItem describes one course inside a MOOC bundle or specialization.
func CourseItem() *schema.ObjectType {
	return titled("CourseItem", schema.Object(
		schema.Required("title", schema.String()),
		schema.Optional("certificateLink", schema.URL()),
		schema.Optional("completionDate", schema.Date()),
		schema.Optional("description", schema.String()),
		schema.Optional("skills", schema.Slice(schema.String())),
	))
}

// MOOC describes an online course, bundle or specialization.
func MOOC() *schema.ObjectType {
	return titled("MOOC", schema.Object(
		schema.Required("courseTitle", schema.String()),
		schema.Required("type", schema.EnumOf(domain.MOOCTypes)),
		schema.Required("status", schema.EnumOf(domain.MOOCStatuses)),
		schema.Optional("certificateLink", schema.URL()),
		schema.Optional("provider", schema.String()).Describe("Platform, e.g. Coursera or edX"),
		schema.Optional("startDate", schema.Date()),
		schema.Optional("completionDate", schema.Date()),
		schema.Optional("courses", schema.Slice(CourseItem())).Describe("Individual courses of a bundle or specialization"),
		schema.Optional("skills", schema.Slice(schema.String())),
		schema.Optional("duration", schema.Number().Min(0)).Describe("Duration in hours"),
		schema.Optional("instructors", schema.Slice(schema.String())),
	))
}

func Certification() *schema.ObjectType {
	return titled("Certification", schema.Object(
		schema.Required("name", schema.String()),
		schema.Required("issuer", schema.String()),
		schema.Optional("date", schema.Date()),
		schema.Optional("expirationDate", schema.Date()),
		schema.Optional("url", schema.URL()),
		schema.Optional("badgeUrl", schema.URL()),
		schema.Optional("certificationId", schema.String()),
		schema.Optional("description", schema.String()),
		schema.Optional("skills", schema.Slice(schema.String())),
		schema.Optional("level", schema.EnumOf(domain.CertificationLevels)),
	))
}

func Award() *schema.ObjectType {
	return titled("Award", schema.Object(
		schema.Required("title", schema.String()),
		schema.Optional("date", schema.Date()),
		schema.Optional("awarder", schema.String()),
		schema.Optional("summary", schema.String()),
		schema.Optional("category", schema.EnumOf(domain.AwardCategories)),
		schema.Optional("level", schema.EnumOf(domain.AwardLevels)),
		schema.Optional("url", schema.URL()),
	))
}
