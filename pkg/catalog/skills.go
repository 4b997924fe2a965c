package catalog

import (
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/schema"
)

func Skill() *schema.ObjectType {
	return titled("Skill", schema.Object(
		schema.Required("name", schema.String()),
		schema.Optional("level", schema.EnumOf(domain.SkillLevels)),
		schema.Optional("category", schema.EnumOf(domain.SkillCategories)),
		schema.Optional("yearsOfExperience", schema.Number().Min(0)),
		schema.Optional("keywords", schema.Slice(schema.String())),
		schema.Optional("lastUsed", schema.Date()),
		schema.Optional("certifications", schema.Slice(schema.String())),
		schema.Optional("rating", schema.Number().Min(1).Max(10)).Describe("Self-assessed rating from 1 to 10"),
	))
}

// Language describes a spoken language. Fluency fields accept descriptive
// tiers as well as CEFR levels.
func Language() *schema.ObjectType {
	fluency := func() schema.Type { return schema.EnumOf(domain.LanguageFluencies) }
	return titled("Language", schema.Object(
		schema.Required("language", schema.String()),
		schema.Optional("fluency", fluency()),
		schema.Optional("speaking", fluency()),
		schema.Optional("writing", fluency()),
		schema.Optional("reading", fluency()),
		schema.Optional("listening", fluency()),
		schema.Optional("certifications", schema.Slice(schema.Object(
			schema.Required("name", schema.String()).Describe("Test name, e.g. TOEFL, IELTS or HSK"),
			schema.Optional("score", schema.String()),
			schema.Optional("date", schema.Date()),
			schema.Optional("url", schema.URL()),
		))),
		schema.Optional("native", schema.Bool()),
	))
}

func Interest() *schema.ObjectType {
	return titled("Interest", schema.Object(
		schema.Required("name", schema.String()),
		schema.Optional("keywords", schema.Slice(schema.String())),
		schema.Optional("category", schema.EnumOf(domain.InterestCategories)),
		schema.Optional("level", schema.EnumOf(domain.InterestLevels)).Describe("Level of involvement"),
		schema.Optional("description", schema.String()),
	))
}
