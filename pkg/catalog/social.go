package catalog

import (
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/schema"
)

func Publication() *schema.ObjectType {
	return titled("Publication", schema.Object(
		schema.Required("name", schema.String()),
		schema.Optional("publisher", schema.String()),
		schema.Optional("releaseDate", schema.Date()),
		schema.Optional("url", schema.URL()),
		schema.Optional("doi", schema.String()).Describe("Digital Object Identifier"),
		schema.Optional("summary", schema.String()),
		schema.Optional("type", schema.EnumOf(domain.PublicationTypes)),
		schema.Optional("authors", schema.Slice(schema.String())),
		schema.Optional("keywords", schema.Slice(schema.String())),
		schema.Optional("citations", schema.Number().Min(0)),
		schema.Optional("venue", schema.String()).Describe("Journal or conference name"),
		schema.Optional("volume", schema.String()),
		schema.Optional("pages", schema.String()),
	))
}

func Speaking() *schema.ObjectType {
	return titled("Speaking", schema.Object(
		schema.Required("title", schema.String()),
		schema.Optional("event", schema.String()),
		schema.Optional("organizer", schema.String()),
		schema.Optional("date", schema.Date()),
		schema.Optional("location", schema.String()),
		schema.Optional("url", schema.URL()),
		schema.Optional("presentationUrl", schema.URL()),
		schema.Optional("slidesUrl", schema.URL()),
		schema.Optional("videoUrl", schema.URL()),
		schema.Optional("description", schema.String()),
		schema.Optional("audienceSize", schema.Number().Min(0)),
		schema.Optional("type", schema.EnumOf(domain.SpeakingTypes)),
		schema.Optional("topics", schema.Slice(schema.String())),
	))
}

func Media() *schema.ObjectType {
	return titled("Media", schema.Object(
		schema.Required("title", schema.String()),
		schema.Optional("outlet", schema.String()),
		schema.Optional("date", schema.Date()),
		schema.Optional("url", schema.URL()),
		schema.Optional("description", schema.String()),
		schema.Optional("type", schema.EnumOf(domain.MediaTypes)),
		schema.Optional("topics", schema.Slice(schema.String())),
	))
}

func Patent() *schema.ObjectType {
	return titled("Patent", schema.Object(
		schema.Required("title", schema.String()),
		schema.Optional("patentNumber", schema.String()),
		schema.Optional("filingDate", schema.Date()),
		schema.Optional("grantDate", schema.Date()),
		schema.Optional("office", schema.String()),
		schema.Optional("url", schema.URL()),
		schema.Optional("summary", schema.String()),
		schema.Optional("inventors", schema.Slice(schema.String())),
		schema.Optional("status", schema.EnumOf(domain.PatentStatuses)),
		schema.Optional("applicationNumber", schema.String()),
	))
}

// Reference describes a reference or testimonial.
func Reference() *schema.ObjectType {
	return titled("Reference", schema.Object(
		schema.Required("name", schema.String()),
		schema.Optional("reference", schema.String()).Describe("Testimonial text"),
		schema.Optional("position", schema.String()),
		schema.Optional("company", schema.String()),
		schema.Optional("relationship", schema.EnumOf(domain.Relationships)),
		schema.Optional("contact", schema.Object(
			schema.Optional("email", schema.Email()),
			schema.Optional("phone", schema.String()),
			schema.Optional("linkedin", schema.URL()),
		)),
		schema.Optional("date", schema.Date()),
		schema.Optional("url", schema.URL()).Describe("e.g. a LinkedIn recommendation"),
	))
}
