package catalog

import (
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/schema"
)

// RecordType names one collection of the document and the schema of its entries.
type RecordType struct {
	// Name is the entry type name, e.g. "Work".
	Name string
	// Collection is the document key holding the entries, e.g. "work".
	// It is empty for types that only appear nested (CourseItem).
	Collection string
	Schema     *schema.ObjectType
}

var (
	records  = buildRecords()
	document = buildDocument()
)

// Document returns the composed portfolio schema. The value is shared and
// must not be modified.
func Document() *schema.ObjectType {
	return document
}

// RecordTypes lists every record type in document order. The returned slice
// is a copy; the schemas it points to are shared.
func RecordTypes() []RecordType {
	out := make([]RecordType, len(records))
	copy(out, records)
	return out
}

// Lookup returns the record type with the given entry name or collection key.
func Lookup(name string) (RecordType, bool) {
	for _, r := range records {
		if r.Name == name || (r.Collection != "" && r.Collection == name) {
			return r, true
		}
	}
	return RecordType{}, false
}

func Meta() *schema.ObjectType {
	return titled("Meta", schema.Object(
		schema.Optional("lastModified", schema.DateTime()),
		schema.Optional("version", schema.String()).Describe("Schema version used"),
		schema.Optional("theme", schema.String()),
		schema.Optional("visibility", schema.EnumOf(domain.Visibilities)),
		schema.Optional("custom", schema.Record(schema.Any())).Describe("Free-form extension data"),
	))
}

func buildRecords() []RecordType {
	return []RecordType{
		{"Basics", "", Basics()},
		{"Work", "work", Work()},
		{"Project", "projects", Project()},
		{"Education", "education", Education()},
		{"MOOC", "moocs", MOOC()},
		{"CourseItem", "", CourseItem()},
		{"Certification", "certifications", Certification()},
		{"Award", "awards", Award()},
		{"Achievement", "achievements", Achievement()},
		{"Skill", "skills", Skill()},
		{"Language", "languages", Language()},
		{"Interest", "interests", Interest()},
		{"Volunteer", "volunteer", Volunteer()},
		{"Publication", "publications", Publication()},
		{"Speaking", "speaking", Speaking()},
		{"Media", "media", Media()},
		{"Patent", "patents", Patent()},
		{"Reference", "references", Reference()},
		{"Meta", "", Meta()},
	}
}

func buildDocument() *schema.ObjectType {
	fields := []schema.Field{
		schema.Optional("$schema", schema.String()).
			WithDefault(domain.DefaultSchemaURL).
			Describe("JSON Schema reference"),
		schema.Optional("basics", Basics()),
	}
	for _, r := range records {
		if r.Collection == "" {
			continue
		}
		fields = append(fields, schema.Optional(r.Collection, schema.Slice(r.Schema)))
	}
	fields = append(fields, schema.Optional("meta", Meta()))

	doc := schema.Object(fields...)
	doc.Title = "DevFolio"
	return doc
}

func titled(title string, o *schema.ObjectType) *schema.ObjectType {
	o.Title = title
	return o
}
