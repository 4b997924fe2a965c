package dsl

import "maps"

// PortfolioBuilder provides a fluent API for an untyped portfolio document.
// It does not validate: the point is to produce inputs, valid or not.
type PortfolioBuilder struct {
	doc map[string]any
}

// Portfolio starts an empty document.
func Portfolio() *PortfolioBuilder {
	return &PortfolioBuilder{doc: make(map[string]any)}
}

func (p *PortfolioBuilder) basics() map[string]any {
	b, ok := p.doc["basics"].(map[string]any)
	if !ok {
		b = make(map[string]any)
		p.doc["basics"] = b
	}
	return b
}

func (p *PortfolioBuilder) appendTo(collection string, entry map[string]any) *PortfolioBuilder {
	list, _ := p.doc[collection].([]any)
	p.doc[collection] = append(list, entry)
	return p
}

// Name sets basics.name.
func (p *PortfolioBuilder) Name(name string) *PortfolioBuilder {
	p.basics()["name"] = name
	return p
}

// Label sets basics.label, e.g. "Backend Engineer".
func (p *PortfolioBuilder) Label(label string) *PortfolioBuilder {
	p.basics()["label"] = label
	return p
}

// Email sets basics.email.
func (p *PortfolioBuilder) Email(email string) *PortfolioBuilder {
	p.basics()["email"] = email
	return p
}

// Summary sets basics.summary.
func (p *PortfolioBuilder) Summary(text string) *PortfolioBuilder {
	p.basics()["summary"] = text
	return p
}

// Profile adds a social profile to basics.
func (p *PortfolioBuilder) Profile(network, url string) *PortfolioBuilder {
	b := p.basics()
	profiles, _ := b["profiles"].([]any)
	b["profiles"] = append(profiles, map[string]any{"network": network, "url": url})
	return p
}

// Work adds a position. An empty end date means a current position.
func (p *PortfolioBuilder) Work(company, position, startDate, endDate string) *PortfolioBuilder {
	entry := map[string]any{"name": company, "position": position, "startDate": startDate}
	if endDate != "" {
		entry["endDate"] = endDate
	}
	return p.appendTo("work", entry)
}

// Project adds a project with optional technologies.
func (p *PortfolioBuilder) Project(name string, technologies ...string) *PortfolioBuilder {
	entry := map[string]any{"name": name}
	if len(technologies) > 0 {
		entry["technologies"] = toAny(technologies)
	}
	return p.appendTo("projects", entry)
}

// Skill adds a skill; level may be empty.
func (p *PortfolioBuilder) Skill(name, level string) *PortfolioBuilder {
	entry := map[string]any{"name": name}
	if level != "" {
		entry["level"] = level
	}
	return p.appendTo("skills", entry)
}

// Language adds a spoken language with its fluency.
func (p *PortfolioBuilder) Language(language, fluency string) *PortfolioBuilder {
	return p.appendTo("languages", map[string]any{"language": language, "fluency": fluency})
}

// Entry appends a raw entry to any collection.
func (p *PortfolioBuilder) Entry(collection string, entry map[string]any) *PortfolioBuilder {
	return p.appendTo(collection, entry)
}

// Visibility sets meta.visibility.
func (p *PortfolioBuilder) Visibility(v string) *PortfolioBuilder {
	meta, ok := p.doc["meta"].(map[string]any)
	if !ok {
		meta = make(map[string]any)
		p.doc["meta"] = meta
	}
	meta["visibility"] = v
	return p
}

// Set assigns a top-level key verbatim, including keys the schema does not declare.
func (p *PortfolioBuilder) Set(key string, value any) *PortfolioBuilder {
	p.doc[key] = value
	return p
}

// Build returns a shallow copy of the document.
func (p *PortfolioBuilder) Build() map[string]any {
	return maps.Clone(p.doc)
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
