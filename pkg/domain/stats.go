package domain

// Stats counts the entries of each collection of a Document.
type Stats struct {
	Work           int `json:"work"`
	Projects       int `json:"projects"`
	Education      int `json:"education"`
	MOOCs          int `json:"moocs"`
	Certifications int `json:"certifications"`
	Awards         int `json:"awards"`
	Achievements   int `json:"achievements"`
	Skills         int `json:"skills"`
	Languages      int `json:"languages"`
	Interests      int `json:"interests"`
	Volunteer      int `json:"volunteer"`
	Publications   int `json:"publications"`
	Speaking       int `json:"speaking"`
	Media          int `json:"media"`
	Patents        int `json:"patents"`
	References     int `json:"references"`
}

// Stats returns per-collection counts. A nil Document has none.
func (d *Document) Stats() Stats {
	if d == nil {
		return Stats{}
	}
	return Stats{
		Work:           len(d.Work),
		Projects:       len(d.Projects),
		Education:      len(d.Education),
		MOOCs:          len(d.MOOCs),
		Certifications: len(d.Certifications),
		Awards:         len(d.Awards),
		Achievements:   len(d.Achievements),
		Skills:         len(d.Skills),
		Languages:      len(d.Languages),
		Interests:      len(d.Interests),
		Volunteer:      len(d.Volunteer),
		Publications:   len(d.Publications),
		Speaking:       len(d.Speaking),
		Media:          len(d.Media),
		Patents:        len(d.Patents),
		References:     len(d.References),
	}
}

// Total is the number of entries across all collections.
func (s Stats) Total() int {
	return s.Work + s.Projects + s.Education + s.MOOCs + s.Certifications + s.Awards +
		s.Achievements + s.Skills + s.Languages + s.Interests + s.Volunteer +
		s.Publications + s.Speaking + s.Media + s.Patents + s.References
}

// Count is the number of entries of one collection.
type Count struct {
	Collection string
	N          int
}

// Counts lists every collection in document order with its entry count.
func (s Stats) Counts() []Count {
	return []Count{
		{"work", s.Work}, {"projects", s.Projects}, {"education", s.Education},
		{"moocs", s.MOOCs}, {"certifications", s.Certifications}, {"awards", s.Awards},
		{"achievements", s.Achievements}, {"skills", s.Skills}, {"languages", s.Languages},
		{"interests", s.Interests}, {"volunteer", s.Volunteer}, {"publications", s.Publications},
		{"speaking", s.Speaking}, {"media", s.Media}, {"patents", s.Patents},
		{"references", s.References},
	}
}
