package domain

// EmploymentType is the kind of engagement of a Work entry.
type EmploymentType string

var EmploymentTypes = []EmploymentType{
	"full-time", "part-time", "contract", "freelance", "internship", "volunteer",
}

// ProjectType classifies a Project.
type ProjectType string

var ProjectTypes = []ProjectType{
	"personal", "professional", "open-source", "academic", "freelance",
}

// ProjectStatus is the lifecycle state of a Project.
type ProjectStatus string

var ProjectStatuses = []ProjectStatus{
	"completed", "in-progress", "on-hold", "cancelled",
}

// AchievementCategory classifies an Achievement.
type AchievementCategory string

var AchievementCategories = []AchievementCategory{
	"technical", "leadership", "innovation", "performance", "recognition", "other",
}

// MOOCType distinguishes single courses from bundles.
type MOOCType string

var MOOCTypes = []MOOCType{"Course", "Bundle", "Specialization"}

// MOOCStatus is the completion state of a MOOC.
type MOOCStatus string

var MOOCStatuses = []MOOCStatus{"Completed", "In Progress", "Not Started"}

// CertificationLevel is the tier of a professional certification.
type CertificationLevel string

var CertificationLevels = []CertificationLevel{
	"foundation", "associate", "professional", "expert", "master",
}

// AwardCategory classifies an Award.
type AwardCategory string

var AwardCategories = []AwardCategory{
	"academic", "professional", "community", "technical", "leadership", "innovation", "other",
}

// AwardLevel is the scope of an Award.
type AwardLevel string

var AwardLevels = []AwardLevel{
	"international", "national", "regional", "local", "organizational",
}

// SkillLevel is a self-assessed proficiency tier, lowest first.
type SkillLevel string

var SkillLevels = []SkillLevel{
	"beginner", "novice", "intermediate", "advanced", "expert", "master",
}

// SkillCategory groups skills.
type SkillCategory string

var SkillCategories = []SkillCategory{
	"programming-languages", "frameworks", "libraries", "databases", "tools", "platforms",
	"methodologies", "soft-skills", "design", "testing", "devops", "mobile", "web",
	"data-science", "machine-learning", "blockchain", "security", "cloud", "other",
}

// LanguageFluency covers descriptive tiers and the CEFR levels A1-C2.
type LanguageFluency string

var LanguageFluencies = []LanguageFluency{
	"elementary", "limited-working", "professional-working", "full-professional", "native-bilingual",
	"A1", "A2", "B1", "B2", "C1", "C2",
}

// InterestCategory classifies an Interest.
type InterestCategory string

var InterestCategories = []InterestCategory{
	"technology", "sports", "arts", "music", "travel", "reading", "gaming", "photography",
	"cooking", "fitness", "volunteering", "education", "science", "business", "other",
}

// InterestLevel is the level of involvement in an Interest.
type InterestLevel string

var InterestLevels = []InterestLevel{"casual", "hobby", "passionate", "professional"}

// PublicationType classifies a Publication.
type PublicationType string

var PublicationTypes = []PublicationType{
	"journal-article", "conference-paper", "book", "book-chapter", "thesis", "patent",
	"blog-post", "white-paper", "case-study", "technical-report", "other",
}

// SpeakingType classifies a Speaking engagement.
type SpeakingType string

var SpeakingTypes = []SpeakingType{
	"keynote", "conference-talk", "workshop", "panel", "webinar", "podcast", "interview",
	"meetup", "internal-presentation", "other",
}

// MediaType classifies a Media appearance.
type MediaType string

var MediaTypes = []MediaType{
	"interview", "article", "podcast", "video", "tv-appearance", "radio", "quote", "feature",
	"profile", "other",
}

// PatentStatus is the legal state of a Patent.
type PatentStatus string

var PatentStatuses = []PatentStatus{"pending", "granted", "expired", "abandoned"}

// Relationship describes how a Reference knows the portfolio owner.
type Relationship string

var Relationships = []Relationship{
	"manager", "colleague", "direct-report", "client", "mentor", "professor", "peer", "other",
}

// Visibility controls who may see a portfolio.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityUnlisted Visibility = "unlisted"
)

var Visibilities = []Visibility{VisibilityPublic, VisibilityPrivate, VisibilityUnlisted}
