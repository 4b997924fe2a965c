package domain

// DefaultSchemaURL is the value of Document.Schema when the input omits it.
// It is kept stable across versions for backward compatibility.
const DefaultSchemaURL = "https://raw.githubusercontent.com/AungMyoKyaw/devfolio-json-schema/refs/heads/master/schema.json"

// Document is the root portfolio value. Every collection is optional.
// It uses "mapstructure" tags so validated, untyped maps decode directly into it.
type Document struct {
	Schema         string          `json:"$schema,omitempty" mapstructure:"$schema"`
	Basics         *Basics         `json:"basics,omitempty" mapstructure:"basics"`
	Work           []Work          `json:"work,omitempty" mapstructure:"work"`
	Projects       []Project       `json:"projects,omitempty" mapstructure:"projects"`
	Education      []Education     `json:"education,omitempty" mapstructure:"education"`
	MOOCs          []MOOC          `json:"moocs,omitempty" mapstructure:"moocs"`
	Certifications []Certification `json:"certifications,omitempty" mapstructure:"certifications"`
	Awards         []Award         `json:"awards,omitempty" mapstructure:"awards"`
	Achievements   []Achievement   `json:"achievements,omitempty" mapstructure:"achievements"`
	Skills         []Skill         `json:"skills,omitempty" mapstructure:"skills"`
	Languages      []Language      `json:"languages,omitempty" mapstructure:"languages"`
	Interests      []Interest      `json:"interests,omitempty" mapstructure:"interests"`
	Volunteer      []Volunteer     `json:"volunteer,omitempty" mapstructure:"volunteer"`
	Publications   []Publication   `json:"publications,omitempty" mapstructure:"publications"`
	Speaking       []Speaking      `json:"speaking,omitempty" mapstructure:"speaking"`
	Media          []Media         `json:"media,omitempty" mapstructure:"media"`
	Patents        []Patent        `json:"patents,omitempty" mapstructure:"patents"`
	References     []Reference     `json:"references,omitempty" mapstructure:"references"`
	Meta           *Meta           `json:"meta,omitempty" mapstructure:"meta"`
}

// Basics is the personal information block.
type Basics struct {
	Name     string    `json:"name" mapstructure:"name"`
	Label    string    `json:"label,omitempty" mapstructure:"label"`
	Image    string    `json:"image,omitempty" mapstructure:"image"`
	Email    string    `json:"email,omitempty" mapstructure:"email"`
	Phone    string    `json:"phone,omitempty" mapstructure:"phone"`
	URL      string    `json:"url,omitempty" mapstructure:"url"`
	Summary  string    `json:"summary,omitempty" mapstructure:"summary"`
	Location *Location `json:"location,omitempty" mapstructure:"location"`
	Profiles []Profile `json:"profiles,omitempty" mapstructure:"profiles"`
}

type Location struct {
	Address     string `json:"address,omitempty" mapstructure:"address"`
	PostalCode  string `json:"postalCode,omitempty" mapstructure:"postalCode"`
	City        string `json:"city,omitempty" mapstructure:"city"`
	CountryCode string `json:"countryCode,omitempty" mapstructure:"countryCode"`
	Region      string `json:"region,omitempty" mapstructure:"region"`
}

// Profile is a social network presence.
type Profile struct {
	Network  string `json:"network" mapstructure:"network"`
	Username string `json:"username,omitempty" mapstructure:"username"`
	URL      string `json:"url" mapstructure:"url"`
	ID       string `json:"id,omitempty" mapstructure:"id"`
}

type Work struct {
	Name         string         `json:"name" mapstructure:"name"`
	Position     string         `json:"position" mapstructure:"position"`
	URL          string         `json:"url,omitempty" mapstructure:"url"`
	StartDate    string         `json:"startDate" mapstructure:"startDate"`
	EndDate      string         `json:"endDate,omitempty" mapstructure:"endDate"`
	Summary      string         `json:"summary,omitempty" mapstructure:"summary"`
	Highlights   []string       `json:"highlights,omitempty" mapstructure:"highlights"`
	Type         EmploymentType `json:"type,omitempty" mapstructure:"type"`
	Remote       *bool          `json:"remote,omitempty" mapstructure:"remote"`
	Technologies []string       `json:"technologies,omitempty" mapstructure:"technologies"`
	TeamSize     *float64       `json:"teamSize,omitempty" mapstructure:"teamSize"`
	Location     string         `json:"location,omitempty" mapstructure:"location"`
}

type Project struct {
	Name         string        `json:"name" mapstructure:"name"`
	Description  string        `json:"description,omitempty" mapstructure:"description"`
	Highlights   []string      `json:"highlights,omitempty" mapstructure:"highlights"`
	Keywords     []string      `json:"keywords,omitempty" mapstructure:"keywords"`
	StartDate    string        `json:"startDate,omitempty" mapstructure:"startDate"`
	EndDate      string        `json:"endDate,omitempty" mapstructure:"endDate"`
	URL          string        `json:"url,omitempty" mapstructure:"url"`
	Repository   string        `json:"repository,omitempty" mapstructure:"repository"`
	Demo         string        `json:"demo,omitempty" mapstructure:"demo"`
	Type         ProjectType   `json:"type,omitempty" mapstructure:"type"`
	Status       ProjectStatus `json:"status,omitempty" mapstructure:"status"`
	Technologies []string      `json:"technologies,omitempty" mapstructure:"technologies"`
	Role         string        `json:"role,omitempty" mapstructure:"role"`
	TeamSize     *float64      `json:"teamSize,omitempty" mapstructure:"teamSize"`
	Organization string        `json:"organization,omitempty" mapstructure:"organization"`
}

type Achievement struct {
	Title    string              `json:"title" mapstructure:"title"`
	Date     string              `json:"date,omitempty" mapstructure:"date"`
	Issuer   string              `json:"issuer,omitempty" mapstructure:"issuer"`
	Summary  string              `json:"summary,omitempty" mapstructure:"summary"`
	Category AchievementCategory `json:"category,omitempty" mapstructure:"category"`
	URL      string              `json:"url,omitempty" mapstructure:"url"`
}

type Volunteer struct {
	Organization string   `json:"organization" mapstructure:"organization"`
	Position     string   `json:"position,omitempty" mapstructure:"position"`
	URL          string   `json:"url,omitempty" mapstructure:"url"`
	StartDate    string   `json:"startDate,omitempty" mapstructure:"startDate"`
	EndDate      string   `json:"endDate,omitempty" mapstructure:"endDate"`
	Summary      string   `json:"summary,omitempty" mapstructure:"summary"`
	Highlights   []string `json:"highlights,omitempty" mapstructure:"highlights"`
	Cause        string   `json:"cause,omitempty" mapstructure:"cause"`
}

type Education struct {
	Institution string   `json:"institution" mapstructure:"institution"`
	URL         string   `json:"url,omitempty" mapstructure:"url"`
	Area        string   `json:"area,omitempty" mapstructure:"area"`
	StudyType   string   `json:"studyType,omitempty" mapstructure:"studyType"`
	StartDate   string   `json:"startDate,omitempty" mapstructure:"startDate"`
	EndDate     string   `json:"endDate,omitempty" mapstructure:"endDate"`
	Score       string   `json:"score,omitempty" mapstructure:"score"`
	Courses     []string `json:"courses,omitempty" mapstructure:"courses"`
	Honors      []string `json:"honors,omitempty" mapstructure:"honors"`
	Activities  []string `json:"activities,omitempty" mapstructure:"activities"`
	Location    string   `json:"location,omitempty" mapstructure:"location"`
}

// CourseItem is a single course inside a MOOC bundle or specialization.
type CourseItem struct {
	Title           string   `json:"title" mapstructure:"title"`
	CertificateLink string   `json:"certificateLink,omitempty" mapstructure:"certificateLink"`
	CompletionDate  string   `json:"completionDate,omitempty" mapstructure:"completionDate"`
	Description     string   `json:"description,omitempty" mapstructure:"description"`
	Skills          []string `json:"skills,omitempty" mapstructure:"skills"`
}

type MOOC struct {
	CourseTitle     string       `json:"courseTitle" mapstructure:"courseTitle"`
	Type            MOOCType     `json:"type" mapstructure:"type"`
	Status          MOOCStatus   `json:"status" mapstructure:"status"`
	CertificateLink string       `json:"certificateLink,omitempty" mapstructure:"certificateLink"`
	Provider        string       `json:"provider,omitempty" mapstructure:"provider"`
	StartDate       string       `json:"startDate,omitempty" mapstructure:"startDate"`
	CompletionDate  string       `json:"completionDate,omitempty" mapstructure:"completionDate"`
	Courses         []CourseItem `json:"courses,omitempty" mapstructure:"courses"`
	Skills          []string     `json:"skills,omitempty" mapstructure:"skills"`
	Duration        *float64     `json:"duration,omitempty" mapstructure:"duration"`
	Instructors     []string     `json:"instructors,omitempty" mapstructure:"instructors"`
}

type Certification struct {
	Name            string             `json:"name" mapstructure:"name"`
	Issuer          string             `json:"issuer" mapstructure:"issuer"`
	Date            string             `json:"date,omitempty" mapstructure:"date"`
	ExpirationDate  string             `json:"expirationDate,omitempty" mapstructure:"expirationDate"`
	URL             string             `json:"url,omitempty" mapstructure:"url"`
	BadgeURL        string             `json:"badgeUrl,omitempty" mapstructure:"badgeUrl"`
	CertificationID string             `json:"certificationId,omitempty" mapstructure:"certificationId"`
	Description     string             `json:"description,omitempty" mapstructure:"description"`
	Skills          []string           `json:"skills,omitempty" mapstructure:"skills"`
	Level           CertificationLevel `json:"level,omitempty" mapstructure:"level"`
}

type Award struct {
	Title    string        `json:"title" mapstructure:"title"`
	Date     string        `json:"date,omitempty" mapstructure:"date"`
	Awarder  string        `json:"awarder,omitempty" mapstructure:"awarder"`
	Summary  string        `json:"summary,omitempty" mapstructure:"summary"`
	Category AwardCategory `json:"category,omitempty" mapstructure:"category"`
	Level    AwardLevel    `json:"level,omitempty" mapstructure:"level"`
	URL      string        `json:"url,omitempty" mapstructure:"url"`
}

type Skill struct {
	Name              string        `json:"name" mapstructure:"name"`
	Level             SkillLevel    `json:"level,omitempty" mapstructure:"level"`
	Category          SkillCategory `json:"category,omitempty" mapstructure:"category"`
	YearsOfExperience *float64      `json:"yearsOfExperience,omitempty" mapstructure:"yearsOfExperience"`
	Keywords          []string      `json:"keywords,omitempty" mapstructure:"keywords"`
	LastUsed          string        `json:"lastUsed,omitempty" mapstructure:"lastUsed"`
	Certifications    []string      `json:"certifications,omitempty" mapstructure:"certifications"`
	Rating            *float64      `json:"rating,omitempty" mapstructure:"rating"`
}

type Language struct {
	Language       string                  `json:"language" mapstructure:"language"`
	Fluency        LanguageFluency         `json:"fluency,omitempty" mapstructure:"fluency"`
	Speaking       LanguageFluency         `json:"speaking,omitempty" mapstructure:"speaking"`
	Writing        LanguageFluency         `json:"writing,omitempty" mapstructure:"writing"`
	Reading        LanguageFluency         `json:"reading,omitempty" mapstructure:"reading"`
	Listening      LanguageFluency         `json:"listening,omitempty" mapstructure:"listening"`
	Certifications []LanguageCertification `json:"certifications,omitempty" mapstructure:"certifications"`
	Native         *bool                   `json:"native,omitempty" mapstructure:"native"`
}

// LanguageCertification is a language test result such as TOEFL or IELTS.
type LanguageCertification struct {
	Name  string `json:"name" mapstructure:"name"`
	Score string `json:"score,omitempty" mapstructure:"score"`
	Date  string `json:"date,omitempty" mapstructure:"date"`
	URL   string `json:"url,omitempty" mapstructure:"url"`
}

type Interest struct {
	Name        string           `json:"name" mapstructure:"name"`
	Keywords    []string         `json:"keywords,omitempty" mapstructure:"keywords"`
	Category    InterestCategory `json:"category,omitempty" mapstructure:"category"`
	Level       InterestLevel    `json:"level,omitempty" mapstructure:"level"`
	Description string           `json:"description,omitempty" mapstructure:"description"`
}

type Publication struct {
	Name        string          `json:"name" mapstructure:"name"`
	Publisher   string          `json:"publisher,omitempty" mapstructure:"publisher"`
	ReleaseDate string          `json:"releaseDate,omitempty" mapstructure:"releaseDate"`
	URL         string          `json:"url,omitempty" mapstructure:"url"`
	DOI         string          `json:"doi,omitempty" mapstructure:"doi"`
	Summary     string          `json:"summary,omitempty" mapstructure:"summary"`
	Type        PublicationType `json:"type,omitempty" mapstructure:"type"`
	Authors     []string        `json:"authors,omitempty" mapstructure:"authors"`
	Keywords    []string        `json:"keywords,omitempty" mapstructure:"keywords"`
	Citations   *float64        `json:"citations,omitempty" mapstructure:"citations"`
	Venue       string          `json:"venue,omitempty" mapstructure:"venue"`
	Volume      string          `json:"volume,omitempty" mapstructure:"volume"`
	Pages       string          `json:"pages,omitempty" mapstructure:"pages"`
}

type Speaking struct {
	Title           string       `json:"title" mapstructure:"title"`
	Event           string       `json:"event,omitempty" mapstructure:"event"`
	Organizer       string       `json:"organizer,omitempty" mapstructure:"organizer"`
	Date            string       `json:"date,omitempty" mapstructure:"date"`
	Location        string       `json:"location,omitempty" mapstructure:"location"`
	URL             string       `json:"url,omitempty" mapstructure:"url"`
	PresentationURL string       `json:"presentationUrl,omitempty" mapstructure:"presentationUrl"`
	SlidesURL       string       `json:"slidesUrl,omitempty" mapstructure:"slidesUrl"`
	VideoURL        string       `json:"videoUrl,omitempty" mapstructure:"videoUrl"`
	Description     string       `json:"description,omitempty" mapstructure:"description"`
	AudienceSize    *float64     `json:"audienceSize,omitempty" mapstructure:"audienceSize"`
	Type            SpeakingType `json:"type,omitempty" mapstructure:"type"`
	Topics          []string     `json:"topics,omitempty" mapstructure:"topics"`
}

type Media struct {
	Title       string    `json:"title" mapstructure:"title"`
	Outlet      string    `json:"outlet,omitempty" mapstructure:"outlet"`
	Date        string    `json:"date,omitempty" mapstructure:"date"`
	URL         string    `json:"url,omitempty" mapstructure:"url"`
	Description string    `json:"description,omitempty" mapstructure:"description"`
	Type        MediaType `json:"type,omitempty" mapstructure:"type"`
	Topics      []string  `json:"topics,omitempty" mapstructure:"topics"`
}

type Patent struct {
	Title             string       `json:"title" mapstructure:"title"`
	PatentNumber      string       `json:"patentNumber,omitempty" mapstructure:"patentNumber"`
	FilingDate        string       `json:"filingDate,omitempty" mapstructure:"filingDate"`
	GrantDate         string       `json:"grantDate,omitempty" mapstructure:"grantDate"`
	Office            string       `json:"office,omitempty" mapstructure:"office"`
	URL               string       `json:"url,omitempty" mapstructure:"url"`
	Summary           string       `json:"summary,omitempty" mapstructure:"summary"`
	Inventors         []string     `json:"inventors,omitempty" mapstructure:"inventors"`
	Status            PatentStatus `json:"status,omitempty" mapstructure:"status"`
	ApplicationNumber string       `json:"applicationNumber,omitempty" mapstructure:"applicationNumber"`
}

type Reference struct {
	Name         string            `json:"name" mapstructure:"name"`
	Reference    string            `json:"reference,omitempty" mapstructure:"reference"`
	Position     string            `json:"position,omitempty" mapstructure:"position"`
	Company      string            `json:"company,omitempty" mapstructure:"company"`
	Relationship Relationship      `json:"relationship,omitempty" mapstructure:"relationship"`
	Contact      *ReferenceContact `json:"contact,omitempty" mapstructure:"contact"`
	Date         string            `json:"date,omitempty" mapstructure:"date"`
	URL          string            `json:"url,omitempty" mapstructure:"url"`
}

type ReferenceContact struct {
	Email    string `json:"email,omitempty" mapstructure:"email"`
	Phone    string `json:"phone,omitempty" mapstructure:"phone"`
	LinkedIn string `json:"linkedin,omitempty" mapstructure:"linkedin"`
}

// Meta holds portfolio-level metadata.
// Custom is an opaque bag: its contents are never validated.
type Meta struct {
	LastModified string         `json:"lastModified,omitempty" mapstructure:"lastModified"`
	Version      string         `json:"version,omitempty" mapstructure:"version"`
	Theme        string         `json:"theme,omitempty" mapstructure:"theme"`
	Visibility   Visibility     `json:"visibility,omitempty" mapstructure:"visibility"`
	Custom       map[string]any `json:"custom,omitempty" mapstructure:"custom"`
}
