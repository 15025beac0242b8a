package domain

import "time"

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Status is the publication state of a content document.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Tier classifies news and intelligence cards by severity.
type Tier string

const (
	Tier1 Tier = "tier_1"
	Tier2 Tier = "tier_2"
	Tier3 Tier = "tier_3"
)

// User represents an account in the system.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// AuthResult represents a successful authentication outcome.
type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresIn   int64
}

// Challenge is the server-side record of an outstanding OTP awaiting
// verification. Keyed by the owning email in the challenge store.
type Challenge struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
}

// Expired reports whether the challenge is past its expiry at the given time.
func (c *Challenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// TokenClaims represents the claim set carried by an access token.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      Role
	IssuedAt  int64
	ExpiresAt int64
}

// Stat is a headline figure attached to news articles and cards.
type Stat struct {
	Value string `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

// News represents a news article document.
type News struct {
	ID            string
	Title         string
	Description   string
	Summary       string
	Source        string
	SourceURL     string
	ImageURL      string
	Category      string
	Tier          Tier
	Status        Status
	Tags          []string
	AffectedRoles []string
	Companies     []string
	KeyStat       *Stat
	SecondaryStat *Stat
	PublishedDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
}

// Report represents a long-form report document.
type Report struct {
	ID            string
	Title         string
	Summary       string
	Content       string
	FileURL       string
	PDFURL        string
	CoverImageURL string
	Tags          []string
	Status        Status
	ReadingTime   int
	Author        string
	PublishedDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
}

// IntelligenceCard represents a landing-page / archive card document.
type IntelligenceCard struct {
	ID              string
	Title           string
	TitleHighlight  string
	Company         string
	CompanyIcon     string
	CompanyGradient string
	CompanyLogo     string
	Category        string
	Excerpt         string
	Tier            Tier
	TierLabel       string
	Status          Status
	Stat1           *Stat
	Stat2           *Stat
	Stat2Type       string
	Stat3           *Stat
	RPIScore        int
	JobsAffected    string
	AIInvestment    string
	ReportID        string
	AnalysisURL     string
	IsFeatured      bool
	DisplayOrder    int
	Industry        string
	Tags            []string
	PublishedDate   time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       string
}

// Subscription represents a newsletter subscription.
type Subscription struct {
	ID        string
	Email     string
	Role      string
	Interest  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Page describes a pagination request.
type Page struct {
	Number int
	Size   int
}

// Skip returns the number of documents to skip for this page.
func (p Page) Skip() int64 {
	return int64((p.Number - 1) * p.Size)
}

// Pages returns the total page count for the given total item count.
func (p Page) Pages(total int64) int {
	if total == 0 {
		return 1
	}
	pages := int(total) / p.Size
	if int(total)%p.Size != 0 {
		pages++
	}
	return pages
}

// NewsFilter narrows news listings.
type NewsFilter struct {
	Status   Status
	Category string
	Tier     Tier
	Search   string
}

// ReportFilter narrows report listings.
type ReportFilter struct {
	Status Status
	Tag    string
	Search string
}

// CardFilter narrows intelligence card listings.
type CardFilter struct {
	Status   Status
	Tier     Tier
	Category string
	Featured *bool
}
