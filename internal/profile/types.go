package profile

// Experience is a single job entry extracted from a profile.
type Experience struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	EmploymentType string `json:"employment_type"`
	Duration       string `json:"duration"`
	Description    string `json:"description"`
}

// Education is a single school entry. Everything past the institution name is
// frequently missing from profile pages, so those fields are optional.
type Education struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Grade        string `json:"grade,omitempty"`
}

// Activity is one recent post engagement ("liked this", "reposted this", ...).
type Activity struct {
	Type      string `json:"type"`
	PostedAgo string `json:"posted_ago"`
	Content   string `json:"content"`
}

// LinkedInProfile is a full profile snapshot. Interests and Strengths are
// synthesized by the extraction stage, not copied from the page.
type LinkedInProfile struct {
	Name        string       `json:"name"`
	Headline    string       `json:"headline"`
	About       string       `json:"about"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	Activities  []Activity   `json:"activities"`
	Interests   string       `json:"interests"`
	Strengths   []string     `json:"strengths"`
	Others      string       `json:"others,omitempty"`
}

// Normalize replaces nil collections with empty ones so serialized profiles
// always carry arrays, never null.
func (p *LinkedInProfile) Normalize() {
	if p.Experiences == nil {
		p.Experiences = []Experience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Activities == nil {
		p.Activities = []Activity{}
	}
	if p.Strengths == nil {
		p.Strengths = []string{}
	}
}
