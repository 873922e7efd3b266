package domain

type SectionItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type CallToAction struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

type LandingSection struct {
	ID          string         `json:"id"`
	Badge       string         `json:"badge,omitempty"`
	Headline    string         `json:"headline"`
	Subheadline string         `json:"subheadline,omitempty"`
	Items       []SectionItem  `json:"items,omitempty"`
	Actions     []CallToAction `json:"actions,omitempty"`
}

type LandingPage struct {
	Sections []LandingSection `json:"sections"`
}
