package advisor

// DefaultRole is used when a prep request names no role
const DefaultRole = "Software Engineer"

// DefaultPrepPeriod is used when a company prep request names no period
const DefaultPrepPeriod = "4 Weeks"

// InterviewRound is one stage of a completed mock assessment
type InterviewRound struct {
	Round     string `json:"round"`
	IsCorrect *bool  `json:"isCorrect,omitempty"`
	Question  string `json:"question,omitempty"`
	Answer    string `json:"answer,omitempty"`
	Problem   string `json:"problem,omitempty"`
	Solution  string `json:"solution,omitempty"`
}

// CompanyPrepRequest asks for a company specific study plan
type CompanyPrepRequest struct {
	CompanyType string
	CompanyName string
	TimePeriod  string
	Email       string
}

// CompanyPrepResult wraps the plan the way the frontend expects it
type CompanyPrepResult struct {
	Success bool   `json:"success"`
	Plan    any    `json:"plan,omitempty"`
	Message string `json:"message,omitempty"`
}

// HREmailRequest holds the fields of a job application email
type HREmailRequest struct {
	HRName     string
	Company    string
	UserName   string
	Skills     []string
	TargetRole string
	Email      string
}

// SummaryRequest asks for a free-text professional summary
type SummaryRequest struct {
	Role   string
	Skills []string
	Email  string
}

// SummaryResult carries the generated summary text
type SummaryResult struct {
	Summary string `json:"summary"`
}

// RoadmapWeek is one block of a static preparation roadmap
type RoadmapWeek struct {
	Week  string   `json:"week"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// Roadmap is the static plan returned by PrepRoadmap
type Roadmap struct {
	Roadmap []RoadmapWeek `json:"roadmap"`
	Role    string        `json:"role"`
}

// RadarPoint is one axis of the interview performance chart
type RadarPoint struct {
	Subject  string `json:"subject"`
	Score    int    `json:"A"`
	FullMark int    `json:"fullMark"`
}

// InterviewReport is the offline performance report
type InterviewReport struct {
	Status     string       `json:"status"`
	Score      int          `json:"score"`
	Feedback   []string     `json:"feedback"`
	Companies  []string     `json:"companies"`
	FocusAreas []string     `json:"focus_areas"`
	GraphData  []RadarPoint `json:"graph_data"`
}
