package domain

// BriefingRequest is the input for generating one interview briefing.
type BriefingRequest struct {
	CompanyName      string
	InterviewerNames []string
}

// CompanyInfo is the company overview section of a briefing.
type CompanyInfo struct {
	Description string   `json:"description"`
	Mission     string   `json:"mission"`
	Values      []string `json:"values"`
	RecentNews  []string `json:"recent_news"`
}

// InterviewerBriefing summarizes one interviewer.
type InterviewerBriefing struct {
	Name          string   `json:"name"`
	Info          string   `json:"info"`
	TalkingPoints []string `json:"talking_points"`
}

// BriefingDocument is the generated interview briefing. Interviewers is
// empty or absent when no interviewer names were supplied.
type BriefingDocument struct {
	CompanyInfo          CompanyInfo           `json:"company_info"`
	CompanyTalkingPoints []string              `json:"company_talking_points"`
	Interviewers         []InterviewerBriefing `json:"interviewers,omitempty"`
}

// BriefingError replaces a BriefingDocument when generation failed. The two
// are mutually exclusive in the persisted field; consumers must check the
// "error" key before treating the payload as a document.
type BriefingError struct {
	Error       string `json:"error"`
	CompanyName string `json:"company_name"`
	RawResponse string `json:"raw_response,omitempty"`
}
