package domain

// ApplicationStatus is one of the fixed labels describing where an email
// sits in the job-application process. Values are case-sensitive and match
// the classification prompt exactly.
type ApplicationStatus string

const (
	StatusApplicationConfirmation ApplicationStatus = "Application confirmation"
	StatusRejection               ApplicationStatus = "Rejection"
	StatusAvailabilityRequest     ApplicationStatus = "Availability request"
	StatusInformationRequest      ApplicationStatus = "Information request"
	StatusAssessmentSent          ApplicationStatus = "Assessment sent"
	StatusInterviewInvitation     ApplicationStatus = "Interview invitation"
	StatusInboundRequest          ApplicationStatus = "Did not apply - inbound request"
	StatusActionRequired          ApplicationStatus = "Action required from company"
	StatusHiringFreeze            ApplicationStatus = "Hiring freeze notification"
	StatusWithdrewApplication     ApplicationStatus = "Withdrew application"
	StatusOfferMade               ApplicationStatus = "Offer made"
	StatusFalsePositive           ApplicationStatus = "False positive"
)

// Classification is the structured result of classifying one email.
// CompanyName and JobTitle are absent by contract when the status is
// "False positive". Never mutated after creation.
type Classification struct {
	CompanyName          string            `json:"company_name,omitempty"`
	JobApplicationStatus ApplicationStatus `json:"job_application_status"`
	JobTitle             string            `json:"job_title,omitempty"`
}
