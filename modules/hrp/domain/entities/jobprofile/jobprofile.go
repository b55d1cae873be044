package jobprofile

// JobProfile identifies the job a position is filled under.
// Both fields are optional upstream.
type JobProfile struct {
	jobCode     *string
	description *string
}

func New(jobCode, description *string) JobProfile {
	return JobProfile{
		jobCode:     jobCode,
		description: description,
	}
}

func (p JobProfile) JobCode() *string     { return p.jobCode }
func (p JobProfile) Description() *string { return p.description }
func (p JobProfile) IsZero() bool         { return p.jobCode == nil && p.description == nil }
