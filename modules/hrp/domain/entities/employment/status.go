package employment

import "time"

// Status is a worker's employment status as reported by HRP.
// The zero value is an inactive status with no dates.
type Status struct {
	status            string
	statusCode        string
	isActive          bool
	isRetired         bool
	isTerminated      bool
	hireDate          *time.Time
	retirementDate    *time.Time
	terminationDate   *time.Time
	endEmploymentDate *time.Time
}

type Option func(*Status)

func WithStatusCode(code string) Option {
	return func(s *Status) {
		s.statusCode = code
	}
}

func WithActive(v bool) Option {
	return func(s *Status) {
		s.isActive = v
	}
}

func WithRetired(v bool) Option {
	return func(s *Status) {
		s.isRetired = v
	}
}

func WithTerminated(v bool) Option {
	return func(s *Status) {
		s.isTerminated = v
	}
}

func WithHireDate(t *time.Time) Option {
	return func(s *Status) {
		s.hireDate = t
	}
}

func WithRetirementDate(t *time.Time) Option {
	return func(s *Status) {
		s.retirementDate = t
	}
}

func WithTerminationDate(t *time.Time) Option {
	return func(s *Status) {
		s.terminationDate = t
	}
}

func WithEndEmploymentDate(t *time.Time) Option {
	return func(s *Status) {
		s.endEmploymentDate = t
	}
}

func NewStatus(status string, opts ...Option) Status {
	s := Status{status: status}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Status) Status() string                { return s.status }
func (s Status) StatusCode() string            { return s.statusCode }
func (s Status) IsActive() bool                { return s.isActive }
func (s Status) IsRetired() bool               { return s.isRetired }
func (s Status) IsTerminated() bool            { return s.isTerminated }
func (s Status) HireDate() *time.Time          { return s.hireDate }
func (s Status) RetirementDate() *time.Time    { return s.retirementDate }
func (s Status) TerminationDate() *time.Time   { return s.terminationDate }
func (s Status) EndEmploymentDate() *time.Time { return s.endEmploymentDate }

// IsActiveOrRetired is the gate used by the worker view, which keeps
// positions for retirees as well.
func (s Status) IsActiveOrRetired() bool {
	return s.isActive || s.isRetired
}
