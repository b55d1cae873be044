package position

import (
	"time"

	"github.com/iota-uz/hrp/modules/hrp/domain/entities/jobprofile"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/suporg"
)

// Position is one job assignment held by a worker.
// A nil end date means the position is open ended.
type Position struct {
	startDate     *time.Time
	endDate       *time.Time
	title         *string
	jobClass      *string
	ftePercent    *float64
	isPrimary     bool
	location      *string
	orgUnitCode   *string
	posType       *string
	posTimeType   *string
	supervisorEID *string
	jobProfile    jobprofile.JobProfile
	supervisory   suporg.SupervisoryOrganization
}

type Option func(*Position)

func WithStartDate(t *time.Time) Option {
	return func(p *Position) {
		p.startDate = t
	}
}

func WithEndDate(t *time.Time) Option {
	return func(p *Position) {
		p.endDate = t
	}
}

func WithTitle(v *string) Option {
	return func(p *Position) {
		p.title = v
	}
}

func WithJobClass(v *string) Option {
	return func(p *Position) {
		p.jobClass = v
	}
}

func WithFTEPercent(v *float64) Option {
	return func(p *Position) {
		p.ftePercent = v
	}
}

func WithPrimary(v bool) Option {
	return func(p *Position) {
		p.isPrimary = v
	}
}

func WithLocation(v *string) Option {
	return func(p *Position) {
		p.location = v
	}
}

func WithOrgUnitCode(v *string) Option {
	return func(p *Position) {
		p.orgUnitCode = v
	}
}

func WithPositionType(v *string) Option {
	return func(p *Position) {
		p.posType = v
	}
}

func WithTimeType(v *string) Option {
	return func(p *Position) {
		p.posTimeType = v
	}
}

func WithSupervisorEID(v *string) Option {
	return func(p *Position) {
		p.supervisorEID = v
	}
}

func WithJobProfile(jp jobprofile.JobProfile) Option {
	return func(p *Position) {
		p.jobProfile = jp
	}
}

func WithSupervisoryOrganization(o suporg.SupervisoryOrganization) Option {
	return func(p *Position) {
		p.supervisory = o
	}
}

func New(opts ...Option) Position {
	p := Position{}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p Position) StartDate() *time.Time {
	return p.startDate
}

func (p Position) EndDate() *time.Time {
	return p.endDate
}

func (p Position) Title() *string {
	return p.title
}

func (p Position) JobClass() *string {
	return p.jobClass
}

func (p Position) FTEPercent() *float64 {
	return p.ftePercent
}

func (p Position) IsPrimary() bool {
	return p.isPrimary
}

func (p Position) Location() *string {
	return p.location
}

func (p Position) OrgUnitCode() *string {
	return p.orgUnitCode
}

func (p Position) PositionType() *string {
	return p.posType
}

func (p Position) TimeType() *string {
	return p.posTimeType
}

func (p Position) SupervisorEID() *string {
	return p.supervisorEID
}

func (p Position) JobProfile() jobprofile.JobProfile {
	return p.jobProfile
}
func (p Position) SupervisoryOrganization() suporg.SupervisoryOrganization {
	return p.supervisory
}

// IsActive reports whether the position has not ended as of now.
func (p Position) IsActive(now time.Time) bool {
	return IsFutureOrOpen(p.endDate, now)
}

// IsFutureOrOpen is true when end is unset or strictly after now.
func IsFutureOrOpen(end *time.Time, now time.Time) bool {
	return end == nil || end.After(now)
}
