package person

type Person struct {
	netID            string
	regID            string
	employeeID       string
	studentID        *string
	isActive         bool
	primaryManagerID *string
	workerDetails    []WorkerDetails
}

type Option func(*Person)

func WithNetID(netID string) Option {
	return func(p *Person) {
		p.netID = netID
	}
}

func WithStudentID(studentID *string) Option {
	return func(p *Person) {
		p.studentID = studentID
	}
}

// WithWorkerDetails keeps only active worker records. The person is active
// if any record is. The primary manager comes from the last record that
// has one, so an earlier record's manager is overwritten by a later one.
// This mirrors the upstream client and is kept for compatibility.
func WithWorkerDetails(details []WorkerDetails) Option {
	return func(p *Person) {
		for _, wd := range details {
			if wd.IsActive() {
				p.isActive = true
				p.workerDetails = append(p.workerDetails, wd)
			}
			if wd.PrimaryManagerID() != nil {
				p.primaryManagerID = wd.PrimaryManagerID()
			}
		}
	}
}

func New(employeeID, regID string, opts ...Option) Person {
	p := Person{
		employeeID:    employeeID,
		regID:         regID,
		workerDetails: []WorkerDetails{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p Person) NetID() string                  { return p.netID }
func (p Person) RegID() string                  { return p.regID }
func (p Person) EmployeeID() string             { return p.employeeID }
func (p Person) StudentID() *string             { return p.studentID }
func (p Person) IsActive() bool                 { return p.isActive }
func (p Person) PrimaryManagerID() *string      { return p.primaryManagerID }
func (p Person) WorkerDetails() []WorkerDetails { return p.workerDetails }
