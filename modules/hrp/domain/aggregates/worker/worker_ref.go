package worker

// Ref is a worker search result. It carries no positions; Href points at
// the full worker document.
type Ref struct {
	netID             string
	regID             string
	employeeID        string
	isActive          bool
	isCurrentFaculty  bool
	workdayPersonType string
	href              string
}

func HydrateRef(
	netID string,
	regID string,
	employeeID string,
	isActive bool,
	isCurrentFaculty bool,
	workdayPersonType string,
	href string,
) Ref {
	return Ref{
		netID:             netID,
		regID:             regID,
		employeeID:        employeeID,
		isActive:          isActive,
		isCurrentFaculty:  isCurrentFaculty,
		workdayPersonType: workdayPersonType,
		href:              href,
	}
}

func (r Ref) NetID() string             { return r.netID }
func (r Ref) RegID() string             { return r.regID }
func (r Ref) EmployeeID() string        { return r.employeeID }
func (r Ref) IsActive() bool            { return r.isActive }
func (r Ref) IsCurrentFaculty() bool    { return r.isCurrentFaculty }
func (r Ref) WorkdayPersonType() string { return r.workdayPersonType }
func (r Ref) Href() string              { return r.href }
