package worker

import (
	"time"

	"github.com/iota-uz/hrp/modules/hrp/domain/entities/employment"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/position"
)

// Worker is the single employment record view served by the worker endpoint.
type Worker struct {
	netID            string
	regID            string
	employeeID       string
	status           employment.Status
	primaryPosition  *position.Position
	otherPositions   []position.Position
	primaryManagerID *string
}

// New keeps positions only for active or retired workers. The last
// primary-flagged position takes the primary slot and sets the primary
// manager; other positions are kept when they are still active at now.
func New(
	netID string,
	regID string,
	employeeID string,
	status employment.Status,
	positions []position.Position,
	now time.Time,
) Worker {
	w := Worker{
		netID:          netID,
		regID:          regID,
		employeeID:     employeeID,
		status:         status,
		otherPositions: []position.Position{},
	}
	if !status.IsActiveOrRetired() {
		return w
	}
	for _, p := range positions {
		if p.IsPrimary() {
			primary := p
			w.primaryPosition = &primary
			w.primaryManagerID = p.SupervisorEID()
			continue
		}
		if p.IsActive(now) {
			w.otherPositions = append(w.otherPositions, p)
		}
	}
	return w
}

func (w Worker) NetID() string                       { return w.netID }
func (w Worker) RegID() string                       { return w.regID }
func (w Worker) EmployeeID() string                  { return w.employeeID }
func (w Worker) EmploymentStatus() employment.Status { return w.status }
func (w Worker) PrimaryPosition() *position.Position { return w.primaryPosition }
func (w Worker) PrimaryManagerID() *string           { return w.primaryManagerID }

func (w Worker) OtherActivePositions() []position.Position {
	return w.otherPositions
}

func (w Worker) ActivePositions() []position.Position {
	out := make([]position.Position, 0, len(w.otherPositions)+1)
	if w.primaryPosition != nil {
		out = append(out, *w.primaryPosition)
	}
	return append(out, w.otherPositions...)
}
