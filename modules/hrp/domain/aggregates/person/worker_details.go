package person

import (
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/employment"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/position"
)

// WorkerDetails is one worker record nested in a person document.
type WorkerDetails struct {
	wid              string
	status           employment.Status
	primaryPosition  *position.Position
	otherPositions   []position.Position
	primaryManagerID *string
}

// NewWorkerDetails buckets positions into the primary slot and the other
// positions. Positions are dropped entirely unless the status is active.
// When more than one position is flagged primary the last one wins,
// together with its supervisor as primary manager.
func NewWorkerDetails(wid string, status employment.Status, positions []position.Position) WorkerDetails {
	wd := WorkerDetails{
		wid:            wid,
		status:         status,
		otherPositions: []position.Position{},
	}
	if !status.IsActive() {
		return wd
	}
	for _, p := range positions {
		if p.IsPrimary() {
			primary := p
			wd.primaryPosition = &primary
			wd.primaryManagerID = p.SupervisorEID()
			continue
		}
		wd.otherPositions = append(wd.otherPositions, p)
	}
	return wd
}

func (w WorkerDetails) WID() string {
	return w.wid
}

func (w WorkerDetails) EmploymentStatus() employment.Status {
	return w.status
}

func (w WorkerDetails) PrimaryPosition() *position.Position {
	return w.primaryPosition
}

func (w WorkerDetails) PrimaryManagerID() *string {
	return w.primaryManagerID
}

func (w WorkerDetails) IsActive() bool {
	return w.status.IsActive()
}

func (w WorkerDetails) OtherActivePositions() []position.Position {
	return w.otherPositions
}

// ActivePositions lists the primary position first, then the others in input order.
func (w WorkerDetails) ActivePositions() []position.Position {
	out := make([]position.Position, 0, len(w.otherPositions)+1)
	if w.primaryPosition != nil {
		out = append(out, *w.primaryPosition)
	}
	return append(out, w.otherPositions...)
}
