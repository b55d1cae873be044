package services

import (
	"context"

	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/appointee"
	"github.com/iota-uz/hrp/modules/hrp/domain/identifier"
	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
)

const appointeePrefix = "/hrp/v1/appointee"

type AppointeeService struct {
	fetcher hrpws.Fetcher
	cfg     config
}

func NewAppointeeService(fetcher hrpws.Fetcher, opts ...Option) *AppointeeService {
	return &AppointeeService{
		fetcher: fetcher,
		cfg:     newConfig("hrp.appointee", opts),
	}
}

// GetByNetID returns nil without an error when the document carries no Person.
func (s *AppointeeService) GetByNetID(ctx context.Context, netID string) (*appointee.Appointee, error) {
	return s.get(ctx, identifier.KindNetID, netID)
}

func (s *AppointeeService) GetByRegID(ctx context.Context, regID string) (*appointee.Appointee, error) {
	return s.get(ctx, identifier.KindRegID, regID)
}

func (s *AppointeeService) GetByEmployeeID(ctx context.Context, employeeID string) (*appointee.Appointee, error) {
	return s.get(ctx, identifier.KindEmployeeID, employeeID)
}

func (s *AppointeeService) Get(ctx context.Context, id string) (*appointee.Appointee, error) {
	kind, err := detectKind(id)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, kind, id)
}

func (s *AppointeeService) get(ctx context.Context, kind identifier.Kind, id string) (*appointee.Appointee, error) {
	path, err := resourcePath(appointeePrefix, kind, id)
	if err != nil {
		return nil, err
	}
	doc, err := getDocument(ctx, s.fetcher, s.cfg.logger, path)
	if err != nil {
		return nil, err
	}
	return hrpws.ToDomainAppointee(doc)
}
