package services

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/person"
	"github.com/iota-uz/hrp/modules/hrp/domain/identifier"
	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
)

const (
	personPrefix       = "/hrp/v3/person"
	futureWorkerSuffix = "future_worker=true"
)

type PersonService struct {
	fetcher hrpws.Fetcher
	cfg     config
}

func NewPersonService(fetcher hrpws.Fetcher, opts ...Option) *PersonService {
	return &PersonService{
		fetcher: fetcher,
		cfg:     newConfig("hrp.person", opts),
	}
}

func (s *PersonService) GetByNetID(ctx context.Context, netID string, includeFuture bool) (person.Person, error) {
	return s.get(ctx, identifier.KindNetID, netID, includeFuture)
}

func (s *PersonService) GetByRegID(ctx context.Context, regID string, includeFuture bool) (person.Person, error) {
	return s.get(ctx, identifier.KindRegID, regID, includeFuture)
}

func (s *PersonService) GetByEmployeeID(ctx context.Context, employeeID string, includeFuture bool) (person.Person, error) {
	return s.get(ctx, identifier.KindEmployeeID, employeeID, includeFuture)
}

// Get looks a person up by any identifier kind, detected from its format.
func (s *PersonService) Get(ctx context.Context, id string, includeFuture bool) (person.Person, error) {
	kind, err := detectKind(id)
	if err != nil {
		return person.Person{}, err
	}
	return s.get(ctx, kind, id, includeFuture)
}

func (s *PersonService) get(ctx context.Context, kind identifier.Kind, id string, includeFuture bool) (person.Person, error) {
	path, err := resourcePath(personPrefix, kind, id)
	if err != nil {
		return person.Person{}, err
	}
	if includeFuture {
		path += "?" + futureWorkerSuffix
	}

	doc, err := getDocument(ctx, s.fetcher, s.cfg.logger, path)
	if err != nil {
		return person.Person{}, err
	}
	return hrpws.ToDomainPerson(doc)
}

// Search returns every person matching params, following pagination links
// until the service reports no further page.
func (s *PersonService) Search(ctx context.Context, params PersonSearchParams) ([]person.Person, error) {
	if params.PageSize == 0 {
		params.PageSize = s.cfg.pageSize
	}
	query, err := encodeSearchParams(&params)
	if err != nil {
		return nil, err
	}

	var persons []person.Person
	err = paginate(ctx, s.fetcher, s.cfg, personPrefix+".json?"+query, "Persons", func(entry gjson.Result) error {
		p, err := hrpws.ToDomainPerson(entry)
		if err != nil {
			return err
		}
		persons = append(persons, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return persons, nil
}
