package services

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/worker"
	"github.com/iota-uz/hrp/modules/hrp/domain/identifier"
	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
)

const workerPrefix = "/hrp/v2/worker"

type WorkerService struct {
	fetcher hrpws.Fetcher
	cfg     config
}

func NewWorkerService(fetcher hrpws.Fetcher, opts ...Option) *WorkerService {
	return &WorkerService{
		fetcher: fetcher,
		cfg:     newConfig("hrp.worker", opts),
	}
}

func (s *WorkerService) GetByNetID(ctx context.Context, netID string) (worker.Worker, error) {
	return s.get(ctx, identifier.KindNetID, netID)
}

func (s *WorkerService) GetByRegID(ctx context.Context, regID string) (worker.Worker, error) {
	return s.get(ctx, identifier.KindRegID, regID)
}

func (s *WorkerService) GetByEmployeeID(ctx context.Context, employeeID string) (worker.Worker, error) {
	return s.get(ctx, identifier.KindEmployeeID, employeeID)
}

func (s *WorkerService) Get(ctx context.Context, id string) (worker.Worker, error) {
	kind, err := detectKind(id)
	if err != nil {
		return worker.Worker{}, err
	}
	return s.get(ctx, kind, id)
}

func (s *WorkerService) get(ctx context.Context, kind identifier.Kind, id string) (worker.Worker, error) {
	path, err := resourcePath(workerPrefix, kind, id)
	if err != nil {
		return worker.Worker{}, err
	}
	doc, err := getDocument(ctx, s.fetcher, s.cfg.logger, path)
	if err != nil {
		return worker.Worker{}, err
	}
	return hrpws.ToDomainWorker(doc, s.cfg.now())
}

// Search returns a reference for every worker matching params across all pages.
func (s *WorkerService) Search(ctx context.Context, params WorkerSearchParams) ([]worker.Ref, error) {
	if params.PageSize == 0 {
		params.PageSize = s.cfg.pageSize
	}
	query, err := encodeSearchParams(&params)
	if err != nil {
		return nil, err
	}

	var refs []worker.Ref
	err = paginate(ctx, s.fetcher, s.cfg, workerPrefix+".json?"+query, "Workers", func(entry gjson.Result) error {
		refs = append(refs, hrpws.ToDomainWorkerRef(entry))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refs, nil
}
