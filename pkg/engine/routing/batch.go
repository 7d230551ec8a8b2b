package routing

import (
	"context"
	"runtime"

	"github.com/aryaseta/costroute/pkg/concurrent"
	"github.com/aryaseta/costroute/pkg/datastructure"
)

// Query is one source/destination/filter triple of a batch.
type Query struct {
	Source      string
	Destination string
	Filter      Filter
}

type batchJob struct {
	idx   int
	query Query
}

type batchResult struct {
	idx    int
	result RouteResult
	err    error
}

// FindMinCostPaths evaluates many queries against one immutable
// snapshot concurrently. Each query owns its own working set, so the
// only shared data is the read-only snapshot. Results come back in
// query order. The first query error (cancellation included) is
// returned after all workers drain.
func (re *RouteEngine) FindMinCostPaths(ctx context.Context, g *datastructure.Graph,
	queries []Query) ([]RouteResult, error) {

	if len(queries) == 0 {
		return []RouteResult{}, nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(queries) {
		numWorkers = len(queries)
	}

	pool := concurrent.NewWorkerPool[batchJob, batchResult](numWorkers, len(queries))
	pool.Start(func(job batchJob) batchResult {
		res, err := re.FindMinCostPath(ctx, g, job.query.Source, job.query.Destination, job.query.Filter)
		return batchResult{idx: job.idx, result: res, err: err}
	})

	for i, q := range queries {
		pool.AddJob(batchJob{idx: i, query: q})
	}
	pool.Close()
	pool.Wait()

	results := make([]RouteResult, len(queries))
	var firstErr error
	for br := range pool.CollectResults() {
		if br.err != nil && firstErr == nil {
			firstErr = br.err
			continue
		}
		results[br.idx] = br.result
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
