package forma

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Metric is a pairwise shape measure, e.g. IoU or IntersectionOverMin
type Metric func(shape1, shape2 Shape) float32

// prepareAll normalizes every shape once
func prepareAll(shapes []Shape) []*Prepared {
	prepared := make([]*Prepared, len(shapes))
	for i := range shapes {
		prepared[i] = Prepare(shapes[i])
	}
	return prepared
}

// Matrix computes metric for every pair: result[i][j] = metric(rows[i], cols[j]).
// Every shape is normalized once, rows are computed concurrently. Nil ctx means context.Background().
func Matrix(ctx context.Context, rows, cols []Shape, metric Metric) ([][]float32, error) {
	if metric == nil {
		return nil, errors.New("Metric function is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	preparedRows := prepareAll(rows)
	preparedCols := prepareAll(cols)
	result := make([][]float32, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range preparedRows {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := make([]float32, len(preparedCols))
			for j := range preparedCols {
				row[j] = metric(preparedRows[i], preparedCols[j])
			}
			result[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "Can't compute pairwise matrix")
	}
	return result, nil
}

// IoUMatrix is Matrix with IoU metric
func IoUMatrix(ctx context.Context, rows, cols []Shape) ([][]float32, error) {
	return Matrix(ctx, rows, cols, IoU)
}

// IntersectionOverMinMatrix is Matrix with IntersectionOverMin metric
func IntersectionOverMinMatrix(ctx context.Context, rows, cols []Shape) ([][]float32, error) {
	return Matrix(ctx, rows, cols, IntersectionOverMin)
}
