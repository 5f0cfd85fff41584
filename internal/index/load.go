package index

import (
	"context"
	"errors"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/aretw0/branchtale/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// Load fetches both tables concurrently and builds the index.
// The first failure cancels the other fetch and is returned as a *domain.LoadError.
// No index is returned unless both tables were retrieved and parsed.
func Load(ctx context.Context, src ports.TableSource) (*Index, error) {
	var rawNodes, rawChoices []byte

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := fetch(gctx, src, domain.TableNodes)
		rawNodes = data
		return err
	})
	g.Go(func() error {
		data, err := fetch(gctx, src, domain.TableChoices)
		rawChoices = data
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nodes, err := DecodeNodes(rawNodes)
	if err != nil {
		return nil, malformed(domain.TableNodes, err)
	}
	choices, err := DecodeChoices(rawChoices)
	if err != nil {
		return nil, malformed(domain.TableChoices, err)
	}

	return Build(nodes, choices), nil
}

func fetch(ctx context.Context, src ports.TableSource, table domain.Table) ([]byte, error) {
	data, err := src.Fetch(ctx, table)
	if err == nil {
		return data, nil
	}

	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		return nil, err
	}
	return nil, &domain.LoadError{Table: table, Err: err}
}

func malformed(table domain.Table, err error) error {
	return &domain.LoadError{Table: table, Reason: "malformed content", Err: err}
}
