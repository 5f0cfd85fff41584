package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/aretw0/branchtale/pkg/ports"
)

// TableSourceContractTest is a reusable test suite that verifies if an adapter complies with ports.TableSource.
// full must serve every table in setupData; nodesOnly must serve NODES but not CHOICES.
func TableSourceContractTest(t *testing.T, full ports.TableSource, setupData map[domain.Table][]byte, nodesOnly ports.TableSource) {
	t.Helper()

	ctx := context.Background()

	t.Run("Fetch_Success", func(t *testing.T) {
		for table, expected := range setupData {
			content, err := full.Fetch(ctx, table)
			if err != nil {
				t.Fatalf("unexpected error fetching %s: %v", table, err)
			}
			if string(content) != string(expected) {
				t.Errorf("content mismatch for %s. got %q, want %q", table, content, expected)
			}
		}
	})

	t.Run("Fetch_NotFound", func(t *testing.T) {
		if _, err := nodesOnly.Fetch(ctx, domain.TableNodes); err != nil {
			t.Fatalf("unexpected error fetching %s: %v", domain.TableNodes, err)
		}

		_, err := nodesOnly.Fetch(ctx, domain.TableChoices)
		if err == nil {
			t.Fatal("expected error for missing table, got nil")
		}

		var loadErr *domain.LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *domain.LoadError, got %T: %v", err, err)
		}
		if loadErr.Table != domain.TableChoices {
			t.Errorf("expected error to name %s, got %s", domain.TableChoices, loadErr.Table)
		}
	})
}
