package domain_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestLoadError_Message(t *testing.T) {
	cause := errors.New("unexpected EOF")

	tests := []struct {
		name string
		err  *domain.LoadError
		want string
	}{
		{
			name: "Status",
			err:  &domain.LoadError{Table: domain.TableNodes, Status: http.StatusNotFound},
			want: "failed to load NODES.json (404 Not Found)",
		},
		{
			name: "Reason And Cause",
			err:  &domain.LoadError{Table: domain.TableChoices, Reason: "malformed content", Err: cause},
			want: "failed to load CHOICES.json: malformed content: unexpected EOF",
		},
		{
			name: "Reason Only",
			err:  &domain.LoadError{Table: domain.TableNodes, Reason: "not found"},
			want: "failed to load NODES.json: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestLoadError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("boot: %w", &domain.LoadError{Table: domain.TableNodes, Err: cause})

	var loadErr *domain.LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Equal(t, domain.TableNodes, loadErr.Table)
	assert.ErrorIs(t, err, cause)
}

func TestTraversalErrors(t *testing.T) {
	missing := &domain.MissingNodeError{NodeID: "A42"}
	assert.ErrorIs(t, missing, domain.ErrMissingNode)
	assert.Equal(t, "missing node in NODES table: A42", missing.Error())

	malformed := &domain.MalformedChoiceError{ChoiceID: "AC07"}
	assert.ErrorIs(t, malformed, domain.ErrMalformedChoice)
	assert.Equal(t, "choice AC07 has no LEADS_TO value", malformed.Error())
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnRestart: func(_ context.Context, _ *domain.EventBase) { calls = append(calls, "a") },
	}
	b := domain.LifecycleHooks{
		OnRestart: func(_ context.Context, _ *domain.EventBase) { calls = append(calls, "b") },
		OnSummary: func(_ context.Context, _ *domain.NodeEvent) { calls = append(calls, "summary") },
	}

	merged := a.Merge(b)
	merged.OnRestart(context.Background(), &domain.EventBase{})
	merged.OnSummary(context.Background(), &domain.NodeEvent{})

	assert.Nil(t, merged.OnNodeEnter)
	assert.Equal(t, []string{"a", "b", "summary"}, calls)
}
