package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// sequentialIDs returns deterministic IDs: prefix-1, prefix-2, ...
func sequentialIDs(prefix string) usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// newAreaWith creates a detached area holding widgets with the given names.
func newAreaWith(t *testing.T, uc *usecase.ManageLayoutUseCase, names ...string) *entity.DockArea {
	t.Helper()
	area := uc.NewArea()
	for _, name := range names {
		require.NoError(t, uc.AddWidget(testContext(), area, entity.NewDockWidget(name, ""), -1))
	}
	return area
}

func areaIDs(c *entity.DockContainer) []string {
	var ids []string
	for _, a := range c.Areas() {
		ids = append(ids, a.ID)
	}
	return ids
}
