package scenario_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formcheck/application/pages"
	"formcheck/application/scenario"
	"formcheck/domain/entities"
	"formcheck/infrastructure/browser"
	"formcheck/infrastructure/browser/browsertest"
	"formcheck/infrastructure/storage"
)

func TestBrowser_CatalogAgainstReplica(t *testing.T) {
	// skips unless a browser can be launched
	_, url := browsertest.Session(t)

	store, err := storage.NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	cfg := pages.Config{
		TargetURL:  url,
		UploadFile: browsertest.UploadFile(t),
		Timeouts: pages.Timeouts{
			Assert:     3 * time.Second,
			PageLoad:   5 * time.Second,
			Validation: 3 * time.Second,
			Dropdown:   3 * time.Second,
			Poll:       50 * time.Millisecond,
		},
	}
	factory := &browser.Factory{Options: browsertest.Options(url), Logger: browsertest.Logger(t)}

	summary, err := scenario.NewRunner(factory, cfg, browsertest.Logger(t), scenario.WithStore(store)).
		Run(context.Background(), scenario.Catalog())
	require.NoError(t, err)

	for _, res := range summary.Results {
		assert.Equal(t, entities.ScenarioPassed, res.Status, "%s: %s", res.Scenario, res.Error)
	}
	assert.True(t, summary.OK())
}
