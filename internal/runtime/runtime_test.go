package runtime

import (
	"testing"

	"github.com/ezytask/ezytask/internal/config"
	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	t.Setenv(config.EnvDatabase, ":memory:")
	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

func TestNewSeedsStore(t *testing.T) {
	ctx := newTestContext(t)

	assert.Len(t, ctx.Store.Projects(), 3)
	assert.Len(t, ctx.Store.Tasks(), 2)
	assert.Equal(t, "p1", ctx.Store.ActiveProjectID())
}

func TestFormatters(t *testing.T) {
	ctx := newTestContext(t)

	assert.False(t, ctx.IsJSON())
	assert.NotNil(t, ctx.CLIFormatter())
	assert.NotNil(t, ctx.JSONFormatter())

	ctx.Formatter.Format = output.FormatJSON
	assert.True(t, ctx.IsJSON())
}

func TestThemeDefaultsToLight(t *testing.T) {
	ctx := newTestContext(t)

	assert.Equal(t, model.ThemeLight, ctx.Theme())

	require.NoError(t, ctx.BoardRepo.SaveTheme(model.ThemeDark))
	assert.Equal(t, model.ThemeDark, ctx.Theme())
}

func TestAdvisorDisabledWithoutKey(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvAPIKeyFallback, "")
	ctx := newTestContext(t)

	assert.False(t, ctx.Advisor.Available())
}
