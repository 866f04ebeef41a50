package validate

import (
	"strings"
	"testing"

	"github.com/ezytask/ezytask/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectName(t *testing.T) {
	assert.NoError(t, ProjectName("Core Strategy"))
	assert.Error(t, ProjectName(""))
	assert.Error(t, ProjectName("   "))
	assert.Error(t, ProjectName(strings.Repeat("x", 129)))
}

func TestTaskTitle(t *testing.T) {
	assert.NoError(t, TaskTitle(""))
	assert.NoError(t, TaskTitle("Ship the release"))
	assert.Error(t, TaskTitle(strings.Repeat("x", 257)))
}

func TestHexColor(t *testing.T) {
	assert.NoError(t, HexColor(""))
	assert.NoError(t, HexColor("#FF5733"))
	assert.Error(t, HexColor("#FFF"))
	assert.Error(t, HexColor("blue"))
}

func TestISODate(t *testing.T) {
	assert.NoError(t, ISODate("2024-06-15"))
	assert.Error(t, ISODate("2024-6-15"), "must be zero-padded")
	assert.Error(t, ISODate("15/06/2024"))
	assert.Error(t, ISODate("tomorrow"))
}

func TestStatus(t *testing.T) {
	status, err := Status("in progress")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, status)

	_, err = Status("archived")
	assert.Error(t, err)
}

func TestPriority(t *testing.T) {
	priority, err := Priority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, priority)

	_, err = Priority("critical")
	assert.Error(t, err)
}
