package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeReport_NoChanges(t *testing.T) {
	report, err := ChangeReport([]byte(`{"name":"a"}`), []byte(`{"name": "a"}`), false)
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestChangeReport_ValueChange(t *testing.T) {
	report, err := ChangeReport(
		[]byte(`{"name":"creenv-boilerplate","version":"1.0.0"}`),
		[]byte(`{"name":"myapp","version":"0.0.1"}`),
		false,
	)
	require.NoError(t, err)

	assert.Contains(t, report, "creenv-boilerplate")
	assert.Contains(t, report, "myapp")
	assert.Contains(t, report, "0.0.1")
}

func TestChangeReport_InvalidInput(t *testing.T) {
	_, err := ChangeReport([]byte(`{"name":`), []byte(`{}`), false)
	assert.Error(t, err)
}
