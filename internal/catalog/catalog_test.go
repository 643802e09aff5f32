package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDataset(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, c.Len())
	assert.Len(t, c.List(), 10)
}

func TestGet_KnownCompany(t *testing.T) {
	c := MustLoad()

	co := c.Get("linear-app")
	require.NotNil(t, co)
	assert.Equal(t, "Linear", co.Name)
	assert.Equal(t, "Dev Tools", co.Sector)
	assert.Equal(t, "Series B", co.Stage)
	assert.Equal(t, "https://linear.app", co.Website)
	assert.NotEmpty(t, co.Description)
	assert.NotEmpty(t, co.Tags)
}

func TestGet_UnknownCompany(t *testing.T) {
	c := MustLoad()

	assert.Nil(t, c.Get("does-not-exist"))
	assert.Nil(t, c.Get(""))
}

func TestSectors_DistinctFirstSeenOrder(t *testing.T) {
	c := MustLoad()

	sectors := c.Sectors()
	assert.Equal(t, []string{
		"Dev Tools", "AI / Media", "Productivity", "AI",
		"Dev Infrastructure", "AI / Dev Tools", "Analytics",
	}, sectors)
}

func TestStages_DistinctFirstSeenOrder(t *testing.T) {
	c := MustLoad()

	stages := c.Stages()
	assert.Equal(t, []string{
		"Series B", "Series C", "Acquired", "Seed", "Series A",
	}, stages)
}

func TestCompanySignals_Loaded(t *testing.T) {
	c := MustLoad()

	co := c.Get("perplexity")
	require.NotNil(t, co)
	require.NotEmpty(t, co.Signals)
	for _, sig := range co.Signals {
		assert.NotEmpty(t, sig.Type)
		assert.NotEmpty(t, sig.Title)
		assert.NotEmpty(t, sig.Date)
	}
}
