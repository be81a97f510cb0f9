package get_orders

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListQuery_AllFilters(t *testing.T) {
	query := url.Values{}
	query.Set("start_date", "2024-06-01")
	query.Set("end_date", "2024-06-30")
	query.Set("status", "pending")
	query.Set("include_cancelled", "true")

	req, err := ParseListQuery(query)

	require.NoError(t, err)
	require.NotNil(t, req.StartDate)
	assert.Equal(t, "2024-06-01", req.StartDate.Format("2006-01-02"))
	require.NotNil(t, req.EndDate)
	assert.Equal(t, "2024-06-30", req.EndDate.Format("2006-01-02"))
	require.NotNil(t, req.Status)
	assert.Equal(t, "pending", *req.Status)
	assert.True(t, req.IncludeCancelled)
}

func TestParseListQuery_Empty(t *testing.T) {
	req, err := ParseListQuery(url.Values{})

	require.NoError(t, err)
	assert.Nil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
	assert.Nil(t, req.Status)
	assert.False(t, req.IncludeCancelled)
}

func TestParseListQuery_BadDate(t *testing.T) {
	query := url.Values{}
	query.Set("start_date", "06/01/2024")

	_, err := ParseListQuery(query)

	assert.Error(t, err)
}
