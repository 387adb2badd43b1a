package catalog

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testBase = "https://catalog.test/api/v1"

const pageOneBody = `{
  "pagination": {"total": 42, "limit": 10, "offset": 0, "total_pages": 5, "current_page": 1},
  "data": [
    {"id": 1, "title": "Nighthawks", "category_titles": ["Painting", "American"]},
    {"id": 2, "title": null, "category_titles": []},
    {"id": 3, "title": "Untitled", "category_titles": null},
    {"id": 4, "title": "Study", "category_titles": ["Drawing"]}
  ]
}`

func newMockClient(t *testing.T, cfg Config) (*Client, *httpmock.MockTransport, *Metrics) {
	t.Helper()
	mock := httpmock.NewMockTransport()
	cfg.HTTPClient = &http.Client{Transport: mock}
	if cfg.BaseURL == "" {
		cfg.BaseURL = testBase
	}
	metrics := NewMetrics()
	c, err := New(cfg, zerolog.Nop(), metrics)
	require.NoError(t, err)
	return c, mock, metrics
}

func TestFetchPageNormalizesRecords(t *testing.T) {
	t.Parallel()

	c, mock, _ := newMockClient(t, Config{PageLimit: 10})
	mock.RegisterResponderWithQuery(http.MethodGet, testBase+"/artworks",
		map[string]string{"page": "1", "limit": "10"},
		httpmock.NewStringResponder(http.StatusOK, pageOneBody))

	p, err := c.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, p.Number)
	require.Equal(t, 42, p.Total)
	require.Equal(t, 5, p.TotalPages)
	require.Equal(t, []Record{
		{ID: 1, Title: "Nighthawks", CategoryTitles: "Painting, American"},
		{ID: 2, Title: "", CategoryTitles: "N/A"},
		{ID: 3, Title: "Untitled", CategoryTitles: "N/A"},
		{ID: 4, Title: "Study", CategoryTitles: "Drawing"},
	}, p.Records)
}

func TestFetchPageIsIdempotent(t *testing.T) {
	t.Parallel()

	c, mock, _ := newMockClient(t, Config{PageLimit: 10})
	mock.RegisterResponderWithQuery(http.MethodGet, testBase+"/artworks",
		map[string]string{"page": "1", "limit": "10"},
		httpmock.NewStringResponder(http.StatusOK, pageOneBody))

	first, err := c.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	second, err := c.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 2, mock.GetTotalCallCount())
}

func TestFetchPageWithoutLimitSendsOnlyPage(t *testing.T) {
	t.Parallel()

	c, mock, _ := newMockClient(t, Config{})
	mock.RegisterResponderWithQuery(http.MethodGet, testBase+"/artworks",
		map[string]string{"page": "3"},
		httpmock.NewStringResponder(http.StatusOK, pageOneBody))

	_, err := c.FetchPage(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, testBase+"/artworks?page=3", c.PageURL(3))
}

func TestFetchPageSetsRequestHeaders(t *testing.T) {
	t.Parallel()

	c, mock, _ := newMockClient(t, Config{UserAgent: "artgrid-test/1.0"})
	var got http.Header
	mock.RegisterResponder(http.MethodGet, "=~^"+testBase+"/artworks",
		func(req *http.Request) (*http.Response, error) {
			got = req.Header.Clone()
			return httpmock.NewStringResponse(http.StatusOK, pageOneBody), nil
		})

	_, err := c.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "artgrid-test/1.0", got.Get("User-Agent"))
	require.Equal(t, "application/json", got.Get("Accept"))
	require.Len(t, got.Get("X-Request-ID"), 36)
}

func TestFetchPageFailureClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		responder httpmock.Responder
		class     ErrorClass
		status    int
	}{
		{name: "network", responder: httpmock.NewErrorResponder(errors.New("connection refused")), class: ErrorClassNetwork},
		{name: "non 2xx", responder: httpmock.NewStringResponder(http.StatusBadGateway, `{}`), class: ErrorClassStatus, status: http.StatusBadGateway},
		{name: "bad json", responder: httpmock.NewStringResponder(http.StatusOK, `{"data": [`), class: ErrorClassDecode, status: http.StatusOK},
		{name: "missing data", responder: httpmock.NewStringResponder(http.StatusOK, `{"pagination": {"total": 1}}`), class: ErrorClassShape, status: http.StatusOK},
		{name: "missing pagination", responder: httpmock.NewStringResponder(http.StatusOK, `{"data": []}`), class: ErrorClassShape, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock, metrics := newMockClient(t, Config{})
			mock.RegisterResponder(http.MethodGet, "=~^"+testBase+"/artworks", tt.responder)

			_, err := c.FetchPage(context.Background(), 2)
			require.Error(t, err)
			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			require.Equal(t, tt.class, fe.Class)
			require.Equal(t, tt.status, fe.StatusCode)
			require.Equal(t, 2, fe.Page)
			require.False(t, IsCanceled(err))

			families, err := metrics.Registry.Gather()
			require.NoError(t, err)
			require.NotEmpty(t, families)
		})
	}
}

func TestFetchPageMissingDataWrapsSentinel(t *testing.T) {
	t.Parallel()

	c, mock, _ := newMockClient(t, Config{})
	mock.RegisterResponder(http.MethodGet, "=~^"+testBase+"/artworks",
		httpmock.NewStringResponder(http.StatusOK, `{"pagination": {"total": 3}}`))

	_, err := c.FetchPage(context.Background(), 1)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestFetchPageCanceled(t *testing.T) {
	t.Parallel()

	c, mock, _ := newMockClient(t, Config{Timeout: time.Second})
	mock.RegisterResponder(http.MethodGet, "=~^"+testBase+"/artworks",
		func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchPage(ctx, 1)
	require.Error(t, err)
	require.True(t, IsCanceled(err))
}

func TestFetchPageRejectsInvalidPage(t *testing.T) {
	t.Parallel()

	c, mock, _ := newMockClient(t, Config{})
	_, err := c.FetchPage(context.Background(), 0)
	require.Error(t, err)
	require.Zero(t, mock.GetTotalCallCount())
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{BaseURL: "ftp://example.com"}, zerolog.Nop(), nil)
	require.Error(t, err)
	_, err = New(Config{PageLimit: -1}, zerolog.Nop(), nil)
	require.Error(t, err)

	c, err := New(Config{}, zerolog.Nop(), nil)
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL+"/artworks?page=1", c.PageURL(1))
}
