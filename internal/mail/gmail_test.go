package mail

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

func TestBuildGmailQueryPassesUserQueryThrough(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	q := buildGmailQuery(domain.FetchQuery{Query: "is:unread from:client"}, now)

	assert.Equal(t, "is:unread from:client", q)
}

func TestBuildGmailQueryAddsRecencyFilter(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	q := buildGmailQuery(domain.FetchQuery{Query: "is:unread", OnlyRecent: true}, now)

	assert.Equal(t, "is:unread after:2025/03/08", q)
}

func TestBuildGmailQueryRecentOnly(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	q := buildGmailQuery(domain.FetchQuery{OnlyRecent: true}, now)

	assert.Equal(t, "after:2025/03/08", q)
}

func TestBuildGmailQueryEmpty(t *testing.T) {
	q := buildGmailQuery(domain.FetchQuery{Query: "   "}, time.Now())

	assert.Equal(t, "", q)
}

func TestDecodeBase64URLHandlesBothAlphabets(t *testing.T) {
	// Standard URL-safe with padding.
	data, err := decodeBase64URL("aGVsbG8=")
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	// Raw (unpadded) variant, as the Gmail API sometimes returns.
	data, err = decodeBase64URL("aGVsbG8")
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

// fakeGmail is a minimal Gmail REST backend for exercising Fetch: list pages
// keyed by page token, full messages keyed by id, with per-request failure
// injection.
type fakeGmail struct {
	pages    map[string]string
	msgs     map[string]string
	pageFail map[string]bool
	getFail  map[string]bool
	gets     int
	lists    int
}

func (f *fakeGmail) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if strings.HasSuffix(r.URL.Path, "/messages") {
		f.lists++
		token := r.URL.Query().Get("pageToken")
		if f.pageFail[token] {
			http.Error(w, `{"error":{"code":500,"message":"backend error"}}`, http.StatusInternalServerError)
			return
		}
		io.WriteString(w, f.pages[token])
		return
	}
	f.gets++
	id := path.Base(r.URL.Path)
	if f.getFail[id] {
		http.Error(w, `{"error":{"code":500,"message":"backend error"}}`, http.StatusInternalServerError)
		return
	}
	io.WriteString(w, f.msgs[id])
}

func gmailMessageJSON(id string) string {
	return fmt.Sprintf(`{"id":%q,"threadId":"t-%s","internalDate":"1700000000000","payload":{"mimeType":"text/plain","headers":[{"name":"From","value":"Alice Client <alice@client.example>"},{"name":"Subject","value":"Website rebuild"}],"body":{"data":"aGVsbG8gd29ybGQ"}}}`, id, id)
}

func newTestGmailProvider(t *testing.T, backend *fakeGmail) (*GmailProvider, *FileDedupCache) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	svc, err := gmail.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	dedup, err := NewFileDedupCache(filepath.Join(t.TempDir(), "dedup.json"), 100)
	require.NoError(t, err)

	return &GmailProvider{
		cfg:       GmailConfig{Sender: "sales@agency.example"},
		dedup:     dedup,
		processor: NewProcessor(t.TempDir()),
		svc:       svc,
	}, dedup
}

func TestGmailFetchSecondFetchReturnsNothing(t *testing.T) {
	backend := &fakeGmail{
		pages: map[string]string{"": `{"messages":[{"id":"m1"},{"id":"m2"}]}`},
		msgs:  map[string]string{"m1": gmailMessageJSON("m1"), "m2": gmailMessageJSON("m2")},
	}
	provider, dedup := newTestGmailProvider(t, backend)
	ctx := context.Background()

	first, err := provider.Fetch(ctx, domain.FetchQuery{MaxResults: 10})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "m1", first[0].MessageID)
	assert.Equal(t, "hello world", first[0].Body)
	assert.True(t, dedup.Contains("m1"))
	assert.True(t, dedup.Contains("m2"))

	downloads := backend.gets
	second, err := provider.Fetch(ctx, domain.FetchQuery{MaxResults: 10})
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, downloads, backend.gets, "already handled messages must not be downloaded again")
}

func TestGmailFetchPaginatesToMaxResults(t *testing.T) {
	backend := &fakeGmail{
		pages: map[string]string{
			"":   `{"messages":[{"id":"m1"},{"id":"m2"}],"nextPageToken":"p2"}`,
			"p2": `{"messages":[{"id":"m3"},{"id":"m4"}]}`,
		},
		msgs: map[string]string{
			"m1": gmailMessageJSON("m1"), "m2": gmailMessageJSON("m2"),
			"m3": gmailMessageJSON("m3"), "m4": gmailMessageJSON("m4"),
		},
	}
	provider, dedup := newTestGmailProvider(t, backend)

	out, err := provider.Fetch(context.Background(), domain.FetchQuery{MaxResults: 3})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "m3", out[2].MessageID)
	// m4 was never accepted, so a later fetch must still see it.
	assert.False(t, dedup.Contains("m4"))
}

func TestGmailFetchSkipsFailedDownload(t *testing.T) {
	backend := &fakeGmail{
		pages:   map[string]string{"": `{"messages":[{"id":"m1"},{"id":"m2"}]}`},
		msgs:    map[string]string{"m2": gmailMessageJSON("m2")},
		getFail: map[string]bool{"m1": true},
	}
	provider, dedup := newTestGmailProvider(t, backend)

	out, err := provider.Fetch(context.Background(), domain.FetchQuery{MaxResults: 10})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m2", out[0].MessageID)
	// The failed download is retried on the next fetch, not hidden.
	assert.False(t, dedup.Contains("m1"))
	assert.True(t, dedup.Contains("m2"))
}

func TestGmailFetchMidPaginationErrorReturnsAcceptedMessages(t *testing.T) {
	backend := &fakeGmail{
		pages: map[string]string{
			"":   `{"messages":[{"id":"m1"}],"nextPageToken":"p2"}`,
			"p2": `{"messages":[{"id":"m2"}]}`,
		},
		msgs:     map[string]string{"m1": gmailMessageJSON("m1"), "m2": gmailMessageJSON("m2")},
		pageFail: map[string]bool{"p2": true},
	}
	provider, dedup := newTestGmailProvider(t, backend)
	ctx := context.Background()

	out, err := provider.Fetch(ctx, domain.FetchQuery{MaxResults: 10})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m1", out[0].MessageID)
	assert.True(t, dedup.Contains("m1"), "a returned message is marked handled")
	assert.False(t, dedup.Contains("m2"), "a message lost to the listing failure stays fetchable")

	// Once the backend recovers, the next fetch picks up where it stopped.
	backend.pageFail["p2"] = false
	out, err = provider.Fetch(ctx, domain.FetchQuery{MaxResults: 10})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m2", out[0].MessageID)
}

func TestGmailFetchListErrorWithNothingAcceptedIsProviderError(t *testing.T) {
	backend := &fakeGmail{
		pages:    map[string]string{},
		pageFail: map[string]bool{"": true},
	}
	provider, _ := newTestGmailProvider(t, backend)

	_, err := provider.Fetch(context.Background(), domain.FetchQuery{MaxResults: 10})
	assert.ErrorIs(t, err, domain.ErrProvider)
}
