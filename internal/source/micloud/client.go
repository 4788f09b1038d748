// Package micloud talks to the remote gallery API: album and asset
// listings, per-album timelines, and the two-hop signed download URL dance.
package micloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"album_syncer/internal/domain"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36 Edg/139.0.0.0"

const (
	albumPageSize = 10
	assetPageSize = 200

	// Remote replies with this code when the asset was deleted server-side
	// after we catalogued it.
	codeAssetDeleted = 50050

	// Well-known remote album ids.
	albumIDCamera      = 1
	albumIDScreenshots = 2
	albumIDPrivate     = 1000
)

// ErrAssetDeleted reports that the remote no longer has the asset's bytes.
var ErrAssetDeleted = domain.ErrAssetDeleted

// Config holds the gallery client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client is the remote catalog collaborator: paginated listings plus the
// download URL resolution. All calls authenticate through the token
// manager.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         *TokenManager
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// NewHTTPClient builds the client both this package's types share. The
// login flow needs to see redirect Locations itself, so following is off.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func New(cfg Config, httpClient *http.Client, tokens *TokenManager, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		tokens:         tokens,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "micloud"),
	}
}

// ListAlbums pages through the account's albums. The private album is
// skipped; the camera and screenshot albums carry fixed names the API
// leaves empty.
func (c *Client) ListAlbums(ctx context.Context, accountID string) ([]domain.Album, error) {
	var albums []domain.Album

	for page := 0; ; page++ {
		listURL := fmt.Sprintf(
			"%s/gallery/user/album/list?ts=%d&pageNum=%d&pageSize=%d&isShared=false&numOfThumbnails=1",
			c.baseURL, time.Now().UnixMilli(), page, albumPageSize,
		)

		var resp albumListResponse
		if err := c.getJSON(ctx, accountID, listURL, &resp); err != nil {
			return nil, fmt.Errorf("list albums page %d: %w", page, err)
		}

		c.logger.Debug("fetched album page", "page", page, "albums", len(resp.Data.Albums))

		for _, a := range resp.Data.Albums {
			if a.AlbumID == albumIDPrivate {
				continue
			}
			name := a.Name
			switch a.AlbumID {
			case albumIDCamera:
				name = "Camera"
			case albumIDScreenshots:
				name = "Screenshots"
			}
			albums = append(albums, domain.Album{
				ID:             a.AlbumID,
				Name:           name,
				AssetCount:     a.MediaCount,
				LastUpdateTime: time.UnixMilli(a.LastUpdateTime),
			})
		}

		if resp.Data.IsLastPage {
			return albums, nil
		}
	}
}

// FetchAssetsByAlbum pages through the album's assets. A non-empty day
// ("2006-01-02") bounds the listing to that single day, which is how
// timeline-diff refreshes avoid re-reading whole albums.
func (c *Client) FetchAssetsByAlbum(ctx context.Context, accountID string, album domain.Album, day string) ([]domain.Asset, error) {
	var assets []domain.Asset

	for page := 0; ; page++ {
		listURL := fmt.Sprintf(
			"%s/gallery/user/galleries?ts=%d&pageNum=%d&pageSize=%d&albumId=%d",
			c.baseURL, time.Now().UnixMilli(), page, assetPageSize, album.ID,
		)
		if day != "" {
			basic, err := isoToBasicDay(day)
			if err != nil {
				return nil, err
			}
			listURL += "&startDate=" + basic + "&endDate=" + basic
		}

		var resp galleriesResponse
		if err := c.getJSON(ctx, accountID, listURL, &resp); err != nil {
			return nil, fmt.Errorf("list assets of album %d page %d: %w", album.ID, page, err)
		}

		c.logger.Debug("fetched asset page",
			"album_id", album.ID,
			"day", day,
			"page", page,
			"assets", len(resp.Data.Galleries),
		)

		for _, a := range resp.Data.Galleries {
			assets = append(assets, domain.Asset{
				ID:        a.ID,
				AlbumID:   album.ID,
				AlbumName: album.Name,
				FileName:  a.FileName,
				Title:     a.Title,
				Type:      domain.MediaType(strings.ToUpper(a.Type)),
				TakenAt:   time.UnixMilli(a.DateTaken),
				SHA1:      a.SHA1,
				MimeType:  a.MimeType,
				Size:      a.Size,
			})
		}

		if resp.Data.IsLastPage {
			return assets, nil
		}
	}
}

// FetchAlbumTimeline reads the album's day-bucketed asset histogram.
func (c *Client) FetchAlbumTimeline(ctx context.Context, accountID string, albumID int64) (domain.AlbumTimeline, error) {
	timelineURL := fmt.Sprintf(
		"%s/gallery/user/timeline?ts=%d&albumId=%d",
		c.baseURL, time.Now().UnixMilli(), albumID,
	)

	var resp timelineResponse
	if err := c.getJSON(ctx, accountID, timelineURL, &resp); err != nil {
		return domain.AlbumTimeline{}, fmt.Errorf("fetch timeline of album %d: %w", albumID, err)
	}

	dayCount := make(map[string]int64, len(resp.Data.DayCount))
	for basic, count := range resp.Data.DayCount {
		iso, err := basicToISODay(basic)
		if err != nil {
			return domain.AlbumTimeline{}, fmt.Errorf("timeline of album %d: %w", albumID, err)
		}
		dayCount[iso] = count
	}
	return domain.AlbumTimeline{IndexHash: resp.Data.IndexHash, DayCount: dayCount}, nil
}

// FetchAssetBytes resolves the asset's signed download URL and opens the
// content stream. The caller closes it.
func (c *Client) FetchAssetBytes(ctx context.Context, accountID string, asset domain.Asset) (io.ReadCloser, error) {
	storageURL := fmt.Sprintf(
		"%s/gallery/storage?ts=%d&id=%d",
		c.baseURL, time.Now().UnixMilli(), asset.ID,
	)

	var storage storageResponse
	if err := c.getJSON(ctx, accountID, storageURL, &storage); err != nil {
		return nil, fmt.Errorf("resolve storage url of asset %d: %w", asset.ID, err)
	}
	if storage.Code == codeAssetDeleted {
		return nil, fmt.Errorf("asset %d: %w", asset.ID, ErrAssetDeleted)
	}
	if storage.Data.URL == "" {
		return nil, fmt.Errorf("asset %d: storage response carries no url", asset.ID)
	}

	// The second hop answers with a JSONP-wrapped payload.
	raw, err := c.getRaw(ctx, storage.Data.URL)
	if err != nil {
		return nil, fmt.Errorf("resolve signed url of asset %d: %w", asset.ID, err)
	}
	signed, err := parseJSONP(raw)
	if err != nil {
		return nil, fmt.Errorf("asset %d: %w", asset.ID, err)
	}

	form := url.Values{"meta": {signed.Meta}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signed.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create download request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download asset %d: %w", asset.ID, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download asset %d: unexpected status %d", asset.ID, resp.StatusCode)
	}
	return resp.Body, nil
}

// getJSON performs an authenticated GET with retry and exponential backoff,
// decoding the body into out.
func (c *Client) getJSON(ctx context.Context, accountID, rawURL string, out interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		lastErr = c.doGetJSON(ctx, accountID, rawURL, out)
		if lastErr == nil {
			return nil
		}
		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", lastErr,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) doGetJSON(ctx context.Context, accountID, rawURL string, out interface{}) error {
	cred, err := c.tokens.GetCredential(ctx, accountID)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Cookie", cookieHeader("userId", cred.UserID, "serviceToken", cred.ServiceToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

// parseJSONP unwraps a callback(...) payload into the signed URL pair.
func parseJSONP(raw []byte) (signedURLResponse, error) {
	s := string(raw)
	open := strings.IndexByte(s, '(')
	closing := strings.LastIndexByte(s, ')')
	if open < 0 || closing <= open {
		return signedURLResponse{}, fmt.Errorf("malformed jsonp payload")
	}

	var signed signedURLResponse
	if err := json.Unmarshal([]byte(s[open+1:closing]), &signed); err != nil {
		return signedURLResponse{}, fmt.Errorf("decode jsonp payload: %w", err)
	}
	return signed, nil
}

// isoToBasicDay converts 2006-01-02 to 20060102 for the wire.
func isoToBasicDay(day string) (string, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return "", fmt.Errorf("bad day %q: %w", day, err)
	}
	return t.Format("20060102"), nil
}

// basicToISODay converts 20060102 from the wire to 2006-01-02.
func basicToISODay(day string) (string, error) {
	t, err := time.Parse("20060102", day)
	if err != nil {
		return "", fmt.Errorf("bad wire day %q: %w", day, err)
	}
	return t.Format("2006-01-02"), nil
}
