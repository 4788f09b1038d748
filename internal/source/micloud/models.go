package micloud

// Wire shapes of the remote gallery API. Day keys on the wire are basic ISO
// dates (20060102); they are converted to 2006-01-02 at the boundary.

type albumListResponse struct {
	Data struct {
		Albums     []albumJSON `json:"albums"`
		IsLastPage bool        `json:"isLastPage"`
	} `json:"data"`
}

type albumJSON struct {
	AlbumID        int64  `json:"albumId"`
	Name           string `json:"name"`
	MediaCount     int64  `json:"mediaCount"`
	LastUpdateTime int64  `json:"lastUpdateTime"`
}

type galleriesResponse struct {
	Data struct {
		Galleries  []assetJSON `json:"galleries"`
		IsLastPage bool        `json:"isLastPage"`
	} `json:"data"`
}

type assetJSON struct {
	ID        int64  `json:"id"`
	FileName  string `json:"fileName"`
	Type      string `json:"type"`
	DateTaken int64  `json:"dateTaken"`
	SHA1      string `json:"sha1"`
	MimeType  string `json:"mimeType"`
	Title     string `json:"title"`
	Size      int64  `json:"size"`
}

type timelineResponse struct {
	Data struct {
		IndexHash string           `json:"indexHash"`
		DayCount  map[string]int64 `json:"dayCount"`
	} `json:"data"`
}

type storageResponse struct {
	Code int `json:"code"`
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

type signedURLResponse struct {
	URL  string `json:"url"`
	Meta string `json:"meta"`
}

type preLoginResponse struct {
	Data struct {
		LoginURL string `json:"loginUrl"`
	} `json:"data"`
}
