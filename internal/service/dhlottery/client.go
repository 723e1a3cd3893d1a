package dhlottery

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"lottopick/internal/domain/models"
	domrepo "lottopick/internal/domain/repository"
	pkghttp "lottopick/pkg/http"
	"lottopick/pkg/util"
)

const defaultBaseURL = "https://www.dhlottery.co.kr"

// drawResponse mirrors the official draw-result JSON.
type drawResponse struct {
	ReturnValue string `json:"returnValue"`
	DrwNo       int    `json:"drwNo"`
	DrwNoDate   string `json:"drwNoDate"`
	DrwtNo1     int    `json:"drwtNo1"`
	DrwtNo2     int    `json:"drwtNo2"`
	DrwtNo3     int    `json:"drwtNo3"`
	DrwtNo4     int    `json:"drwtNo4"`
	DrwtNo5     int    `json:"drwtNo5"`
	DrwtNo6     int    `json:"drwtNo6"`
	BnusNo      int    `json:"bnusNo"`
}

// Client fetches official draw results from the operator's JSON endpoint.
// Rounds that have not been drawn yet come back with returnValue "fail".
type Client struct {
	http    *pkghttp.Client
	baseURL string
}

// NewClient creates a draw result fetcher.
func NewClient(httpClient *pkghttp.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{http: httpClient, baseURL: baseURL}
}

// Fetch retrieves one round. Returns repository.ErrRoundNotDrawn for rounds
// the operator has not published yet.
func (c *Client) Fetch(ctx context.Context, round int) (*models.Draw, error) {
	var resp drawResponse
	err := c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method: pkghttp.MethodGet,
		URL:    c.baseURL + "/common.do",
		QueryParams: map[string][]string{
			"method": {"getLottoNumber"},
			"drwNo":  {strconv.Itoa(round)},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch round %d: %w", round, err)
	}

	if resp.ReturnValue != "success" {
		return nil, domrepo.ErrRoundNotDrawn
	}

	d := models.Draw{
		Round: resp.DrwNo,
		Date:  util.NormalizeDrawDate(resp.DrwNoDate),
		Numbers: [6]int{
			resp.DrwtNo1, resp.DrwtNo2, resp.DrwtNo3,
			resp.DrwtNo4, resp.DrwtNo5, resp.DrwtNo6,
		},
		Bonus: resp.BnusNo,
	}
	sort.Ints(d.Numbers[:])
	if err := models.Combination(d.Numbers).Valid(); err != nil {
		return nil, fmt.Errorf("round %d: %w", round, err)
	}
	return &d, nil
}
