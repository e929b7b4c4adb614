package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dogmatch/internal/domain/models"

	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"
)

const (
	pathLogin  = "/auth/login"
	pathLogout = "/auth/logout"
	pathBreeds = "/dogs/breeds"
	pathSearch = "/dogs/search"
	pathDogs   = "/dogs"
	pathMatch  = "/dogs/match"

	// Максимум id в одном POST /dogs
	maxDogsPerRequest = 100

	errorBodyLimit = 512
)

// Client работает с удаленным каталогом от имени одного пользователя.
// Учетные данные сессии (cookie) живут в собственном cookie jar и
// прикладываются к каждому запросу автоматически.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zerolog.Logger) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid catalog base url %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		log: log.With().Str("component", "catalog").Logger(),
	}, nil
}

// doRequest - общий хелпер: собирает запрос, при необходимости кодирует тело в JSON
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("catalog request failed")
		return nil, fmt.Errorf("%w: %s %s: %w", models.ErrNetwork, method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration_ms", time.Since(start)).
		Msg("catalog request completed")
	return resp, nil
}

// checkStatus превращает не-2xx ответ в ошибку нужного типа
func (c *Client) checkStatus(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	msg := strings.TrimSpace(string(bodyBytes))

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s returned %d", models.ErrUnauthorized, path, resp.StatusCode)
	}
	return fmt.Errorf("%w: %s returned %d: %s", models.ErrNetwork, path, resp.StatusCode, msg)
}

func (c *Client) decode(resp *http.Response, path string, target any) error {
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %w", models.ErrNetwork, path, err)
	}
	return nil
}

// Login authenticates against the remote service; the returned session cookie
// is kept in the client's jar.
func (c *Client) Login(ctx context.Context, name, email string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, pathLogin, nil, loginRequest{Name: name, Email: email})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, pathLogin); err != nil {
		if errors.Is(err, models.ErrUnauthorized) || resp.StatusCode == http.StatusBadRequest {
			return fmt.Errorf("%w: %s", models.ErrAuthentication, err.Error())
		}
		return err
	}

	c.log.Info().Str("name", name).Msg("logged in to catalog")
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, pathLogout, nil, struct{}{})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp, pathLogout)
}

func (c *Client) Breeds(ctx context.Context) ([]string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, pathBreeds, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, pathBreeds); err != nil {
		return nil, err
	}

	var breeds []string
	if err := c.decode(resp, pathBreeds, &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

func (c *Client) Search(ctx context.Context, q models.SearchQuery) (models.SearchResult, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, pathSearch, searchParams(q), nil)
	if err != nil {
		return models.SearchResult{}, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, pathSearch); err != nil {
		return models.SearchResult{}, err
	}

	var body searchResponse
	if err := c.decode(resp, pathSearch, &body); err != nil {
		return models.SearchResult{}, err
	}
	return models.SearchResult{IDs: body.ResultIDs, Total: body.Total}, nil
}

// searchParams: пустые множества не отправляются совсем (= без фильтра)
func searchParams(q models.SearchQuery) url.Values {
	params := url.Values{}
	for _, breed := range q.Breeds {
		params.Add("breeds", breed)
	}
	for _, zip := range q.ZipCodes {
		params.Add("zipCodes", zip)
	}
	params.Set("ageMin", strconv.Itoa(q.AgeMin))
	params.Set("ageMax", strconv.Itoa(q.AgeMax))
	params.Set("size", strconv.Itoa(q.Size))
	params.Set("from", strconv.Itoa(q.From))
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	return params
}

func (c *Client) Dogs(ctx context.Context, ids []string) ([]models.DogRecord, error) {
	if len(ids) == 0 || len(ids) > maxDogsPerRequest {
		return nil, fmt.Errorf("%w: dogs lookup accepts 1..%d ids, got %d", models.ErrInvalidData, maxDogsPerRequest, len(ids))
	}

	resp, err := c.doRequest(ctx, http.MethodPost, pathDogs, nil, ids)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, pathDogs); err != nil {
		return nil, err
	}

	var body []dogResponse
	if err := c.decode(resp, pathDogs, &body); err != nil {
		return nil, err
	}

	dogs := make([]models.DogRecord, len(body))
	for i, d := range body {
		dogs[i] = d.toDomain()
	}
	return dogs, nil
}

func (c *Client) Match(ctx context.Context, ids []string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, pathMatch, nil, ids)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, pathMatch); err != nil {
		return "", err
	}

	var body matchResponse
	if err := c.decode(resp, pathMatch, &body); err != nil {
		return "", err
	}
	return body.Match, nil
}
