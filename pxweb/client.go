// Package pxweb is a thin REST client for PxWeb-style statistical APIs. It
// fetches table metadata and data and hands both to the pxtable engine; it
// deliberately carries no authentication, retry or rate-limiting logic.
package pxweb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/samimiettinen/pxingest/pxtable"
)

const service = "pxweb"

// FormatJSONStat2 requests the dense JSON-stat2 dataset format; FormatJSON
// the sparse PxWeb key/values format. The engine accepts either.
const (
	FormatJSONStat2 = "json-stat2"
	FormatJSON      = "json"
)

// Client is a PxWeb API client
type Client struct {
	ua     dphttp.Clienter
	url    string
	format string
}

// New creates a new PxWeb client using the default dp-net http client and
// the dense response format.
func New(pxwebURL string) *Client {
	return NewWithClienter(pxwebURL, dphttp.NewClient())
}

// NewWithClienter creates a new PxWeb client with the provided http client,
// used by tests to stub the transport.
func NewWithClienter(pxwebURL string, ua dphttp.Clienter) *Client {
	return &Client{
		ua:     ua,
		url:    strings.TrimRight(pxwebURL, "/"),
		format: FormatJSONStat2,
	}
}

// SetFormat overrides the data response format requested from the provider.
func (c *Client) SetFormat(format string) {
	c.format = format
}

// GetMetadata fetches and validates a table's metadata document.
func (c *Client) GetMetadata(ctx context.Context, tablePath string) (*pxtable.TableMetadata, error) {
	resp, err := c.ua.Get(ctx, c.tableURL(tablePath))
	if err != nil {
		return nil, fmt.Errorf("failed to get table metadata: %w", err)
	}
	defer resp.Body.Close()

	b, err := checkResponse(resp)
	if err != nil {
		return nil, err
	}
	return pxtable.ParseMetadata(b)
}

// pxQuery is the PxWeb data query wire format
type pxQuery struct {
	Query    []pxQueryVariable `json:"query"`
	Response pxQueryResponse   `json:"response"`
}

type pxQueryVariable struct {
	Code      string           `json:"code"`
	Selection pxQuerySelection `json:"selection"`
}

type pxQuerySelection struct {
	Filter string   `json:"filter"`
	Values []string `json:"values"`
}

type pxQueryResponse struct {
	Format string `json:"format"`
}

// GetData posts a data query built from the selection and decodes the
// response into the engine's tagged variant.
func (c *Client) GetData(ctx context.Context, tablePath string, selection pxtable.Selection) (*pxtable.ProviderResponse, error) {
	q := pxQuery{
		Query:    make([]pxQueryVariable, 0, len(selection)),
		Response: pxQueryResponse{Format: c.format},
	}
	for _, vs := range selection {
		q.Query = append(q.Query, pxQueryVariable{
			Code:      vs.Code,
			Selection: pxQuerySelection{Filter: "item", Values: vs.Values},
		})
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal data query: %w", err)
	}

	resp, err := c.ua.Post(ctx, c.tableURL(tablePath), "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to post data query: %w", err)
	}
	defer resp.Body.Close()

	b, err := checkResponse(resp)
	if err != nil {
		return nil, err
	}
	return pxtable.DecodeResponse(b)
}

// Checker updates the healthcheck state by probing the API root.
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	resp, err := c.ua.Get(ctx, c.url)
	if err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return state.Update(healthcheck.StatusCritical, service+" functionality is unavailable or non-functioning", resp.StatusCode)
	}
	return state.Update(healthcheck.StatusOK, service+" is ok", resp.StatusCode)
}

func (c *Client) tableURL(tablePath string) string {
	return c.url + "/" + strings.TrimLeft(tablePath, "/")
}

func checkResponse(resp *http.Response) ([]byte, error) {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from pxweb: %d", resp.StatusCode)
	}
	return b, nil
}
