package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/umalmyha/customer-directory/internal/dto"
)

const customersPath = "customers"

// StatusError is returned when API responds with unexpected status code
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s responded with status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s responded with status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// CustomerClient talks to customers API
type CustomerClient struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewCustomerClient builds client for API located at baseURL
func NewCustomerClient(baseURL string, httpClient *http.Client) (*CustomerClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse API base url - %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CustomerClient{baseURL: u, httpClient: httpClient}, nil
}

// ListCustomers fetches all customers in the order returned by API
func (c *CustomerClient) ListCustomers(ctx context.Context) ([]dto.Customer, error) {
	res, err := c.do(ctx, http.MethodGet, customersPath, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, statusError(res)
	}

	customers := make([]dto.Customer, 0)
	if err := json.NewDecoder(res.Body).Decode(&customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers - %w", err)
	}
	return customers, nil
}

// GetCustomer fetches customer by id, nil is returned if customer doesn't exist
func (c *CustomerClient) GetCustomer(ctx context.Context, id string) (*dto.Customer, error) {
	res, err := c.do(ctx, http.MethodGet, customersPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, statusError(res)
	}

	var customer dto.Customer
	if err := json.NewDecoder(res.Body).Decode(&customer); err != nil {
		return nil, fmt.Errorf("failed to decode customer %s - %w", id, err)
	}
	return &customer, nil
}

// CreateCustomer creates new customer
func (c *CustomerClient) CreateCustomer(ctx context.Context, customer dto.Customer) error {
	return c.send(ctx, http.MethodPost, customersPath, customer)
}

// UpdateCustomer overwrites existing customer
func (c *CustomerClient) UpdateCustomer(ctx context.Context, customer dto.Customer) error {
	return c.send(ctx, http.MethodPut, customersPath, customer)
}

// DeleteCustomer deletes customer by id
func (c *CustomerClient) DeleteCustomer(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, customersPath+"/"+url.PathEscape(id), nil)
}

func (c *CustomerClient) send(ctx context.Context, method string, path string, body any) error {
	res, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return statusError(res)
	}
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

func (c *CustomerClient) do(ctx context.Context, method string, path string, body any) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body - %w", err)
		}
		payload = bytes.NewReader(b)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to build url for %s - %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.ResolveReference(ref).String(), payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request - %w", method, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s %s - %w", method, req.URL.Path, err)
	}
	return res, nil
}

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func statusError(res *http.Response) error {
	statusErr := &StatusError{
		Method:     res.Request.Method,
		Path:       res.Request.URL.Path,
		StatusCode: res.StatusCode,
	}

	var body errorBody
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return statusErr
	}

	if body.Message != "" {
		statusErr.Message = body.Message
		return statusErr
	}

	msgs := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		msgs = append(msgs, e.Message)
	}
	statusErr.Message = strings.Join(msgs, "; ")
	return statusErr
}
