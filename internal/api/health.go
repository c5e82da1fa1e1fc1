package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	apierrors "github.com/everettbu/chatsafe/internal/errors"
	"github.com/everettbu/chatsafe/internal/models"
)

// get performs a GET against a server path and decodes the JSON body into out
func (c *Client) get(path string, out interface{}) error {
	endpoint := c.baseURL + path

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierrors.NewConnectionError(endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return apierrors.NewAPIError(resp.StatusCode, endpoint, "request failed")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierrors.NewParseError(fmt.Sprintf("failed to decode %s response: %v", path, err), path)
	}

	return nil
}

// Health fetches the server health report
func (c *Client) Health() (*models.HealthResponse, error) {
	var health models.HealthResponse
	if err := c.get(models.PathHealth, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// ListModels fetches the models registered on the server
func (c *Client) ListModels() ([]models.ModelInfo, error) {
	var listing models.ModelsResponse
	if err := c.get(models.PathModels, &listing); err != nil {
		return nil, err
	}
	return listing.Models, nil
}

// Version fetches the server version report
func (c *Client) Version() (*models.VersionResponse, error) {
	var version models.VersionResponse
	if err := c.get(models.PathVersion, &version); err != nil {
		return nil, err
	}
	return &version, nil
}
