package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vflorencio/radar-leads/internal/entity"
)

// Client fala com a API do Google Places (textsearch + details).
// A chave é por usuário e chega em cada chamada, não fica no client.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: "https://maps.googleapis.com/maps/api/place",
		http:    http.DefaultClient,
	}
}

// NewClientWithBaseURL existe para os testes apontarem para um httptest.Server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

// Search roda o textsearch e completa cada resultado com website e
// telefone do endpoint de details. Details que falha não derruba a
// busca: o campo só fica vazio.
func (c *Client) Search(ctx context.Context, input SearchInput) ([]entity.Business, error) {
	if input.Query == "" {
		return nil, fmt.Errorf("busca vazia")
	}
	if input.APIKey == "" {
		return nil, fmt.Errorf("chave da API do Google Maps não configurada")
	}

	params := url.Values{}
	params.Set("query", input.Query)
	params.Set("key", input.APIKey)
	if input.Lat != 0 || input.Lng != 0 {
		params.Set("location", fmt.Sprintf("%f,%f", input.Lat, input.Lng))
		params.Set("radius", strconv.Itoa(input.RadiusKm*1000))
	}

	var search textSearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/textsearch/json?"+params.Encode(), &search); err != nil {
		return nil, fmt.Errorf("erro na API do Google Places: %w", err)
	}

	if search.Status != "OK" && search.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("erro na API do Google Places: %s - %s", search.Status, search.ErrorMessage)
	}

	businesses := make([]entity.Business, 0, len(search.Results))
	for _, place := range search.Results {
		business := entity.Business{
			PlaceID:     place.PlaceID,
			Name:        place.Name,
			Address:     place.FormattedAddress,
			Rating:      place.Rating,
			ReviewCount: place.UserRatingsTotal,
			Location: entity.Location{
				Lat: place.Geometry.Location.Lat,
				Lng: place.Geometry.Location.Lng,
			},
		}

		if details, err := c.details(ctx, place.PlaceID, input.APIKey); err == nil {
			business.Website = details.Result.Website
			business.Phone = details.Result.FormattedPhoneNumber
		}

		businesses = append(businesses, business)
	}

	return businesses, nil
}

func (c *Client) details(ctx context.Context, placeID, apiKey string) (*detailsResponse, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "website,formatted_phone_number")
	params.Set("key", apiKey)

	var details detailsResponse
	if err := c.getJSON(ctx, c.baseURL+"/details/json?"+params.Encode(), &details); err != nil {
		return nil, err
	}
	if details.Status != "OK" {
		return nil, fmt.Errorf("details falhou: %s", details.Status)
	}
	return &details, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d - %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}
