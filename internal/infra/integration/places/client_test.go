package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const textSearchBody = `{
	"status": "OK",
	"results": [
		{
			"place_id": "place-1",
			"name": "Padaria Estrela",
			"formatted_address": "Rua Augusta, 1200 - São Paulo",
			"rating": 4.6,
			"user_ratings_total": 230,
			"geometry": {"location": {"lat": -23.55, "lng": -46.66}}
		},
		{
			"place_id": "place-2",
			"name": "Café do Centro",
			"formatted_address": "Rua XV de Novembro, 50",
			"rating": 4.1,
			"user_ratings_total": 88,
			"geometry": {"location": {"lat": -23.54, "lng": -46.63}}
		}
	]
}`

func TestSearch_MapsResultsAndDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/textsearch/"):
			assert.Equal(t, "padaria", r.URL.Query().Get("query"))
			assert.Equal(t, "k-123", r.URL.Query().Get("key"))
			w.Write([]byte(textSearchBody))
		case strings.Contains(r.URL.Path, "/details/"):
			if r.URL.Query().Get("place_id") == "place-1" {
				w.Write([]byte(`{"status": "OK", "result": {"website": "https://padariaestrela.com.br", "formatted_phone_number": "(11) 3333-4444"}}`))
				return
			}
			// details do segundo lugar falha; o resultado entra sem website.
			w.Write([]byte(`{"status": "NOT_FOUND"}`))
		default:
			t.Errorf("rota inesperada: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	businesses, err := client.Search(context.Background(), SearchInput{
		Query:  "padaria",
		APIKey: "k-123",
	})
	require.NoError(t, err)
	require.Len(t, businesses, 2)

	assert.Equal(t, "place-1", businesses[0].PlaceID)
	assert.Equal(t, "Padaria Estrela", businesses[0].Name)
	assert.Equal(t, 4.6, businesses[0].Rating)
	assert.Equal(t, 230, businesses[0].ReviewCount)
	assert.Equal(t, -23.55, businesses[0].Location.Lat)
	assert.Equal(t, "https://padariaestrela.com.br", businesses[0].Website)
	assert.Equal(t, "(11) 3333-4444", businesses[0].Phone)

	assert.Equal(t, "place-2", businesses[1].PlaceID)
	assert.Empty(t, businesses[1].Website)
	assert.Empty(t, businesses[1].Phone)
}

func TestSearch_SendsLocationBias(t *testing.T) {
	var gotLocation, gotRadius string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/textsearch/") {
			gotLocation = r.URL.Query().Get("location")
			gotRadius = r.URL.Query().Get("radius")
		}
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	businesses, err := client.Search(context.Background(), SearchInput{
		Query:    "oficina",
		APIKey:   "k-123",
		Lat:      -23.5505,
		Lng:      -46.6333,
		RadiusKm: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, businesses)
	assert.Contains(t, gotLocation, "-23.55")
	assert.Equal(t, "10000", gotRadius)
}

func TestSearch_APIErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	_, err := client.Search(context.Background(), SearchInput{Query: "padaria", APIKey: "ruim"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestSearch_HTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	_, err := client.Search(context.Background(), SearchInput{Query: "padaria", APIKey: "k"})
	assert.Error(t, err)
}

func TestSearch_RequiresQueryAndKey(t *testing.T) {
	client := NewClientWithBaseURL("http://invalid")

	_, err := client.Search(context.Background(), SearchInput{APIKey: "k"})
	assert.Error(t, err)

	_, err = client.Search(context.Background(), SearchInput{Query: "padaria"})
	assert.Error(t, err)
}
