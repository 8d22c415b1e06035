package places

// Respostas da API do Google Places (textsearch + details), só os
// campos que o app usa.

type textSearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID          string  `json:"place_id"`
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Website              string `json:"website"`
		FormattedPhoneNumber string `json:"formatted_phone_number"`
	} `json:"result"`
}

type SearchInput struct {
	Query    string
	APIKey   string
	Lat      float64
	Lng      float64
	RadiusKm int
}
