package dto

import (
	"fmt"
	"time"

	"dogmatch/internal/domain/filter"
	"dogmatch/internal/domain/models"
	"dogmatch/internal/services/details"
	"dogmatch/internal/services/search"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MaxDetailIDs - ограничение каталога на один POST /dogs
const MaxDetailIDs = 100

// Request
type (
	LoginRequest struct {
		Name  string `json:"name" validate:"required,max=100"`
		Email string `json:"email" validate:"required,email,max=254"`
	}

	// UpdateFiltersRequest - все поля необязательны, nil значит "не менять"
	UpdateFiltersRequest struct {
		Breeds       *[]string `json:"breeds" validate:"omitempty,max=200,dive,max=100"`
		ZipCodes     *[]string `json:"zip_codes" validate:"omitempty,max=200,dive,max=16"`
		ZipCodesText *string   `json:"zip_codes_text" validate:"omitempty,max=4000"`
		AgeMin       *int      `json:"age_min"`
		AgeMax       *int      `json:"age_max"`
		Sort         *string   `json:"sort"`
		Page         *int      `json:"page"`
	}

	DogIDsRequest []string
)

// Response
type (
	LoginResponse struct {
		Name      string    `json:"name"`
		ExpiresAt time.Time `json:"expires_at"`
	}

	FiltersResponse struct {
		Breeds   []string `json:"breeds"`
		ZipCodes []string `json:"zip_codes"`
		AgeMin   int      `json:"age_min"`
		AgeMax   int      `json:"age_max"`
		Page     int      `json:"page"`
		Sort     string   `json:"sort"`
	}

	SearchResponse struct {
		Filters    FiltersResponse `json:"filters"`
		ResultIDs  []string        `json:"result_ids"`
		Total      int             `json:"total"`
		Page       int             `json:"page"`
		TotalPages int             `json:"total_pages"`
		Loading    bool            `json:"loading"`
		Error      string          `json:"error,omitempty"`
	}

	DogResponse struct {
		ID      string `json:"id"`
		Img     string `json:"img"`
		Name    string `json:"name"`
		Age     *int   `json:"age"`
		ZipCode string `json:"zip_code"`
		Breed   string `json:"breed"`
	}

	CardResponse struct {
		ID      string       `json:"id"`
		Dog     *DogResponse `json:"dog"`
		Loading bool         `json:"loading"`
	}

	FavoritesResponse struct {
		Favorites []string `json:"favorites"`
	}

	ToggleFavoriteResponse struct {
		ID        string   `json:"id"`
		Favorite  bool     `json:"favorite"`
		Favorites []string `json:"favorites"`
	}

	MatchResponse struct {
		Match string       `json:"match"`
		Dog   *DogResponse `json:"dog"`
	}
)

func (r LoginRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidData, err)
	}
	return nil
}

func (r UpdateFiltersRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidData, err)
	}
	return nil
}

func (r DogIDsRequest) Validate() error {
	if err := validate.Var([]string(r), fmt.Sprintf("required,min=1,max=%d,dive,required", MaxDetailIDs)); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidData, err)
	}
	return nil
}

// Domain → Response
func FiltersFromDomain(s filter.State) FiltersResponse {
	return FiltersResponse{
		Breeds:   nonNil(s.Breeds),
		ZipCodes: nonNil(s.ZipCodes),
		AgeMin:   s.AgeMin,
		AgeMax:   s.AgeMax,
		Page:     s.Page,
		Sort:     s.Sort.String(),
	}
}

func SearchFromDomain(s search.Snapshot) SearchResponse {
	resp := SearchResponse{
		Filters:    FiltersFromDomain(s.Filter),
		ResultIDs:  nonNil(s.Result.IDs),
		Total:      s.Result.Total,
		Page:       s.Page,
		TotalPages: s.TotalPages,
		Loading:    s.Loading,
	}
	if s.Err != nil {
		resp.Error = s.Err.Error()
	}
	return resp
}

func DogFromDomain(d models.DogRecord) *DogResponse {
	return &DogResponse{
		ID:      d.ID,
		Img:     d.ImageRef,
		Name:    d.Name,
		Age:     d.Age,
		ZipCode: d.ZipCode,
		Breed:   d.Breed,
	}
}

func CardsFromDomain(cards []details.Card) []CardResponse {
	resp := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		card := CardResponse{ID: c.ID, Loading: c.Loading}
		if c.Dog != nil {
			card.Dog = DogFromDomain(*c.Dog)
		}
		resp = append(resp, card)
	}
	return resp
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
