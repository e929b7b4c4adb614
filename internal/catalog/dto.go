package catalog

import "dogmatch/internal/domain/models"

// Request
type (
	loginRequest struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
)

// Response
type (
	searchResponse struct {
		ResultIDs []string `json:"resultIds"`
		Total     int      `json:"total"`
		Next      string   `json:"next,omitempty"`
		Prev      string   `json:"prev,omitempty"`
	}

	dogResponse struct {
		ID      string `json:"id"`
		Img     string `json:"img"`
		Name    string `json:"name"`
		Age     *int   `json:"age"`
		ZipCode string `json:"zip_code"`
		Breed   string `json:"breed"`
	}

	matchResponse struct {
		Match string `json:"match"`
	}
)

func (d dogResponse) toDomain() models.DogRecord {
	return models.DogRecord{
		ID:       d.ID,
		Name:     d.Name,
		Breed:    d.Breed,
		Age:      d.Age,
		ZipCode:  d.ZipCode,
		ImageRef: d.Img,
	}
}
