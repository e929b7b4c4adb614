package update_filters

import (
	"encoding/json"
	"net/http"

	"dogmatch/internal/domain/filter"
	"dogmatch/internal/domain/models"
	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"
	"dogmatch/internal/services/search"
)

type Session interface {
	SetBreeds(breeds []string)
	SetZipCodes(zipCodes []string)
	SetAgeRange(ageMin, ageMax int)
	SetSort(sort models.Sort) error
	SetPage(page int)
	Filters() filter.State
	Search() search.Snapshot
}

// HandlerUpdateFilters применяет каждое присланное поле своим сеттером.
// Страница применяется последней, иначе ее сбросит смена остальных фильтров.
func HandlerUpdateFilters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dto.UpdateFiltersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			httputils.WriteError(w, err)
			return
		}
		if req.ZipCodes != nil && req.ZipCodesText != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "zip_codes and zip_codes_text are mutually exclusive")
			return
		}

		// сортировку разбираем до любых изменений: кривой запрос не должен менять фильтры
		var sort *models.Sort
		if req.Sort != nil {
			parsed, err := models.ParseSort(*req.Sort)
			if err != nil {
				httputils.WriteError(w, err)
				return
			}
			sort = &parsed
		}

		if req.Breeds != nil {
			sess.SetBreeds(*req.Breeds)
		}
		switch {
		case req.ZipCodes != nil:
			sess.SetZipCodes(*req.ZipCodes)
		case req.ZipCodesText != nil:
			sess.SetZipCodes(filter.ParseZipCodes(*req.ZipCodesText))
		}
		if req.AgeMin != nil || req.AgeMax != nil {
			current := sess.Filters()
			ageMin, ageMax := current.AgeMin, current.AgeMax
			if req.AgeMin != nil {
				ageMin = *req.AgeMin
			}
			if req.AgeMax != nil {
				ageMax = *req.AgeMax
			}
			sess.SetAgeRange(ageMin, ageMax)
		}
		if sort != nil {
			if err := sess.SetSort(*sort); err != nil {
				httputils.WriteError(w, err)
				return
			}
		}
		if req.Page != nil {
			sess.SetPage(*req.Page)
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.SearchFromDomain(sess.Search()))
	}
}
