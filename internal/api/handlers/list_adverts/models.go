package list_adverts

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-AdsService/internal/service/adverts/models"
)

// ParseQuery собирает фильтр списка из query-параметров.
// Отсутствующие параметры остаются nil и не участвуют в фильтрации.
func ParseQuery(query url.Values) (*models.ListAdvertsRequest, error) {
	req := &models.ListAdvertsRequest{}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("category"); v != "" {
		req.Category = &v
	}
	if v := query.Get("clientName"); v != "" {
		req.ClientName = &v
	}
	if v := query.Get("createdBy"); v != "" {
		createdBy, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CreatedBy = &createdBy
	}
	if v := query.Get("slotId"); v != "" {
		slotID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.SlotID = &slotID
	}

	return req, nil
}
