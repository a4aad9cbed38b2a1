package list_tests

import (
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// TestsResponse HTTP response model
type TestsResponse struct {
	Tests      []domain.Test `json:"tests"`
	Categories []string      `json:"categories"`
}

// ToDomainFilter создает фильтр из query параметров
func ToDomainFilter(r *http.Request) (domain.TestFilter, error) {
	q := r.URL.Query()
	filter := domain.TestFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}

	var err error
	if filter.MinPrice, err = handlers.QueryFloat(r, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = handlers.QueryFloat(r, "maxPrice"); err != nil {
		return filter, err
	}
	return filter, nil
}
