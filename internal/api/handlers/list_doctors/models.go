package list_doctors

import (
	"net/http"

	"github.com/m04kA/MediCare-Portal/internal/api/handlers"
	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// DoctorsResponse HTTP response model
type DoctorsResponse struct {
	Doctors         []domain.Doctor `json:"doctors"`
	Specializations []string        `json:"specializations"`
}

// ToDomainFilter создает фильтр из query параметров
func ToDomainFilter(r *http.Request) (domain.DoctorFilter, error) {
	q := r.URL.Query()
	filter := domain.DoctorFilter{
		Search:         q.Get("search"),
		Specialization: q.Get("specialization"),
	}

	var err error
	if filter.MinRating, err = handlers.QueryFloat(r, "minRating"); err != nil {
		return filter, err
	}
	if filter.MaxFee, err = handlers.QueryFloat(r, "maxFee"); err != nil {
		return filter, err
	}
	return filter, nil
}
