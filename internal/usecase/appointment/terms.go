package appointment

import (
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ServiceInput struct {
	ServiceID string   `json:"service_id"`
	Price     *float64 `json:"price"`
}

// resolveServices checks every requested service against the tenant's
// catalogue and the professional's assignments, fills missing prices and
// sums the slot count. prof may be nil.
func resolveServices(
	in []ServiceInput,
	catalogue []models.Service,
	prof *models.Professional,
) ([]models.AppointmentService, int, error) {

	if len(in) == 0 {
		return nil, 0, httperr.ErrValidation("missing_services")
	}

	byID := make(map[string]models.Service, len(catalogue))
	for _, s := range catalogue {
		byID[s.ID] = s
	}

	out := make([]models.AppointmentService, 0, len(in))
	slots := 0
	for _, s := range in {
		svc, ok := byID[s.ServiceID]
		if !ok {
			return nil, 0, httperr.ErrNotFound("service_not_found")
		}

		price := svc.Price
		count := svc.Slots
		if prof != nil {
			a, ok := prof.Assignment(s.ServiceID)
			if !ok {
				return nil, 0, httperr.ErrValidation("service_not_offered")
			}
			price = a.Price
			count = a.SlotCount
		}
		if s.Price != nil {
			if *s.Price < 0 {
				return nil, 0, httperr.ErrValidation("invalid_price")
			}
			price = *s.Price
		}

		out = append(out, models.AppointmentService{ServiceID: s.ServiceID, Price: price})
		slots += domain.ClampSlotCount(count)
	}

	return out, slots, nil
}

func serviceIDs(in []ServiceInput) ([]string, error) {
	ids := make([]string, 0, len(in))
	for _, s := range in {
		if err := validID(s.ServiceID); err != nil {
			return nil, err
		}
		ids = append(ids, s.ServiceID)
	}
	return ids, nil
}
