package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// AppointmentView is an appointment with the display fields resolved.
type AppointmentView struct {
	*models.Appointment

	ServiceNames     []string  `json:"service_names"`
	ServicePrices    []float64 `json:"service_prices"`
	ServiceSlots     []int     `json:"service_slots"`
	ClientName       string    `json:"client_name"`
	ClientPhone      string    `json:"client_phone"`
	ProfessionalName string    `json:"professional_name"`
	CustomerName     string    `json:"customer_name"`
}

// present resolves display fields for a batch. ap must come from a read that
// preloads Client, User and Professional.User.
func (d Deps) present(ctx context.Context, aps []models.Appointment) ([]AppointmentView, error) {
	byTenant := map[string][]string{}
	for _, ap := range aps {
		byTenant[ap.ClientID] = append(byTenant[ap.ClientID], ap.ServiceIDs()...)
	}

	catalogue := map[string]models.Service{}
	for clientID, ids := range byTenant {
		services, err := d.Repo.ListServices(ctx, clientID, ids)
		if err != nil {
			return nil, err
		}
		for _, s := range services {
			catalogue[s.ID] = s
		}
	}

	views := make([]AppointmentView, 0, len(aps))
	for i := range aps {
		views = append(views, buildView(&aps[i], catalogue))
	}
	return views, nil
}

func (d Deps) presentOne(ctx context.Context, ap *models.Appointment) (*AppointmentView, error) {
	views, err := d.present(ctx, []models.Appointment{*ap})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func buildView(ap *models.Appointment, catalogue map[string]models.Service) AppointmentView {
	v := AppointmentView{
		Appointment:   ap,
		ServiceNames:  make([]string, 0, len(ap.Services)),
		ServicePrices: make([]float64, 0, len(ap.Services)),
		ServiceSlots:  make([]int, 0, len(ap.Services)),
		ClientName:    ap.Client.Name,
		ClientPhone:   ap.Client.Phone,
	}
	if ap.Professional != nil {
		v.ProfessionalName = ap.Professional.User.Name
	}
	if ap.User != nil {
		v.CustomerName = ap.User.Name
	}

	for _, s := range ap.Services {
		svc := catalogue[s.ServiceID]
		v.ServiceNames = append(v.ServiceNames, svc.Name)
		v.ServicePrices = append(v.ServicePrices, s.Price)

		slots := svc.Slots
		if ap.Professional != nil {
			if a, ok := ap.Professional.Assignment(s.ServiceID); ok {
				slots = a.SlotCount
			}
		}
		v.ServiceSlots = append(v.ServiceSlots, slots)
	}
	return v
}
