package notify

import (
	"fmt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type message struct {
	subject string
	body    string
	sms     string
}

const whenLayout = "Mon Jan 2 2006 at 15:04 UTC"

func professionalName(ap *models.Appointment) string {
	if ap.Professional != nil && ap.Professional.User.Name != "" {
		return ap.Professional.User.Name
	}
	return "our team"
}

func changeMessage(ap *models.Appointment, action domain.Action) message {
	when := ap.StartDate.UTC().Format(whenLayout)
	salon := ap.Client.Name
	who := professionalName(ap)

	switch action {
	case domain.ActionUpdated:
		return message{
			subject: fmt.Sprintf("%s: appointment %s updated", salon, ap.Code),
			body:    fmt.Sprintf("Your appointment %s with %s is now on %s.\nStatus: %s.", ap.Code, who, when, ap.Status),
			sms:     fmt.Sprintf("%s: appointment %s updated, %s with %s.", salon, ap.Code, when, who),
		}
	case domain.ActionDeleted:
		return message{
			subject: fmt.Sprintf("%s: appointment %s canceled", salon, ap.Code),
			body:    fmt.Sprintf("Your appointment %s with %s on %s has been canceled.", ap.Code, who, when),
			sms:     fmt.Sprintf("%s: appointment %s on %s canceled.", salon, ap.Code, when),
		}
	default:
		return message{
			subject: fmt.Sprintf("%s: appointment %s confirmed", salon, ap.Code),
			body:    fmt.Sprintf("Your appointment %s with %s is booked for %s.", ap.Code, who, when),
			sms:     fmt.Sprintf("%s: appointment %s booked for %s with %s.", salon, ap.Code, when, who),
		}
	}
}

func reminderMessage(ap *models.Appointment) message {
	when := ap.StartDate.UTC().Format(whenLayout)
	salon := ap.Client.Name
	return message{
		subject: fmt.Sprintf("%s: reminder for appointment %s", salon, ap.Code),
		body:    fmt.Sprintf("This is a reminder of your appointment %s with %s on %s.", ap.Code, professionalName(ap), when),
		sms:     fmt.Sprintf("%s reminder: appointment %s on %s.", salon, ap.Code, when),
	}
}
