// Package forms holds the public form state machines: idle -> submitting ->
// success | error. On success the fields reset to defaults; on error the
// visitor's input is kept so they can retry without retyping.
package forms

import (
	"errors"

	"github.com/kwencafe/website/apiclient"
	"github.com/kwencafe/website/models"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// ErrBusy is returned when Submit is called while a previous submission is
// still outstanding. It guards callers that hold a form across submissions;
// the HTTP handlers build a fresh form per request and rely on the disabled
// submit button instead.
var ErrBusy = errors.New("form: submission already in progress")

const defaultGuests = 2

type ReservationForm struct {
	api       *apiclient.Client
	Status    Status
	Error     string
	Values    models.ReservationInput
	CreatedID int
}

func NewReservationForm(api *apiclient.Client) *ReservationForm {
	return &ReservationForm{
		api:    api,
		Status: StatusIdle,
		Values: models.ReservationInput{Guests: defaultGuests},
	}
}

// Submit sends the booking. Required-field enforcement is left to the browser
// inputs; whatever the server rejects is surfaced as-is.
func (f *ReservationForm) Submit(values models.ReservationInput) error {
	if f.Status == StatusSubmitting {
		return ErrBusy
	}
	f.Status = StatusSubmitting
	f.Error = ""
	f.Values = values

	id, err := f.api.CreateReservation(values)
	if err != nil {
		f.Status = StatusError
		f.Error = err.Error()
		if f.Error == "" {
			f.Error = "Не удалось отправить бронирование"
		}
		return err
	}

	f.Status = StatusSuccess
	f.CreatedID = id
	f.Values = models.ReservationInput{Guests: defaultGuests}
	return nil
}
