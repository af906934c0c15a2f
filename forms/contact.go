package forms

import (
	"github.com/kwencafe/website/apiclient"
	"github.com/kwencafe/website/models"
)

type ContactForm struct {
	api       *apiclient.Client
	Status    Status
	Error     string
	Values    models.ContactInput
	CreatedID int
}

func NewContactForm(api *apiclient.Client) *ContactForm {
	return &ContactForm{
		api:    api,
		Status: StatusIdle,
	}
}

func (f *ContactForm) Submit(values models.ContactInput) error {
	if f.Status == StatusSubmitting {
		return ErrBusy
	}
	f.Status = StatusSubmitting
	f.Error = ""
	f.Values = values

	id, err := f.api.CreateContact(values)
	if err != nil {
		f.Status = StatusError
		f.Error = err.Error()
		if f.Error == "" {
			f.Error = "Не удалось отправить сообщение"
		}
		return err
	}

	f.Status = StatusSuccess
	f.CreatedID = id
	f.Values = models.ContactInput{}
	return nil
}
