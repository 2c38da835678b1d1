package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/naturespantry/shop/internal/contact"
	"github.com/naturespantry/shop/internal/mykafka"
)

type ContactHandler struct {
	Producer mykafka.Publisher
}

// Submit validates the contact form. A validation failure returns the field
// errors and nothing else happens; an accepted message is only published as an
// event (mail delivery is someone else's job).
func (h *ContactHandler) Submit(c echo.Context) error {
	var form contact.Form
	if err := c.Bind(&form); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	form.Normalize()
	if errs := contact.Validate(&form); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"status": "error",
			"errors": errs,
		})
	}

	publishEvent(c, h.Producer, "contact_events", form.Email, map[string]any{
		"type":    "contact_message",
		"name":    form.Name,
		"email":   form.Email,
		"subject": form.Subject,
		"message": form.Message,
	})

	return c.JSON(http.StatusOK, Response{
		Status:  "ok",
		Message: "Message sent",
	})
}
