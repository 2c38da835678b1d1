package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/naturespantry/shop/internal/contact"
)

func TestContactSubmitAccepted(t *testing.T) {
	pub := &fakePublisher{}
	h := &ContactHandler{Producer: pub}

	form := contact.Form{
		Name:    "James L.",
		Email:   "james@example.com",
		Subject: "Almond flour",
		Message: "Is the almond flour suitable for macarons?",
	}
	rec, c := doJSON(t, http.MethodPost, "/api/v1/contact", form)
	require.NoError(t, h.Submit(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, []string{"contact_events"}, pub.topics)
	require.Equal(t, "contact_message", pub.events[0]["type"])
}

func TestContactSubmitShortMessageRejectedWithoutSideEffects(t *testing.T) {
	pub := &fakePublisher{}
	h := &ContactHandler{Producer: pub}

	form := contact.Form{
		Name:    "James L.",
		Email:   "james@example.com",
		Subject: "Hi",
		Message: "hello",
	}
	rec, c := doJSON(t, http.MethodPost, "/api/v1/contact", form)
	require.NoError(t, h.Submit(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Status string            `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "error", resp.Status)
	require.Contains(t, resp.Errors, "message")

	// A rejected form must not publish anything.
	require.Empty(t, pub.topics)
}

func TestContactSubmitTrimsBeforeValidating(t *testing.T) {
	pub := &fakePublisher{}
	h := &ContactHandler{Producer: pub}

	form := contact.Form{
		Name:    "   ",
		Email:   "james@example.com",
		Subject: "Almond flour",
		Message: "Is the almond flour suitable for macarons?",
	}
	rec, c := doJSON(t, http.MethodPost, "/api/v1/contact", form)
	require.NoError(t, h.Submit(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "Name is required", resp.Errors["name"])
}
