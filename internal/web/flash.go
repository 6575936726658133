package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookie = "practica_flash"

// FlashMessage is a one-time notification shown on the next page load.
type FlashMessage struct {
	Kind    string `json:"kind"` // success, warning or danger
	Message string `json:"message"`
}

// setFlash stores msg in a short-lived cookie.
func setFlash(w http.ResponseWriter, kind, message string) {
	bits, err := json.Marshal(FlashMessage{Kind: kind, Message: message})
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(bits),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash message, if any, and expires the cookie.
func popFlash(w http.ResponseWriter, r *http.Request) *FlashMessage {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	bits, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}

	var msg FlashMessage
	if err := json.Unmarshal(bits, &msg); err != nil || msg.Message == "" {
		return nil
	}
	return &msg
}
