package main

import (
	"encoding/json"
	"net/http"

	"warelay/internal/constants"
	"warelay/internal/errors"
	"warelay/internal/models"
	"warelay/internal/privacy"
	"warelay/internal/tracing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type configRequest struct {
	PhoneNumberID string `json:"phoneNumberId"`
	AccessToken   string `json:"accessToken"`
}

type sendMessageRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type renameContactRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleSetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req configRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, errors.NewValidationError("body", "invalid JSON body"))
			return
		}

		if err := s.relay.SetCredentials(req.PhoneNumberID, req.AccessToken); err != nil {
			s.writeError(w, err)
			return
		}

		s.logger.WithField("phone_number_id", privacy.MaskPhoneNumberID(req.PhoneNumberID)).Info("Configuration saved")
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Configuration saved",
		})
	}
}

func (s *Server) handleGetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, s.relay.ConfigStatus())
	}
}

func (s *Server) handleSendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, errors.NewValidationError("body", "invalid JSON body"))
			return
		}

		messageID, err := s.relay.SendMessage(r.Context(), req.To, req.Message)
		if err != nil {
			tracing.RecordError(r.Context(), err)
			errors.LogError(s.logger, err, "Failed to send message", logrus.Fields{
				"request_id": tracing.GetRequestID(r.Context()),
				"to":         privacy.MaskPhoneNumber(req.To),
			})
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":   true,
			"messageId": messageID,
		})
	}
}

func (s *Server) handleMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := mux.Vars(r)["phoneNumber"]
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"messages": s.relay.Messages(number),
		})
	}
}

func (s *Server) handleContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"contacts": s.relay.Contacts(),
		})
	}
}

func (s *Server) handleMarkRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := mux.Vars(r)["phoneNumber"]
		s.relay.MarkRead(number)
		s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	}
}

func (s *Server) handleRenameContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := mux.Vars(r)["phoneNumber"]

		var req renameContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, errors.NewValidationError("body", "invalid JSON body"))
			return
		}

		if err := s.relay.RenameContact(number, req.Name); err != nil {
			s.writeError(w, err)
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	}
}

// handleWebhookVerify answers the provider's subscription handshake: echo
// the challenge iff the mode is subscribe and the token matches.
func (s *Server) handleWebhookVerify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		mode := query.Get("hub.mode")
		token := query.Get("hub.verify_token")
		challenge := query.Get("hub.challenge")

		if mode == constants.WebhookModeSubscribe && s.relay.VerifyWebhookToken(token) {
			s.logger.Info("Webhook verified")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(challenge))
			return
		}

		s.logger.WithField("mode", mode).Warn("Webhook verification failed")
		w.WriteHeader(http.StatusForbidden)
	}
}

// handleWebhook ingests provider events. The provider ignores the response
// body and retries on non-2xx, so the handler acknowledges as soon as the
// payload parses; per-event problems are skipped inside the reconciler.
func (s *Server) handleWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			errors.LogError(s.logger, errors.NewWebhookParseError(err), "Webhook payload parse failed", logrus.Fields{
				"request_id": tracing.GetRequestID(r.Context()),
			})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		result := s.relay.ProcessWebhook(&payload)

		s.logger.WithFields(logrus.Fields{
			"request_id":     tracing.GetRequestID(r.Context()),
			"new_messages":   result.NewMessages,
			"status_updates": result.StatusUpdates,
			"skipped":        result.Skipped,
		}).Debug("Webhook processed")

		w.WriteHeader(http.StatusOK)
	}
}
