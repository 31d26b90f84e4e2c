package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"flag-quiz-service/internal/app"
	"flag-quiz-service/internal/share"
)

const writeWait = 10 * time.Second

type WSHandler struct {
	service      *app.GameService
	logger       *zap.Logger
	shareBaseURL string
	upgrader     websocket.Upgrader
}

func NewWSHandler(service *app.GameService, logger *zap.Logger, shareBaseURL string) *WSHandler {
	return &WSHandler{
		service:      service,
		logger:       logger,
		shareBaseURL: shareBaseURL,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type choicePayload struct {
	Code string `json:"code"`
}

type textPayload struct {
	Answer string `json:"answer"`
}

type sharePayload struct {
	Username string `json:"username"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

// ServeWS upgrades HTTP requests to websockets and runs one game session per connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	displayName := r.URL.Query().Get("name")
	if playerID == "" {
		http.Error(w, "missing playerId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	// Game sessions outlive the server's request timeouts.
	_ = conn.SetReadDeadline(time.Time{})

	// The request context ends with the handler; persistence calls use a
	// detached one so a closing socket does not abort a score write.
	ctx := context.WithoutCancel(r.Context())

	session, err := h.service.Start(ctx, playerID, displayName)
	if err != nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer h.service.End(session.ID())

	updates, cancel := session.Subscribe()
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Debug("ws write error", zap.Error(err))
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case snap, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "state", Payload: newStateView(snap)}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	sendError := func(msg string) {
		select {
		case send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: msg}}:
		case <-writerDone:
		}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "choice":
			var payload choicePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				sendError("invalid choice payload")
				continue
			}
			if _, err := session.SubmitChoice(ctx, payload.Code); err != nil {
				sendError(err.Error())
			}
		case "text":
			var payload textPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				sendError("invalid text payload")
				continue
			}
			if _, err := session.SubmitText(ctx, payload.Answer); err != nil {
				sendError(err.Error())
			}
		case "skip":
			if _, err := session.Skip(); err != nil {
				sendError(err.Error())
			}
		case "next":
			if _, err := session.Next(); err != nil {
				sendError(err.Error())
			}
		case "restart":
			if _, err := session.Restart(); err != nil {
				sendError(err.Error())
			}
		case "resetScore":
			h.service.ResetCumulativeScore(ctx, playerID)
		case "share":
			var payload sharePayload
			if len(inbound.Payload) > 0 {
				_ = json.Unmarshal(inbound.Payload, &payload)
			}
			if payload.Username == "" {
				payload.Username = displayName
			}
			h.sendShare(session, payload.Username, send, writerDone, sendError)
		default:
			sendError("unsupported message type")
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

func (h *WSHandler) sendShare(session *app.Session, username string, send chan<- outboundMessage[any], writerDone <-chan struct{}, sendError func(string)) {
	token, err := session.ShareToken(username)
	if err != nil {
		sendError(err.Error())
		return
	}
	resp := shareResponse{Token: token}
	if h.shareBaseURL != "" {
		link, err := share.URL(h.shareBaseURL, token)
		if err != nil {
			h.logger.Error("build share url", zap.Error(err))
			sendError("share url misconfigured")
			return
		}
		resp.URL = link
	}
	select {
	case send <- outboundMessage[any]{Type: "share", Payload: resp}:
	case <-writerDone:
	}
}
