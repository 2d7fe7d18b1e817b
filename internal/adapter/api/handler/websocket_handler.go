package handler

import (
	"context"
	"encoding/json"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/infrastructure/firebase"
	ws "cambiazo/internal/infrastructure/websocket"
	"cambiazo/internal/usecase"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

// WebSocketHandler serves the live update channel. A connected client
// subscribes to named feeds and receives the full current snapshot of each
// feed on every remote change; closing the connection releases every feed it
// opened.
type WebSocketHandler struct {
	wsManager  *ws.Manager
	authClient *firebase.AuthClient

	productUseCase  *usecase.ProductUseCase
	jobUseCase      *usecase.JobUseCase
	favoriteUseCase *usecase.FavoriteUseCase
	reviewUseCase   *usecase.ReviewUseCase
	chatUseCase     *usecase.ChatUseCase
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(
	wsManager *ws.Manager,
	authClient *firebase.AuthClient,
	productUseCase *usecase.ProductUseCase,
	jobUseCase *usecase.JobUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	chatUseCase *usecase.ChatUseCase,
) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:       wsManager,
		authClient:      authClient,
		productUseCase:  productUseCase,
		jobUseCase:      jobUseCase,
		favoriteUseCase: favoriteUseCase,
		reviewUseCase:   reviewUseCase,
		chatUseCase:     chatUseCase,
	}
}

type feedRequest struct {
	Action string `json:"action"`
	Feed   string `json:"feed"`
	Target string `json:"target"`
}

type feedPush struct {
	Type  string      `json:"type"`
	Feed  string      `json:"feed"`
	Items interface{} `json:"items,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	// Browsers cannot set headers on WebSocket upgrades, so the token may
	// arrive as a query parameter instead.
	token := c.QueryParam("token")
	if token == "" {
		if auth := c.Request().Header.Get("Authorization"); len(auth) > 7 && auth[:7] == "Bearer " {
			token = auth[7:]
		}
	}
	if token == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	userID, err := h.authClient.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := ws.NewClient(userID, conn)
	h.wsManager.Register <- client

	go client.WritePump()
	h.readLoop(client)

	return nil
}

func (h *WebSocketHandler) readLoop(client *ws.Client) {
	defer func() {
		h.wsManager.Unregister <- client
	}()

	for {
		_, data, err := client.Conn.ReadMessage()
		if err != nil {
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseNormalClosure) {
				logger.Warn("Websocket read failed for %s: %v", client.UserID, err)
			}
			return
		}

		var req feedRequest
		if err := json.Unmarshal(data, &req); err != nil {
			h.push(client, feedPush{Type: "error", Error: "malformed request"})
			continue
		}

		switch req.Action {
		case "subscribe":
			h.subscribe(client, req)
		case "unsubscribe":
			client.DetachFeed(feedKey(req))
		default:
			h.push(client, feedPush{Type: "error", Error: "unknown action"})
		}
	}
}

// subscribe opens the requested live feed and binds it to the client. A new
// subscription on the same key replaces the previous one.
func (h *WebSocketHandler) subscribe(client *ws.Client, req feedRequest) {
	key := feedKey(req)
	onError := func(err error) {
		h.push(client, feedPush{Type: "feed_error", Feed: key, Error: "feed interrupted"})
	}

	ctx := context.Background()

	switch req.Feed {
	case "products":
		client.AttachFeed(key, h.productUseCase.Watch(ctx, func(products []*entity.Product) {
			h.push(client, feedPush{Type: "snapshot", Feed: key, Items: products})
		}, onError))

	case "jobs":
		client.AttachFeed(key, h.jobUseCase.Watch(ctx, func(jobs []*entity.Job) {
			h.push(client, feedPush{Type: "snapshot", Feed: key, Items: jobs})
		}, onError))

	case "favorites":
		client.AttachFeed(key, h.favoriteUseCase.Watch(ctx, client.UserID, func(favorites []*entity.Favorite) {
			h.push(client, feedPush{Type: "snapshot", Feed: key, Items: favorites})
		}, onError))

	case "reviews":
		if req.Target == "" {
			h.push(client, feedPush{Type: "error", Feed: key, Error: "target is required"})
			return
		}
		client.AttachFeed(key, h.reviewUseCase.Watch(ctx, req.Target, func(reviews []*entity.Review) {
			h.push(client, feedPush{Type: "snapshot", Feed: key, Items: reviews})
		}, onError))

	case "conversation":
		if req.Target == "" {
			h.push(client, feedPush{Type: "error", Feed: key, Error: "target is required"})
			return
		}
		client.AttachFeed(key, h.chatUseCase.Watch(ctx, client.UserID, req.Target, func(messages []*entity.Message) {
			h.push(client, feedPush{Type: "snapshot", Feed: key, Items: messages})
		}, onError))

	default:
		h.push(client, feedPush{Type: "error", Feed: key, Error: "unknown feed"})
	}
}

func feedKey(req feedRequest) string {
	if req.Target == "" {
		return req.Feed
	}
	return req.Feed + ":" + req.Target
}

func (h *WebSocketHandler) push(client *ws.Client, payload feedPush) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal feed push: %v", err)
		return
	}

	select {
	case client.Send <- data:
	default:
		logger.Warn("Dropping feed push for slow client %s", client.UserID)
	}
}
