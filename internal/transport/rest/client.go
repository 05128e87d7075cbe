package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/entity"
)

const maxErrorBody = 4 << 10

// Client talks to the authoritative game service under <base>/api.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
}

type newGameRequest struct {
	Mode entity.Mode `json:"mode"`
}

type joinGameRequest struct {
	Code string `json:"code"`
}

type joinGameResponse struct {
	ID string `json:"gameId"`
}

type moveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type moveResponse struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

type serverError struct {
	Error string `json:"error"`
}

func New(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:  logger.With("component", "rest"),
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateGame - POST /game/new.
func (that *Client) CreateGame(ctx context.Context, mode entity.Mode) (*entity.CreatedGame, error) {
	const op = "create game"

	if !mode.IsValid() {
		return nil, &apperror.RequestError{Op: op, Message: fmt.Sprintf("invalid mode %q", mode)}
	}

	var created entity.CreatedGame
	if err := that.do(ctx, op, http.MethodPost, "/game/new", newGameRequest{Mode: mode}, &created); err != nil {
		return nil, err
	}

	if created.ID == "" {
		return nil, &apperror.RequestError{Op: op, Message: "response carries no game id"}
	}

	// the join code only matters to the creator of a double game
	if mode != entity.ModeDouble {
		created.JoinCode = ""
	}

	return &created, nil
}

// JoinGame - POST /game/join. Unknown and full games both come back as a RequestError.
func (that *Client) JoinGame(ctx context.Context, code string) (string, error) {
	const op = "join game"

	var joined joinGameResponse
	if err := that.do(ctx, op, http.MethodPost, "/game/join", joinGameRequest{Code: code}, &joined); err != nil {
		return "", err
	}

	if joined.ID == "" {
		return "", &apperror.RequestError{Op: op, Message: "response carries no game id"}
	}

	return joined.ID, nil
}

// FetchState - GET /game/{id}/state.
func (that *Client) FetchState(ctx context.Context, gameID string) (*entity.Snapshot, error) {
	var snapshot entity.Snapshot
	if err := that.do(ctx, "fetch state", http.MethodGet, gamePath(gameID, "state"), nil, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// SubmitMove - POST /game/{id}/move. A nil error means the service accepted the move.
func (that *Client) SubmitMove(ctx context.Context, gameID string, cell entity.Coord) error {
	const op = "submit move"

	var resp moveResponse
	body := moveRequest{X: cell.X, Y: cell.Y, Z: cell.Z}

	if err := that.do(ctx, op, http.MethodPost, gamePath(gameID, "move"), body, &resp); err != nil {
		return err
	}

	if resp.Success != nil && !*resp.Success {
		message := resp.Error
		if message == "" {
			message = "move rejected"
		}
		return &apperror.RequestError{Op: op, Message: message}
	}

	return nil
}

func (that *Client) do(ctx context.Context, op, method, path string, body, result any) error {
	log := that.logger.With("method", op)

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &apperror.RequestError{Op: op, Err: fmt.Errorf("failed to marshal request: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, that.baseURL+path, reqBody)
	if err != nil {
		return &apperror.RequestError{Op: op, Err: fmt.Errorf("failed to build request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug("sending request", "http_method", method, "path", path)

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return &apperror.RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &apperror.RequestError{Op: op, StatusCode: resp.StatusCode, Message: readServerError(resp.Body)}
	}

	if result == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(result); err != nil && !errors.Is(err, io.EOF) {
		return &apperror.RequestError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

func readServerError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}

	var serverErr serverError
	if err = json.Unmarshal(data, &serverErr); err == nil && serverErr.Error != "" {
		return serverErr.Error
	}

	return strings.TrimSpace(string(data))
}

func gamePath(gameID, action string) string {
	return "/game/" + url.PathEscape(gameID) + "/" + action
}
