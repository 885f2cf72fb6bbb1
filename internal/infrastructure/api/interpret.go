package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/doeshing/tams-go/internal/domain"
)

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 1 << 20

// exchange is a completed round trip that passed (or failed) the transport and
// content-type guards.
type exchange struct {
	status  int
	body    []byte
	failure *domain.Failure
}

// readExchange applies the content-type guard. A proxy or load balancer error
// page is reported as a protocol mismatch, not as an API rejection.
func readExchange(resp *http.Response) exchange {
	ex := exchange{status: resp.StatusCode}

	if !isJSON(resp.Header.Get("Content-Type")) {
		ex.failure = &domain.Failure{
			Kind:       domain.FailureProtocol,
			Message:    fmt.Sprintf("server error: expected JSON, got %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
		return ex
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		ex.failure = &domain.Failure{Kind: domain.FailureOffline, Message: domain.MsgOffline, StatusCode: resp.StatusCode}
		return ex
	}
	if len(body) > maxBodyBytes {
		ex.failure = &domain.Failure{
			Kind:       domain.FailureProtocol,
			Message:    fmt.Sprintf("server error: response too large (over %d bytes)", maxBodyBytes),
			StatusCode: resp.StatusCode,
		}
		return ex
	}
	if !json.Valid(body) {
		ex.failure = &domain.Failure{
			Kind:       domain.FailureProtocol,
			Message:    fmt.Sprintf("server error: malformed JSON (status %d)", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
		return ex
	}

	ex.body = body
	return ex
}

// classify returns the failure for an exchange that did not succeed.
func (ex exchange) classify() domain.Failure {
	if ex.failure != nil {
		return *ex.failure
	}
	if !isSuccess(ex.status) {
		return rejection(ex)
	}
	return domain.Failure{Kind: domain.FailureUnhandled, Message: domain.MsgRequestFailed, StatusCode: ex.status}
}

// decodeJSON applies the status guard and decodes a successful body into T.
func decodeJSON[T any](ex exchange) domain.Outcome[T] {
	if ex.failure != nil || !isSuccess(ex.status) {
		return domain.Fail[T](ex.classify())
	}

	var value T
	if err := json.Unmarshal(ex.body, &value); err != nil {
		return domain.Fail[T](domain.Failure{
			Kind:       domain.FailureProtocol,
			Message:    "server error: unexpected response shape",
			StatusCode: ex.status,
		})
	}
	return domain.Succeed(value)
}

func rejection(ex exchange) domain.Failure {
	var body struct {
		Error string `json:"error"`
	}
	msg := domain.MsgRequestFailed
	if err := json.Unmarshal(ex.body, &body); err == nil && strings.TrimSpace(body.Error) != "" {
		msg = strings.TrimSpace(body.Error)
	}
	return domain.Failure{Kind: domain.FailureRejected, Message: msg, StatusCode: ex.status}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
