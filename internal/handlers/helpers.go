package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	apperrors "momoapi/internal/errors"
)

// maxBodyBytes bounds request bodies read by bindObject.
const maxBodyBytes = 1 << 20

// ErrorResponse documents the error envelope rendered by the error middleware.
type ErrorResponse struct {
	Error apperrors.AppError `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError hands err to the error middleware and stops the chain.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindObject decodes the request body as a JSON object. Numbers are kept as
// json.Number so amounts are parsed exactly by the validator.
func bindObject(c *gin.Context) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}
	if len(body) > maxBodyBytes {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Request body too large")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperrors.ErrEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, apperrors.ErrInvalidJSON
	}
	if obj == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidJSON, "Request body must be a JSON object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, apperrors.ErrInvalidJSON
	}
	return obj, nil
}
