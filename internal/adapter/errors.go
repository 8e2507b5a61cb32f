package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("upstream: bad request")
	ErrNotFound            = errors.New("upstream: not found")
	ErrBadGateway          = errors.New("upstream: bad gateway")
	ErrInternalServerError = errors.New("upstream: internal server error")
	ErrUnexpectedStatus    = errors.New("upstream: unexpected status")
	ErrRequestFailed       = errors.New("upstream: request failed")
	ErrDecodingResponse    = errors.New("upstream: error decoding response")
)
