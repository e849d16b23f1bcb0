package models

import "errors"

// ErrInvalidInput indicates malformed numeric fields on card creation.
var ErrInvalidInput = errors.New("invalid input")

// ErrDuplicateCard indicates the farmer already owns a soil card.
var ErrDuplicateCard = errors.New("farmer already has a card")

// ErrCardNotFound indicates no card exists for the requested farmer.
var ErrCardNotFound = errors.New("card not found")

// ErrProfileNotFound indicates no identity record exists for the user.
var ErrProfileNotFound = errors.New("profile not found")

// ErrMalformedPayload indicates a share payload that is not well-formed.
var ErrMalformedPayload = errors.New("malformed card payload")

// ErrIncompleteCard indicates a well-formed payload missing required fields.
var ErrIncompleteCard = errors.New("incomplete card payload")

// ErrForbidden indicates the session lacks permission for the operation.
var ErrForbidden = errors.New("operation not permitted")
