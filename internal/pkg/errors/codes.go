package errors

import "net/http"

var (
	ErrCityRequired = New(
		"CITY_REQUIRED",
		"City is required",
		http.StatusBadRequest,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrDestinationNotFound = New(
		"DESTINATION_NOT_FOUND",
		"Destination not found",
		http.StatusNotFound,
	)

	ErrCustomLocationNotFound = New(
		"CUSTOM_LOCATION_NOT_FOUND",
		"Custom location not found",
		http.StatusNotFound,
	)

	ErrMissingFields = New(
		"MISSING_REQUIRED_FIELDS",
		"Missing required fields",
		http.StatusBadRequest,
	)

	ErrInvalidListField = New(
		"INVALID_LIST_FIELD",
		"Unknown list field",
		http.StatusBadRequest,
	)

	ErrInvalidIndex = New(
		"INVALID_INDEX",
		"Invalid index",
		http.StatusBadRequest,
	)

	ErrIndexOutOfRange = New(
		"INDEX_OUT_OF_RANGE",
		"Index out of range",
		http.StatusNotFound,
	)

	ErrUpstreamProvider = New(
		"UPSTREAM_PROVIDER_ERROR",
		"Upstream provider request failed",
		http.StatusBadGateway,
	)

	ErrDuplicateID = New(
		"DUPLICATE_ID",
		"Identifier already exists",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
