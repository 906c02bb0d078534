package service

import "errors"

// Operation failures mapped to transport status codes in the controller
// layer. External-call failures (weather.FetchError, llm.GenerationError)
// propagate wrapped and are matched there with errors.As.
var (
	// ErrFarmNotFound means the referenced farm does not exist
	ErrFarmNotFound = errors.New("farm not found")

	// ErrNotFarmOwner means the requesting user does not own the farm
	ErrNotFarmOwner = errors.New("not authorized to access this farm")

	// ErrInvalidFarm means a required farm field is missing or invalid
	ErrInvalidFarm = errors.New("invalid farm")
)
