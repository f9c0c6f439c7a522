package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidBoard = errors.New("invalid board")

	ErrSessionNotKept = errors.New("sessions are not kept between runs by the memory store")
)
