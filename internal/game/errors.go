package game

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrAlreadyStarted   = errors.New("game already started")
	ErrRoomFull         = errors.New("room is full")
	ErrAlreadyInRoom    = errors.New("already in room")
	ErrNotInRoom        = errors.New("not in room")
	ErrNotHost          = errors.New("not the host")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrInvalidConfig    = errors.New("invalid room configuration")
	ErrCodeTaken        = errors.New("room code already in use")
)
