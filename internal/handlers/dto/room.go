package dto

type CreateRoomRequest struct {
	PlayerCount int `json:"player_count" binding:"required,min=3,max=9"`
	SpyCount    int `json:"spy_count" binding:"required,min=1,max=3"`
	// Лимит раунда в минутах, как вводит пользователь; сервис
	// работает в секундах
	TimeLimitMinutes int `json:"time_limit_minutes" binding:"required,min=1,max=10"`
}

type CreateRoomResponse struct {
	RoomID string `json:"room_id"`
	Code   string `json:"code"`
}

type JoinRoomRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type JoinRoomResponse struct {
	RoomID string `json:"room_id"`
}
