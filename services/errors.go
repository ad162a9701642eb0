package services

import (
	"errors"

	"github.com/Dosada05/swiss-tournament/repositories"
)

// Общие ошибки сервисного слоя, используемые при маппинге в HTTP.
var (
	// Ошибки валидации
	ErrValidationFailed = errors.New("validation failed")
	ErrPlayerNameEmpty  = errors.New("player name is required")

	// Ссылочные ошибки: матч ссылается на несуществующего игрока или на одного и того же игрока
	ErrInvalidMatch   = errors.New("invalid match result")
	ErrSelfMatch      = errors.New("winner and loser must be different players")
	ErrPlayerNotFound = errors.New("player not found")

	// Предусловия жеребьёвки
	ErrPairingPrecondition = errors.New("cannot pair players for the next round")

	// Ошибки хранилища
	ErrStoreUnavailable = repositories.ErrStoreUnavailable

	// Ошибки аутентификации
	ErrAuthInvalidCredentials = errors.New("invalid director password")

	// Публикация
	ErrPublishingDisabled = errors.New("standings publishing is not configured")
)
