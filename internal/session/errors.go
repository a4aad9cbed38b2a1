package session

import "errors"

var (
	// ErrNoPersistedState возвращается, когда в хранилище нет сохранённой сессии
	ErrNoPersistedState = errors.New("session: no persisted state")

	// ErrCorruptState возвращается, когда сохранённый blob не удаётся разобрать
	ErrCorruptState = errors.New("session: persisted state is corrupt")

	// ErrEmptyToken возвращается при попытке логина без токена
	ErrEmptyToken = errors.New("session: token is required")

	// ErrPersist возвращается, когда не удалось записать состояние
	ErrPersist = errors.New("session: failed to persist state")
)
