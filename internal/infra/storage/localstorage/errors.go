package localstorage

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
	ErrKeyNotFound = errors.New("localstorage: key not found")

	// ErrRead возвращается при ошибке чтения из хранилища
	ErrRead = errors.New("localstorage: failed to read")

	// ErrCorrupt содержимое хранилища не разбирается; всегда вместе с ErrRead
	ErrCorrupt = errors.New("localstorage: corrupt content")

	// ErrWrite возвращается при ошибке записи в хранилище
	ErrWrite = errors.New("localstorage: failed to write")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("localstorage: failed to build query")

	// ErrUnknownDriver возвращается для неизвестного типа хранилища
	ErrUnknownDriver = errors.New("localstorage: unknown driver")
)
