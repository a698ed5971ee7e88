package setting

import "errors"

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrKeyTaken        = errors.New("a setting with this key already exists")
	ErrReadOnly        = errors.New("setting is read-only")
	ErrInvalidValue    = errors.New("value does not match the declared type")
)
