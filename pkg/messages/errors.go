package messages

import "errors"

var (
	ErrNoTranslations    = errors.New("no translations found")
	ErrUnsupportedFormat = errors.New("unsupported translation file format")
	ErrInvalidStructure  = errors.New("invalid translation structure")
	ErrInvalidLanguage   = errors.New("invalid language code")
	ErrLoadCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseFile = errors.New("failed to parse translation file")
	ErrParsingConfig     = errors.New("failed to parse messages config")
)
