package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordTooLong     = errors.New("password is too long")
	ErrUsernameTooLong     = errors.New("username is too long")
	ErrEmptyCode           = errors.New("verification code is required")
	ErrEmptyCommonName     = errors.New("common name is required")
	ErrEmptyScientificName = errors.New("scientific name is required")
	ErrNameTooLong         = errors.New("name is too long")
	ErrInvalidSpeciesID    = errors.New("invalid species id")
	ErrInvalidLocation     = errors.New("latitude must be within [-90, 90] and longitude within [-180, 180]")
	ErrObservedInFuture    = errors.New("observation time is in the future")
	ErrEmptyRole           = errors.New("role is required")
	ErrMissingActiveFlag   = errors.New("active flag is required")
)
