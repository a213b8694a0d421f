package validators

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/smart-plant-guard/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldUsername       = "username"
	FieldCode           = "code"
	FieldRole           = "role"
	FieldActive         = "active"
	FieldCommonName     = "common_name"
	FieldScientificName = "scientific_name"
	FieldSpeciesID      = "species_id"
	FieldLocation       = "location"
	FieldObservedAt     = "observed_at"
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordBytes  = 72 // bcrypt input limit
	maxUsernameLength = 64
	maxNameLength     = 200
	futureSkew        = 5 * time.Minute
)

// RequestValidator validates the API request bodies in models.
type RequestValidator struct {
	now func() time.Time
}

func NewRequestValidator() Validator {
	return &RequestValidator{now: time.Now}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.VerifyCodeRequest:
		return v.validateVerifyCode(value, fields...)
	case *models.VerifyCodeRequest:
		return v.validateVerifyCode(*value, fields...)

	case models.SetRoleRequest:
		return requireFields(fields, []string{FieldRole}, func(string) error {
			if strings.TrimSpace(value.Role) == "" {
				return ErrEmptyRole
			}
			return nil
		})

	case models.SetActiveRequest:
		return requireFields(fields, []string{FieldActive}, func(string) error {
			if value.Active == nil {
				return ErrMissingActiveFlag
			}
			return nil
		})

	case models.CreateSpeciesRequest:
		return v.validateCreateSpecies(value, fields...)
	case *models.CreateSpeciesRequest:
		return v.validateCreateSpecies(*value, fields...)

	case models.RecordObservationRequest:
		return v.validateRecordObservation(value, fields...)
	case *models.RecordObservationRequest:
		return v.validateRecordObservation(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	return requireFields(fields, []string{FieldEmail, FieldPassword, FieldUsername}, func(f string) error {
		switch f {
		case FieldEmail:
			return validateEmail(r.Email)
		case FieldPassword:
			switch {
			case r.Password == "":
				return ErrEmptyPassword
			case utf8.RuneCountInString(r.Password) < minPasswordLength:
				return ErrPasswordTooShort
			case len(r.Password) > maxPasswordBytes:
				return ErrPasswordTooLong
			}
		case FieldUsername:
			if utf8.RuneCountInString(strings.TrimSpace(r.Username)) > maxUsernameLength {
				return ErrUsernameTooLong
			}
		default:
			return ErrUnknownField
		}
		return nil
	})
}

// validateLogin checks presence only; password policy is not revealed to
// unauthenticated callers.
func (v *RequestValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	return requireFields(fields, []string{FieldEmail, FieldPassword}, func(f string) error {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(r.Email) == "" {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
		return nil
	})
}

func (v *RequestValidator) validateVerifyCode(r models.VerifyCodeRequest, fields ...string) error {
	return requireFields(fields, []string{FieldCode}, func(f string) error {
		if f != FieldCode {
			return ErrUnknownField
		}
		if strings.TrimSpace(r.Code) == "" {
			return ErrEmptyCode
		}
		return nil
	})
}

func (v *RequestValidator) validateCreateSpecies(r models.CreateSpeciesRequest, fields ...string) error {
	return requireFields(fields, []string{FieldCommonName, FieldScientificName}, func(f string) error {
		switch f {
		case FieldCommonName:
			return validateName(r.CommonName, ErrEmptyCommonName)
		case FieldScientificName:
			return validateName(r.ScientificName, ErrEmptyScientificName)
		default:
			return ErrUnknownField
		}
	})
}

func (v *RequestValidator) validateRecordObservation(r models.RecordObservationRequest, fields ...string) error {
	return requireFields(fields, []string{FieldSpeciesID, FieldLocation, FieldObservedAt}, func(f string) error {
		switch f {
		case FieldSpeciesID:
			if r.SpeciesID <= 0 {
				return ErrInvalidSpeciesID
			}
		case FieldLocation:
			if r.Location != nil && (r.Location.Lat < -90 || r.Location.Lat > 90 || r.Location.Lng < -180 || r.Location.Lng > 180) {
				return ErrInvalidLocation
			}
		case FieldObservedAt:
			if r.ObservedAt != nil && r.ObservedAt.After(v.now().Add(futureSkew)) {
				return ErrObservedInFuture
			}
		default:
			return ErrUnknownField
		}
		return nil
	})
}

// requireFields runs check for every requested field, or for defaults when
// none were requested, and stops at the first failure.
func requireFields(fields, defaults []string, check func(string) error) error {
	if len(fields) == 0 {
		fields = defaults
	}
	for _, f := range fields {
		if err := check(f); err != nil {
			return err
		}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > maxEmailLength || strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return ErrInvalidEmail
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return ErrInvalidEmail
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ErrInvalidEmail
	}
	return nil
}

func validateName(name string, emptyErr error) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return emptyErr
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}
