package validators

import (
	"context"
	"unicode"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// MaxKeyLength bounds keys in bytes.
const MaxKeyLength = 1024

// Field names accepted by [RecordValidator.Validate] to scope validation.
const (
	FieldKey          = "key"
	FieldUserID       = "user_id"
	FieldData         = "data"
	FieldLastModified = "last_modified"
)

// RecordValidator validates sync requests, remote records and bare keys.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the dynamic type of obj. A plain string is treated
// as a key.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return validateKey(value)

	case models.SyncRequest:
		return v.validateSyncRequest(value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(*value, fields...)

	case models.RemoteRecord:
		return v.validateRemoteRecord(value, fields...)
	case *models.RemoteRecord:
		return v.validateRemoteRecord(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateSyncRequest(req models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldData, FieldLastModified}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := validateKey(req.Key); err != nil {
				return err
			}
		case FieldData:
			if len(req.Data) == 0 {
				return ErrEmptyData
			}
		case FieldLastModified:
			if req.LastModified <= 0 {
				return ErrInvalidLastModified
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateRemoteRecord(rec models.RemoteRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldKey, FieldData, FieldLastModified}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if rec.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldKey:
			if err := validateKey(rec.Key); err != nil {
				return err
			}
		case FieldData:
			if len(rec.Data) == 0 {
				return ErrEmptyData
			}
		case FieldLastModified:
			if rec.LastModified <= 0 {
				return ErrInvalidLastModified
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return ErrInvalidKey
		}
	}
	return nil
}
