// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ebolowa/contract-insight/db/ent/schema"
	"github.com/ebolowa/contract-insight/gen/ent/contract"
	"github.com/ebolowa/contract-insight/gen/ent/entity"
	"github.com/ebolowa/contract-insight/gen/ent/feedback"
	"github.com/ebolowa/contract-insight/gen/ent/summary"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescFilename is the schema descriptor for filename field.
	contractDescFilename := contractFields[1].Descriptor()
	// contract.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	contract.FilenameValidator = contractDescFilename.Validators[0].(func(string) error)
	// contractDescFileExt is the schema descriptor for file_ext field.
	contractDescFileExt := contractFields[2].Descriptor()
	// contract.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	contract.FileExtValidator = func() func(string) error {
		validators := contractDescFileExt.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_ext string) error {
			for _, fn := range fns {
				if err := fn(file_ext); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescSize is the schema descriptor for size field.
	contractDescSize := contractFields[3].Descriptor()
	// contract.SizeValidator is a validator for the "size" field. It is called by the builders before save.
	contract.SizeValidator = contractDescSize.Validators[0].(func(int) error)
	// contractDescContentHash is the schema descriptor for content_hash field.
	contractDescContentHash := contractFields[4].Descriptor()
	// contract.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	contract.ContentHashValidator = contractDescContentHash.Validators[0].(func([]byte) error)
	// contractDescStatus is the schema descriptor for status field.
	contractDescStatus := contractFields[6].Descriptor()
	// contract.DefaultStatus holds the default value on creation for the status field.
	contract.DefaultStatus = contractDescStatus.Default.(string)
	// contract.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	contract.StatusValidator = contractDescStatus.Validators[0].(func(string) error)
	// contractDescDegraded is the schema descriptor for degraded field.
	contractDescDegraded := contractFields[10].Descriptor()
	// contract.DefaultDegraded holds the default value on creation for the degraded field.
	contract.DefaultDegraded = contractDescDegraded.Default.(bool)
	// contractDescUploadedAt is the schema descriptor for uploaded_at field.
	contractDescUploadedAt := contractFields[11].Descriptor()
	// contract.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	contract.DefaultUploadedAt = contractDescUploadedAt.Default.(func() time.Time)
	// contractDescStatusChangedAt is the schema descriptor for status_changed_at field.
	contractDescStatusChangedAt := contractFields[12].Descriptor()
	// contract.DefaultStatusChangedAt holds the default value on creation for the status_changed_at field.
	contract.DefaultStatusChangedAt = contractDescStatusChangedAt.Default.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescType is the schema descriptor for type field.
	entityDescType := entityFields[2].Descriptor()
	// entity.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	entity.TypeValidator = func() func(string) error {
		validators := entityDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entityDescValue is the schema descriptor for value field.
	entityDescValue := entityFields[3].Descriptor()
	// entity.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	entity.ValueValidator = entityDescValue.Validators[0].(func(string) error)
	// entityDescConfidence is the schema descriptor for confidence field.
	entityDescConfidence := entityFields[4].Descriptor()
	// entity.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	entity.ConfidenceValidator = func() func(float32) error {
		validators := entityDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entityDescPosition is the schema descriptor for position field.
	entityDescPosition := entityFields[6].Descriptor()
	// entity.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	entity.PositionValidator = entityDescPosition.Validators[0].(func(int) error)
	// entityDescID is the schema descriptor for id field.
	entityDescID := entityFields[0].Descriptor()
	// entity.DefaultID holds the default value on creation for the id field.
	entity.DefaultID = entityDescID.Default.(func() uuid.UUID)
	feedbackFields := schema.Feedback{}.Fields()
	_ = feedbackFields
	// feedbackDescRating is the schema descriptor for rating field.
	feedbackDescRating := feedbackFields[2].Descriptor()
	// feedback.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	feedback.RatingValidator = func() func(int) error {
		validators := feedbackDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// feedbackDescCreatedAt is the schema descriptor for created_at field.
	feedbackDescCreatedAt := feedbackFields[4].Descriptor()
	// feedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedback.DefaultCreatedAt = feedbackDescCreatedAt.Default.(func() time.Time)
	// feedbackDescID is the schema descriptor for id field.
	feedbackDescID := feedbackFields[0].Descriptor()
	// feedback.DefaultID holds the default value on creation for the id field.
	feedback.DefaultID = feedbackDescID.Default.(func() uuid.UUID)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescTier is the schema descriptor for tier field.
	summaryDescTier := summaryFields[2].Descriptor()
	// summary.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	summary.TierValidator = func() func(string) error {
		validators := summaryDescTier.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(tier string) error {
			for _, fn := range fns {
				if err := fn(tier); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// summaryDescContent is the schema descriptor for content field.
	summaryDescContent := summaryFields[3].Descriptor()
	// summary.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	summary.ContentValidator = summaryDescContent.Validators[0].(func(string) error)
	// summaryDescConfidence is the schema descriptor for confidence field.
	summaryDescConfidence := summaryFields[4].Descriptor()
	// summary.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	summary.ConfidenceValidator = func() func(float32) error {
		validators := summaryDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// summaryDescWordCount is the schema descriptor for word_count field.
	summaryDescWordCount := summaryFields[5].Descriptor()
	// summary.WordCountValidator is a validator for the "word_count" field. It is called by the builders before save.
	summary.WordCountValidator = summaryDescWordCount.Validators[0].(func(int) error)
	// summaryDescModelName is the schema descriptor for model_name field.
	summaryDescModelName := summaryFields[6].Descriptor()
	// summary.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	summary.ModelNameValidator = summaryDescModelName.Validators[0].(func(string) error)
	// summaryDescApproved is the schema descriptor for approved field.
	summaryDescApproved := summaryFields[7].Descriptor()
	// summary.DefaultApproved holds the default value on creation for the approved field.
	summary.DefaultApproved = summaryDescApproved.Default.(bool)
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[8].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
	// summaryDescID is the schema descriptor for id field.
	summaryDescID := summaryFields[0].Descriptor()
	// summary.DefaultID holds the default value on creation for the id field.
	summary.DefaultID = summaryDescID.Default.(func() uuid.UUID)
}
