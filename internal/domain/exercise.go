// internal/domain/exercise.go
package domain

// Exercise is a single prescribed movement within a day.
type Exercise struct {
	Name            string `bson:"name" json:"name" validate:"required"`
	Description     string `bson:"description" json:"description" validate:"required"` // how to execute it
	SetsReps        string `bson:"reps" json:"reps" validate:"required"`               // e.g. "4x10-12"
	RestInterval    string `bson:"rest" json:"rest" validate:"required"`               // e.g. "60 segundos"
	EquipmentNeeded string `bson:"equipment" json:"equipment" validate:"required"`
	MusclesWorked   string `bson:"musclesWorked" json:"musclesWorked" validate:"required"`

	// VideoReferenceID hints at a public, embeddable demonstration video.
	// It comes from the model and is never verified.
	VideoReferenceID string `bson:"youtubeVideoId" json:"youtubeVideoId" validate:"required"`
}
