package destination

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsarmiento/globetrotter/internal/apperrors"
)

type DestinationRepository interface {
	FindByID(id string) (*Destination, error)
	Random() (*Destination, error)
	Count() (int64, error)
	// NextUnanswered returns the highest-id destination not in excludeIDs,
	// or nil when every destination has been used.
	NextUnanswered(excludeIDs []string) (*Destination, error)
	Create(d *Destination) error
	Delete(id string) (bool, error)
}

type gormDestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &gormDestinationRepository{db: db}
}

func (r *gormDestinationRepository) FindByID(id string) (*Destination, error) {
	var d Destination
	result := r.db.Where("id = ?", id).First(&d)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching destination", result.Error)
	}
	return &d, nil
}

func (r *gormDestinationRepository) Random() (*Destination, error) {
	var d Destination
	result := r.db.Order("RANDOM()").First(&d)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error fetching destination", result.Error)
	}
	return &d, nil
}

func (r *gormDestinationRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Destination{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewAppError(500, "Error counting destinations", err)
	}
	return count, nil
}

func (r *gormDestinationRepository) NextUnanswered(excludeIDs []string) (*Destination, error) {
	query := r.db.Order("id DESC")
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var d Destination
	result := query.First(&d)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error selecting next destination", result.Error)
	}
	return &d, nil
}

func (r *gormDestinationRepository) Create(d *Destination) error {
	d.ID = uuid.NewString()
	if err := r.db.Create(d).Error; err != nil {
		return apperrors.NewAppError(500, "Error creating destination", err)
	}
	return nil
}

func (r *gormDestinationRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&Destination{})
	if result.Error != nil {
		return false, apperrors.NewAppError(500, "Error deleting destination", result.Error)
	}
	return result.RowsAffected > 0, nil
}
