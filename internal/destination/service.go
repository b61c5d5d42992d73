package destination

import (
	"github.com/jsarmiento/globetrotter/internal/apperrors"
)

type DestinationService struct {
	repo DestinationRepository
}

func NewDestinationService(repo DestinationRepository) *DestinationService {
	return &DestinationService{repo: repo}
}

func (s *DestinationService) GetDestination(id string) (*Destination, error) {
	d, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperrors.NewAppError(404, "Destination not found", nil)
	}
	return d, nil
}

func (s *DestinationService) GetRandomDestination() (*Destination, error) {
	d, err := s.repo.Random()
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperrors.NewAppError(404, "No destinations found", nil)
	}
	return d, nil
}

func (s *DestinationService) CreateDestination(req *CreateRequest) (*Destination, error) {
	if req.City == "" || req.Country == "" {
		return nil, apperrors.NewAppError(400, "City and country are required", nil)
	}

	d := &Destination{
		City:     req.City,
		Country:  req.Country,
		Clues:    req.Clues,
		FunFacts: req.FunFacts,
		Trivia:   req.Trivia,
		Options:  req.Options,
	}
	if err := s.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DestinationService) DeleteDestination(id string) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewAppError(404, "Destination not found", nil)
	}
	return nil
}
