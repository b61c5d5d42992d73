package destination

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsarmiento/globetrotter/internal/apperrors"
)

func TestGetDestination_NotFound(t *testing.T) {
	repo := new(DestinationRepositoryMock)
	repo.On("FindByID", "ghost").Return(nil, nil)
	svc := NewDestinationService(repo)

	_, err := svc.GetDestination("ghost")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Code)
}

func TestGetRandomDestination_EmptyTable(t *testing.T) {
	repo := new(DestinationRepositoryMock)
	repo.On("Random").Return(nil, nil)
	svc := NewDestinationService(repo)

	_, err := svc.GetRandomDestination()

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Code)
}

func TestCreateDestination_RequiresCityAndCountry(t *testing.T) {
	svc := NewDestinationService(new(DestinationRepositoryMock))

	_, err := svc.CreateDestination(&CreateRequest{City: "Paris"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.Code)
}

func TestCreateDestination(t *testing.T) {
	repo := new(DestinationRepositoryMock)
	repo.On("Create", mock.AnythingOfType("*destination.Destination")).Return(nil)
	svc := NewDestinationService(repo)

	d, err := svc.CreateDestination(&CreateRequest{
		City:    "Paris",
		Country: "France",
		Clues:   []string{"city of light"},
	})
	require.NoError(t, err)
	require.Equal(t, "Paris", d.City)
	require.Equal(t, "France", d.Country)
}

func TestDeleteDestination_NotFound(t *testing.T) {
	repo := new(DestinationRepositoryMock)
	repo.On("Delete", "ghost").Return(false, nil)
	svc := NewDestinationService(repo)

	err := svc.DeleteDestination("ghost")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Code)
}
