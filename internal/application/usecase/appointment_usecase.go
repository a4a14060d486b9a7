package usecase

import (
	"time"

	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

// AppointmentUseCase agenda de turnos.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

// Create agenda un turno. Fecha y hora llegan separadas del formulario y se
// combinan acá, en hora local del taller.
func (uc *AppointmentUseCase) Create(in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.ClientName == "" || in.Date == "" || in.Time == "" {
		return nil, domain.ErrInvalidInput
	}
	when, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	appointment := &entity.Appointment{
		ClientName: in.ClientName,
		Date:       when,
		Note:       in.Note,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(appointment); err != nil {
		return nil, err
	}
	resp := toAppointmentResponse(appointment)
	return &resp, nil
}

// List devuelve los turnos ordenados por fecha ascendente.
func (uc *AppointmentUseCase) List() ([]dto.AppointmentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointmentResponse(a))
	}
	return out, nil
}

// Delete borra un turno por ID.
func (uc *AppointmentUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toAppointmentResponse(a *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:         a.ID,
		ClientName: a.ClientName,
		Date:       a.Date,
		Note:       a.Note,
		CreatedAt:  a.CreatedAt,
	}
}
