package repository

import "github.com/tallerok/taller-api/internal/domain/entity"

// AppointmentRepository acceso a turnos de la agenda.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	// List devuelve todos los turnos ordenados por fecha ascendente.
	List() ([]*entity.Appointment, error)
	Delete(id int64) error
}
