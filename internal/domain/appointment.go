// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

// Valid informa se o status pertence ao conjunto conhecido
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusInProgress,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID          string            `json:"id"`
	ClientID    string            `json:"client_id"`
	StaffID     string            `json:"staff_id"`
	RoomID      string            `json:"room_id"`
	UnitID      string            `json:"unit_id"`
	ServiceName string            `json:"service_name"`
	Price       decimal.Decimal   `json:"price"`
	StartTime   time.Time         `json:"start_time"`
	EndTime     time.Time         `json:"end_time"`
	Status      AppointmentStatus `json:"status"`
}

// Validate verifica os invariantes do agendamento (fim após início, preço não negativo)
func (a Appointment) Validate() error {
	if !a.EndTime.After(a.StartTime) {
		return NewInvalidRecordError("appointment", a.ID, "end_time must be after start_time")
	}

	if a.Price.IsNegative() {
		return NewInvalidRecordError("appointment", a.ID, "price must not be negative")
	}

	if !a.Status.Valid() {
		return NewInvalidRecordError("appointment", a.ID, "unknown status "+string(a.Status))
	}

	return nil
}

func (a Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
