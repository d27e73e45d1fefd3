package supabase

import (
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

// reservaRow строка таблицы reservas в том виде, в каком её отдает PostgREST
type reservaRow struct {
	ID        int64   `json:"id,omitempty"`
	Nombre    string  `json:"nombre"`
	Telefono  string  `json:"telefono"`
	Email     *string `json:"email"`
	Personas  int     `json:"personas"`
	Fecha     string  `json:"fecha"` // YYYY-MM-DD
	Hora      string  `json:"hora"`  // HH:MM
	Estado    string  `json:"estado"`
	CreatedAt *string `json:"created_at,omitempty"`
}

func fromDomain(res *domain.Reservation) reservaRow {
	return reservaRow{
		Nombre:   res.Name,
		Telefono: res.Phone,
		Email:    res.Email,
		Personas: res.PartySize,
		Fecha:    res.DateString(),
		Hora:     res.Time.String(),
		Estado:   string(res.Status),
	}
}

func (r reservaRow) toDomain() (*domain.Reservation, error) {
	fecha, err := time.Parse(domain.DateFormat, r.Fecha)
	if err != nil {
		return nil, err
	}

	// Колонки TIME приходят как "HH:MM:SS"
	hora := r.Hora
	if len(hora) > 5 {
		hora = hora[:5]
	}

	res := &domain.Reservation{
		ID:        r.ID,
		Name:      r.Nombre,
		Phone:     r.Telefono,
		Email:     r.Email,
		PartySize: r.Personas,
		Date:      fecha,
		Time:      types.TimeString(hora),
		Status:    domain.ReservationStatus(r.Estado),
	}

	if r.CreatedAt != nil {
		if createdAt, err := time.Parse(time.RFC3339, *r.CreatedAt); err == nil {
			res.CreatedAt = createdAt
		}
	}

	return res, nil
}
